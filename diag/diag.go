// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag carries non-fatal warnings alongside primary results.
//
// Conditions that do not corrupt the math (unit conflicts, suspicious
// marker ordering, Monte Carlo shortfalls) are reported as Diagnostics
// values returned with the result, so callers and tests can inspect
// them without capturing process output.
package diag

import "fmt"

// A Code identifies a class of warning.
type Code string

const (
	UnitMismatch      Code = "unit-mismatch"
	OrderingWarning   Code = "ordering"
	SamplingShortfall Code = "sampling-shortfall"
	MetadataConflict  Code = "metadata-conflict"
	IrregularSpacing  Code = "irregular-spacing"
)

// A Warning is one non-fatal condition observed during a computation.
type Warning struct {
	Code    Code
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("warning [%s]: %s", w.Code, w.Message)
}

// Diagnostics accumulates warnings. The zero value is ready to use.
type Diagnostics []Warning

// Warnf appends a formatted warning.
func (d *Diagnostics) Warnf(code Code, format string, args ...interface{}) {
	*d = append(*d, Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

// Extend appends all warnings from other.
func (d *Diagnostics) Extend(other Diagnostics) {
	*d = append(*d, other...)
}

// Has reports whether any warning with the given code was recorded.
func (d Diagnostics) Has(code Code) bool {
	for _, w := range d {
		if w.Code == code {
			return true
		}
	}
	return false
}
