// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import "fmt"

// InvalidDomainError reports a malformed domain: a length mismatch
// between x and px, too few points, or non-monotonic x values.
type InvalidDomainError struct {
	Reason string
}

func (e InvalidDomainError) Error() string {
	return "invalid domain: " + e.Reason
}

// InvalidDensityError reports a negative or non-normalizable density.
type InvalidDensityError struct {
	Reason string
}

func (e InvalidDensityError) Error() string {
	return "invalid density: " + e.Reason
}

// UnnormalizedAreaError reports that the trapezoidal area differs
// from 1 and normalization was not requested.
type UnnormalizedAreaError struct {
	Area float64
}

func (e UnnormalizedAreaError) Error() string {
	return fmt.Sprintf("area is %g, not 1; construct with Normalize set", e.Area)
}

// DomainMismatchError reports an elementwise operation on PDFs that
// are not tabulated over the same value array.
type DomainMismatchError struct {
	Reason string
}

func (e DomainMismatchError) Error() string {
	return "domain mismatch: " + e.Reason
}

// InvalidRangeError reports degenerate value-array bounds, such as a
// quotient grid whose upper limit falls at or below its lower limit.
type InvalidRangeError struct {
	Reason string
}

func (e InvalidRangeError) Error() string {
	return "invalid range: " + e.Reason
}
