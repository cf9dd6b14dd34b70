// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unit parses and scales the physical unit strings attached
// to PDFs. Units are a metric prefix plus a single-letter base: "y"
// for years and "m" for meters, so ages carry units like "y", "ky",
// "My" and displacements "mm", "cm", "m", "km".
package unit

import (
	"fmt"

	"github.com/riserlab/riser/pdf"
)

// Recognized bases.
const (
	Years  = "y"
	Meters = "m"
)

var prefixFactors = map[string]float64{
	"":  1,
	"m": 1e-3,
	"c": 1e-2,
	"k": 1e3,
	"M": 1e6,
	"G": 1e9,
}

// A Unit is a parsed unit string.
type Unit struct {
	Prefix string
	Base   string
	Factor float64 // multiple of the base unit
}

func (u Unit) String() string { return u.Prefix + u.Base }

// Parse splits a unit string into prefix and base. The base is the
// final letter; "m" alone is meters, not a milli prefix.
func Parse(s string) (Unit, error) {
	if s == "" {
		return Unit{}, fmt.Errorf("empty unit")
	}
	base := s[len(s)-1:]
	if base != Years && base != Meters {
		return Unit{}, fmt.Errorf("unit %q: unknown base %q", s, base)
	}
	prefix := s[:len(s)-1]
	factor, ok := prefixFactors[prefix]
	if !ok {
		return Unit{}, fmt.Errorf("unit %q: unknown prefix %q", s, prefix)
	}
	return Unit{Prefix: prefix, Base: base, Factor: factor}, nil
}

// Base returns the base unit of a unit string.
func Base(s string) (string, error) {
	u, err := Parse(s)
	if err != nil {
		return "", err
	}
	return u.Base, nil
}

// Scale converts values from one unit to another sharing the same
// base, returning a new slice.
func Scale(values []float64, from, to string) ([]float64, error) {
	uf, err := Parse(from)
	if err != nil {
		return nil, err
	}
	ut, err := Parse(to)
	if err != nil {
		return nil, err
	}
	if uf.Base != ut.Base {
		return nil, fmt.Errorf("cannot scale %q to %q: different base units", from, to)
	}
	f := uf.Factor / ut.Factor
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * f
	}
	return out, nil
}

// ScalePDF re-expresses a PDF's domain in another unit of the same
// base. The density scales inversely with the domain so the area
// stays 1.
func ScalePDF(p *pdf.PDF, to string) (*pdf.PDF, error) {
	x, err := Scale(p.X(), p.Unit(), to)
	if err != nil {
		return nil, err
	}
	return pdf.New(x, p.Density(), pdf.Options{
		Normalize:    true,
		Name:         p.Name(),
		VariableType: p.VariableType(),
		Unit:         to,
	})
}

// Common returns the unit shared by all PDFs, or "" if any differ.
// Nulling rather than failing matches how unit conflicts degrade:
// the math is still valid, only the label is lost.
func Common(pdfs []*pdf.PDF) string {
	if len(pdfs) == 0 {
		return ""
	}
	u := pdfs[0].Unit()
	for _, p := range pdfs[1:] {
		if p.Unit() != u {
			return ""
		}
	}
	return u
}

// Quotient returns the unit of a ratio, or "" if either side is
// unlabeled.
func Quotient(num, denom string) string {
	if num == "" || denom == "" {
		return ""
	}
	return num + "/" + denom
}
