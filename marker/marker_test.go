// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package marker

import (
	"testing"

	"github.com/riserlab/riser/diag"
	"github.com/riserlab/riser/pdf"
)

func gaussPDF(t *testing.T, mu, sigma float64, unitTag string) *pdf.PDF {
	t.Helper()
	x, err := pdf.Values(mu-5*sigma, mu+5*sigma, sigma/20)
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	p, err := pdf.Gaussian(x, mu, sigma)
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}
	return p.WithUnit(unitTag)
}

func mustMarker(t *testing.T, name string, age, disp *pdf.PDF) DatedMarker {
	t.Helper()
	m, _, err := New(name, age, disp)
	if err != nil {
		t.Fatalf("New(%s): %v", name, err)
	}
	return m
}

func TestNewChecksBaseUnits(t *testing.T) {
	age := gaussPDF(t, 10, 1, "ky")
	disp := gaussPDF(t, 5, 0.5, "m")

	if _, _, err := New("T1", age, disp); err != nil {
		t.Errorf("valid units: %v", err)
	}

	// Swapped units must be fatal.
	if _, _, err := New("T1", disp, age); err == nil {
		t.Error("age in meters: want error")
	}

	// A missing unit only warns.
	_, d, err := New("T1", age.WithUnit(""), disp)
	if err != nil {
		t.Errorf("missing age unit: %v", err)
	}
	if !d.Has(diag.UnitMismatch) {
		t.Error("missing age unit: want a warning")
	}
}

func TestPairs(t *testing.T) {
	l := List{
		mustMarker(t, "T1", gaussPDF(t, 10, 1, "ky"), gaussPDF(t, 5, 0.5, "m")),
		mustMarker(t, "T2", gaussPDF(t, 20, 1, "ky"), gaussPDF(t, 15, 0.5, "m")),
		mustMarker(t, "T3", gaussPDF(t, 30, 1, "ky"), gaussPDF(t, 22, 0.5, "m")),
	}

	pairs := l.Pairs()
	if len(pairs) != 2 {
		t.Fatalf("pairs = %d, want 2", len(pairs))
	}
	if pairs[0].Name() != "T2-T1" || pairs[1].Name() != "T3-T2" {
		t.Errorf("pair names = %v, %v", pairs[0].Name(), pairs[1].Name())
	}
	if pairs[0].Younger.Name != "T1" || pairs[0].Older.Name != "T2" {
		t.Errorf("pair order wrong: %+v", pairs[0])
	}

	if got := (List{l[0]}).Pairs(); got != nil {
		t.Errorf("single marker pairs = %v, want nil", got)
	}
}

func TestCheckOrder(t *testing.T) {
	ordered := List{
		mustMarker(t, "T1", gaussPDF(t, 10, 1, "ky"), gaussPDF(t, 5, 0.5, "m")),
		mustMarker(t, "T2", gaussPDF(t, 20, 1, "ky"), gaussPDF(t, 15, 0.5, "m")),
	}
	if d := CheckOrder(ordered); d.Has(diag.OrderingWarning) {
		t.Errorf("ordered chain warned: %v", d)
	}

	reversed := List{ordered[1], ordered[0]}
	if d := CheckOrder(reversed); !d.Has(diag.OrderingWarning) {
		t.Error("reversed chain: want ordering warning")
	}
}
