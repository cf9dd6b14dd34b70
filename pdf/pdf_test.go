// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/integrate"
)

func mustNew(t *testing.T, x, px []float64, opts Options) *PDF {
	t.Helper()
	p, err := New(x, px, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func uniformPDF(t *testing.T, xmin, xmax, dx float64) *PDF {
	t.Helper()
	x, err := Values(xmin, xmax, dx)
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	px := make([]float64, len(x))
	for i := range px {
		px[i] = 1
	}
	return mustNew(t, x, px, Options{Normalize: true})
}

func TestNewValidation(t *testing.T) {
	var invDomain InvalidDomainError
	var invDensity InvalidDensityError
	var unnorm UnnormalizedAreaError

	_, err := New([]float64{0, 1, 2}, []float64{1, 1}, Options{})
	if !errors.As(err, &invDomain) {
		t.Errorf("length mismatch: want InvalidDomainError, got %v", err)
	}

	_, err = New([]float64{0, 2, 1}, []float64{1, 1, 1}, Options{Normalize: true})
	if !errors.As(err, &invDomain) {
		t.Errorf("non-monotonic x: want InvalidDomainError, got %v", err)
	}

	_, err = New([]float64{0, 0, 1}, []float64{1, 1, 1}, Options{Normalize: true})
	if !errors.As(err, &invDomain) {
		t.Errorf("repeated x: want InvalidDomainError, got %v", err)
	}

	_, err = New([]float64{0, 1, 2}, []float64{1, -1, 1}, Options{Normalize: true})
	if !errors.As(err, &invDensity) {
		t.Errorf("negative density: want InvalidDensityError, got %v", err)
	}

	_, err = New([]float64{0, 1, 2}, []float64{2, 2, 2}, Options{})
	if !errors.As(err, &unnorm) {
		t.Errorf("area 4 without normalize: want UnnormalizedAreaError, got %v", err)
	}
}

func TestNormalization(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	px := []float64{3, 3, 3, 3, 3}
	p := mustNew(t, x, px, Options{Normalize: true})

	if area := integrate.Trapezoidal(p.X(), p.Density()); !aeqTol(1, area, 1e-9) {
		t.Errorf("area = %v, want 1", area)
	}

	cdf := p.Cumulative()
	if cdf[0] != 0 || cdf[len(cdf)-1] != 1 {
		t.Errorf("CDF endpoints = %v, %v, want 0, 1", cdf[0], cdf[len(cdf)-1])
	}
	for i := 1; i < len(cdf); i++ {
		if cdf[i] < cdf[i-1] {
			t.Errorf("CDF decreases at %d: %v < %v", i, cdf[i], cdf[i-1])
		}
	}
}

func TestConstructionCopies(t *testing.T) {
	x := []float64{0, 1, 2}
	px := []float64{1, 1, 1}
	p := mustNew(t, x, px, Options{Normalize: true})

	x[1] = 99
	px[0] = 99
	if got := p.X()[1]; got != 1 {
		t.Errorf("mutating caller x leaked into PDF: x[1] = %v", got)
	}

	// Accessor slices are copies too.
	p.X()[0] = 42
	if got := p.X()[0]; got != 0 {
		t.Errorf("mutating accessor result leaked into PDF: x[0] = %v", got)
	}
}

func TestCDFAtAndProb(t *testing.T) {
	p := uniformPDF(t, 0, 10, 0.1)

	if got := p.CDFAt(-5); got != 0 {
		t.Errorf("CDFAt below domain = %v, want 0", got)
	}
	if got := p.CDFAt(50); got != 1 {
		t.Errorf("CDFAt above domain = %v, want 1", got)
	}
	if got := p.CDFAt(5); !aeq(0.5, got) {
		t.Errorf("CDFAt(5) = %v, want 0.5", got)
	}
	if got := p.Prob(2.5, 7.5); !aeq(0.5, got) {
		t.Errorf("Prob(2.5, 7.5) = %v, want 0.5", got)
	}
}

func TestDensityAtOutsideDomainIsZero(t *testing.T) {
	p := uniformPDF(t, 1, 2, 0.01)
	if got := p.DensityAt(0.5); got != 0 {
		t.Errorf("DensityAt(0.5) = %v, want 0", got)
	}
	if got := p.DensityAt(2.5); got != 0 {
		t.Errorf("DensityAt(2.5) = %v, want 0", got)
	}
	if got := p.DensityAt(1.5); !aeq(1, got) {
		t.Errorf("DensityAt(1.5) = %v, want 1", got)
	}
}

func TestQuantile(t *testing.T) {
	p := uniformPDF(t, 0, 10, 0.1)
	for _, tc := range []struct{ q, want float64 }{
		{-1, 0}, {0, 0}, {0.25, 2.5}, {0.5, 5}, {0.75, 7.5}, {1, 10}, {2, 10},
	} {
		if got := p.Quantile(tc.q); !aeqTol(tc.want, got, 0.01) {
			t.Errorf("Quantile(%v) = %v, want %v", tc.q, got, tc.want)
		}
	}
}

func TestQuantilePlateauReturnsLowerEdge(t *testing.T) {
	// Two boxcars with a zero-density gap between x=2 and x=8. The
	// trapezoid ramp off the first boxcar still accumulates mass
	// until x=2.1, so the CDF plateau at 0.5 spans [2.1, 7.9]; the
	// inverse at 0.5 must be its lower edge.
	x, _ := Values(0, 10, 0.1)
	px := make([]float64, len(x))
	for i, v := range x {
		if v <= 2 || v >= 8 {
			px[i] = 1
		}
	}
	p := mustNew(t, x, px, Options{Normalize: true})

	if got, lo := p.CDFAt(2.1), p.CDFAt(7.9); !aeqTol(got, lo, 1e-12) {
		t.Fatalf("CDF not flat across the gap: %v != %v", got, lo)
	}
	got := p.Quantile(0.5)
	if !aeqTol(2.1, got, 0.01) {
		t.Errorf("Quantile(0.5) = %v, want plateau lower edge 2.1", got)
	}
}

func TestMetadataCopies(t *testing.T) {
	p := uniformPDF(t, 0, 1, 0.1)
	q := p.WithName("renamed").WithVariableType("age").WithUnit("ky")
	if p.Name() != "" || p.Unit() != "" {
		t.Errorf("WithName/WithUnit mutated the receiver: %q %q", p.Name(), p.Unit())
	}
	if q.Name() != "renamed" || q.VariableType() != "age" || q.Unit() != "ky" {
		t.Errorf("metadata not carried: %v", q)
	}
	if want := "PDF: renamed - age (ky)"; q.String() != want {
		t.Errorf("String() = %q, want %q", q.String(), want)
	}
}
