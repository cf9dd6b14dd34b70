// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import "testing"

func TestInterpolateIdempotent(t *testing.T) {
	x, _ := Values(0, 10, 0.5)
	p, err := Gaussian(x, 5, 1)
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}

	q, err := Interpolate(p, p.X())
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	for i := 0; i < p.Len(); i++ {
		_, a := p.At(i)
		_, b := q.At(i)
		if !aeq(a, b) {
			t.Errorf("density differs at %d: %v != %v", i, a, b)
		}
	}
}

func TestInterpolateZeroOutsideSupport(t *testing.T) {
	p := uniformPDF(t, 2, 4, 0.1)
	x, _ := Values(0, 6, 0.1)

	q, err := Interpolate(p, x)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	for i := 0; i < q.Len(); i++ {
		xv, pv := q.At(i)
		if (xv < 2 || xv > 4) && pv != 0 {
			t.Errorf("density at %v = %v, want 0 outside support", xv, pv)
		}
	}
}

func TestInterpolateCopiesMetadata(t *testing.T) {
	p := uniformPDF(t, 0, 1, 0.1).WithName("terrace").WithVariableType("age").WithUnit("ky")
	x, _ := Values(0, 1, 0.05)

	q, err := Interpolate(p, x)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if q.Name() != "terrace" || q.VariableType() != "age" || q.Unit() != "ky" {
		t.Errorf("metadata lost: %v", q)
	}
}

func TestInterpolateAllCommonDomain(t *testing.T) {
	a := uniformPDF(t, 0, 4, 0.5)
	b := uniformPDF(t, 2, 8, 0.25)

	out, err := InterpolateAll([]*PDF{a, b})
	if err != nil {
		t.Fatalf("InterpolateAll: %v", err)
	}
	if err := SameDomain(out); err != nil {
		t.Errorf("resampled PDFs differ in domain: %v", err)
	}
	if out[0].Min() != 0 || out[0].Max() != 8 {
		t.Errorf("common domain = [%v, %v], want [0, 8]", out[0].Min(), out[0].Max())
	}
	if got := Spacing(out[0]); got != 0.25 {
		t.Errorf("common spacing = %v, want finest input spacing 0.25", got)
	}
}
