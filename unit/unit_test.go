// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit

import (
	"math"
	"testing"

	"github.com/riserlab/riser/pdf"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		s      string
		base   string
		factor float64
	}{
		{"y", "y", 1},
		{"ky", "y", 1e3},
		{"My", "y", 1e6},
		{"Gy", "y", 1e9},
		{"m", "m", 1},
		{"mm", "m", 1e-3},
		{"cm", "m", 1e-2},
		{"km", "m", 1e3},
	} {
		u, err := Parse(tc.s)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.s, err)
			continue
		}
		if u.Base != tc.base || u.Factor != tc.factor {
			t.Errorf("Parse(%q) = %+v, want base %q factor %v", tc.s, u, tc.base, tc.factor)
		}
	}

	for _, bad := range []string{"", "x", "qky", "kk"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q): want error", bad)
		}
	}
}

func TestScale(t *testing.T) {
	out, err := Scale([]float64{1, 2.5}, "ky", "y")
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if !aeq(1000, out[0]) || !aeq(2500, out[1]) {
		t.Errorf("Scale ky->y = %v", out)
	}

	if _, err := Scale([]float64{1}, "ky", "m"); err == nil {
		t.Error("scaling years to meters: want error")
	}
}

func TestScalePDF(t *testing.T) {
	x, _ := pdf.Values(0, 10, 0.1)
	p, err := pdf.Gaussian(x, 5, 1)
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}
	p = p.WithUnit("ky")

	q, err := ScalePDF(p, "y")
	if err != nil {
		t.Fatalf("ScalePDF: %v", err)
	}
	if q.Unit() != "y" {
		t.Errorf("unit = %q, want y", q.Unit())
	}
	if !aeq(5000, q.Quantile(0.5)) {
		t.Errorf("median = %v, want 5000", q.Quantile(0.5))
	}
}

func TestCommonAndQuotient(t *testing.T) {
	x, _ := pdf.Values(0, 1, 0.1)
	a, _ := pdf.Boxcar(x, 0.2, 0.8)
	b, _ := pdf.Boxcar(x, 0.2, 0.8)

	if got := Common([]*pdf.PDF{a.WithUnit("m"), b.WithUnit("m")}); got != "m" {
		t.Errorf("Common same = %q, want m", got)
	}
	if got := Common([]*pdf.PDF{a.WithUnit("m"), b.WithUnit("km")}); got != "" {
		t.Errorf("Common mixed = %q, want empty", got)
	}

	if got := Quotient("m", "ky"); got != "m/ky" {
		t.Errorf("Quotient = %q, want m/ky", got)
	}
	if got := Quotient("m", ""); got != "" {
		t.Errorf("Quotient with unlabeled denominator = %q, want empty", got)
	}
}
