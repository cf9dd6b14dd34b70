// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/riserlab/riser/pdf"
)

func aeqTol(expect, got, tol float64) bool {
	return math.Abs(expect-got) < tol
}

func gaussPDF(t *testing.T, mu, sigma float64) *pdf.PDF {
	t.Helper()
	x, err := pdf.Values(mu-6*sigma, mu+6*sigma, sigma/50)
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	p, err := pdf.Gaussian(x, mu, sigma)
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}
	return p
}

func TestMomentsOfGaussian(t *testing.T) {
	p := gaussPDF(t, 10, 2)

	if got := Mean(p); !aeqTol(10, got, 0.01) {
		t.Errorf("Mean = %v, want 10", got)
	}
	if got := Variance(p); !aeqTol(4, got, 0.02) {
		t.Errorf("Variance = %v, want 4", got)
	}
	if got := StdDev(p); !aeqTol(2, got, 0.01) {
		t.Errorf("StdDev = %v, want 2", got)
	}
	if got := Skewness(p); !aeqTol(0, got, 0.01) {
		t.Errorf("Skewness = %v, want 0", got)
	}
	if got := Kurtosis(p); !aeqTol(3, got, 0.05) {
		t.Errorf("Kurtosis = %v, want 3", got)
	}
	if got := Mode(p); !aeqTol(10, got, 0.05) {
		t.Errorf("Mode = %v, want 10", got)
	}
	if got := Median(p); !aeqTol(10, got, 0.05) {
		t.Errorf("Median = %v, want 10", got)
	}
}

func TestModeAveragesTies(t *testing.T) {
	x, _ := pdf.Values(0, 10, 0.5)
	p, err := pdf.Boxcar(x, 2, 8)
	if err != nil {
		t.Fatalf("Boxcar: %v", err)
	}
	// The plateau spans (2, 8); its samples average to 5.
	if got := Mode(p); !aeqTol(5, got, 0.01) {
		t.Errorf("Mode = %v, want 5", got)
	}
}

func TestIQR(t *testing.T) {
	p := gaussPDF(t, 10, 2)

	r := IQR(p, Sigma(1))
	if len(r.Intervals) != 1 {
		t.Fatalf("IQR intervals = %d, want 1", len(r.Intervals))
	}
	// One-sigma bounds of N(10, 2).
	if !aeqTol(8, r.Intervals[0].Lo, 0.05) || !aeqTol(12, r.Intervals[0].Hi, 0.05) {
		t.Errorf("IQR = %+v, want (8, 12)", r.Intervals[0])
	}

	// Full confidence converges to the full domain.
	full := IQR(p, 1)
	if !aeqTol(p.Min(), full.Intervals[0].Lo, 1e-9) || !aeqTol(p.Max(), full.Intervals[0].Hi, 1e-9) {
		t.Errorf("IQR at confidence 1 = %+v, want full domain [%v, %v]", full.Intervals[0], p.Min(), p.Max())
	}
}

func TestHPDMass(t *testing.T) {
	p := gaussPDF(t, 10, 2)

	for _, conf := range []float64{0.5, Sigma(1), Sigma(2)} {
		r := HPD(p, conf)
		var mass float64
		for _, iv := range r.Intervals {
			mass += p.Prob(iv.Lo, iv.Hi)
		}
		// Within roughly one bin's mass of the requested level.
		if !aeqTol(conf, mass, 0.02) {
			t.Errorf("HPD(%v) mass = %v", conf, mass)
		}
	}
}

func TestHPDUnimodalSingleCluster(t *testing.T) {
	p := gaussPDF(t, 10, 2)
	r := HPD(p, 0.9)
	if len(r.Intervals) != 1 {
		t.Fatalf("intervals = %d, want 1 for unimodal PDF", len(r.Intervals))
	}
	iv := r.Intervals[0]
	// HPD of a symmetric normal is symmetric about the mean.
	if !aeqTol(iv.Lo+iv.Hi, 20, 0.1) {
		t.Errorf("HPD = %+v, want symmetric about 10", iv)
	}
}

func TestHPDBimodalClusters(t *testing.T) {
	// Two disjoint boxcars: HPD at 0.9 must return two clusters,
	// IQR-style single intervals cannot represent this.
	x, _ := pdf.Values(0, 10, 0.01)
	px := make([]float64, len(x))
	for i, v := range x {
		if (v > 1 && v < 3) || (v > 7 && v < 9) {
			px[i] = 1
		}
	}
	p, err := pdf.New(x, px, pdf.Options{Normalize: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := HPD(p, 0.9)
	if len(r.Intervals) != 2 {
		t.Fatalf("intervals = %d, want 2 for bimodal PDF", len(r.Intervals))
	}
	if r.Intervals[0].Lo > r.Intervals[0].Hi || r.Intervals[0].Hi > r.Intervals[1].Lo {
		t.Errorf("clusters out of order: %+v", r.Intervals)
	}
}

func TestHPDIrregularGridRanksByDensity(t *testing.T) {
	// On an irregular grid the final sample's open-ended bin carries
	// no mass, but ranking goes by density, so the densest sample is
	// still selected first even when it is that final one.
	x := []float64{0, 1, 2, 3, 4, 4.5}
	px := []float64{0, 1, 0, 2, 0, 3}
	p, err := pdf.New(x, px, pdf.Options{Normalize: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := HPD(p, 0.5)
	found := false
	for _, iv := range r.Intervals {
		if iv.Lo == 4.5 && iv.Hi == 4.5 {
			found = true
		}
	}
	if !found {
		t.Errorf("densest sample x=4.5 not selected: %+v", r.Intervals)
	}
}

func TestSummaryString(t *testing.T) {
	p := gaussPDF(t, 10, 2)
	s := Summary(p)
	if s.Mean == 0 || s.StdDev == 0 {
		t.Fatalf("empty summary: %+v", s)
	}
	if str := s.String(); str == "" {
		t.Error("empty rendering")
	}
}

func TestSampleConfidence(t *testing.T) {
	picks := make([]float64, 1001)
	for i := range picks {
		picks[i] = float64(i) / 1000 // uniform on [0, 1]
	}

	s := SampleConfidence(picks, 0.5, "test", "m/ky")
	if !aeqTol(0.5, s.Median, 0.01) {
		t.Errorf("median = %v, want 0.5", s.Median)
	}
	if !aeqTol(0.25, s.Lo, 0.01) || !aeqTol(0.75, s.Hi, 0.01) {
		t.Errorf("range = (%v, %v), want (0.25, 0.75)", s.Lo, s.Hi)
	}
}

func TestSigma(t *testing.T) {
	if got := Sigma(1); !aeqTol(0.6827, got, 0.0001) {
		t.Errorf("Sigma(1) = %v", got)
	}
	if got := Sigma(2); !aeqTol(0.9545, got, 0.0001) {
		t.Errorf("Sigma(2) = %v", got)
	}
}
