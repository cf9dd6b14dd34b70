// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algebra

import (
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/riserlab/riser/pdf"
	"github.com/riserlab/riser/unit"
)

// Between returns a PDF describing where a value falls between two
// uncertain bounds: the probability of being above the lower variable
// and below the upper one,
//
//	P(L < x < U) ∝ P_L(x) · (1 − P_U(x))
//
// computed from the precomputed CDFs and renormalized.
func Between(lower, upper *pdf.PDF) (*pdf.PDF, error) {
	if err := pdf.SameDomain([]*pdf.PDF{lower, upper}); err != nil {
		return nil, err
	}
	lo := lower.Cumulative()
	hi := upper.Cumulative()
	px := make([]float64, len(lo))
	for i := range px {
		px[i] = lo[i] * (1 - hi[i])
	}
	return pdf.New(lower.X(), px, pdf.Options{
		Normalize: true,
		Unit:      unit.Common([]*pdf.PDF{lower, upper}),
	})
}

// Pearson returns the uncentered Pearson correlation of two density
// curves on a shared domain. Densities are never negative, so the
// mean is not subtracted; this is a normalized dot product.
func Pearson(a, b *pdf.PDF) (float64, error) {
	if err := pdf.SameDomain([]*pdf.PDF{a, b}); err != nil {
		return 0, err
	}
	pa := a.Density()
	pb := b.Density()
	var dot, ssa, ssb float64
	for i := range pa {
		dot += pa[i] * pb[i]
		ssa += pa[i] * pa[i]
		ssb += pb[i] * pb[i]
	}
	return dot / (math.Sqrt(ssa) * math.Sqrt(ssb)), nil
}

// CrossCorrelate slides the secondary density across the reference at
// integer sample lags from -(n-1) to n-1, zero-filling outside the
// tabulated support rather than wrapping, and returns the normalized
// correlation at each lag.
func CrossCorrelate(ref, sec *pdf.PDF) (lags []int, vals []float64, err error) {
	if err := pdf.SameDomain([]*pdf.PDF{ref, sec}); err != nil {
		return nil, nil, err
	}
	n := ref.Len()
	pr := ref.Density()
	ps := sec.Density()

	var refRSS float64
	for _, v := range pr {
		refRSS += v * v
	}
	refRSS = math.Sqrt(refRSS)

	lags = make([]int, 2*n-1)
	vals = make([]float64, 2*n-1)
	for i := range lags {
		lag := i - (n - 1)
		lags[i] = lag

		var dot, ss float64
		for j := 0; j < n; j++ {
			k := j - lag
			if k < 0 || k >= n {
				continue
			}
			dot += pr[j] * ps[k]
			ss += ps[k] * ps[k]
		}
		if dot != 0 {
			vals[i] = dot / (refRSS * math.Sqrt(ss))
		}
	}
	return lags, vals, nil
}

// Overlap computes the overlap index of Pastore & Calcagni (2019),
// the integral of the pointwise minimum of the density curves. It
// returns the minimum curve and its integral eta, which is 1 for
// identical PDFs and 0 for disjoint ones.
func Overlap(pdfs []*pdf.PDF) (pxMin []float64, eta float64, err error) {
	if err := pdf.SameDomain(pdfs); err != nil {
		return nil, 0, err
	}
	n := pdfs[0].Len()
	pxMin = pdfs[0].Density()
	for _, p := range pdfs[1:] {
		for i := 0; i < n; i++ {
			if _, v := p.At(i); v < pxMin[i] {
				pxMin[i] = v
			}
		}
	}
	eta = integrate.Trapezoidal(pdfs[0].X(), pxMin)
	return pxMin, eta, nil
}
