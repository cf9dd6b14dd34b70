// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package algebra implements arithmetic on random variables
// represented as discrete PDFs.
//
// Addition and subtraction are carried out by discrete convolution of
// the densities, which is the distribution of a sum of independent
// variables. Division uses the ratio-distribution integral of Bird
// (2007) and Zechar & Frankel (2009). Combine and Merge operate
// pointwise on a shared domain.
//
// Elementwise operations require inputs already resampled onto a
// common value array (pdf.InterpolateAll); they fail with
// pdf.DomainMismatchError otherwise. The result carries a unit only
// when all inputs share one.
package algebra

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/riserlab/riser/pdf"
	"github.com/riserlab/riser/unit"
)

// convolve computes the full discrete convolution of a and b,
// formulated from the output side: each output sample accumulates
// the products that sum to its index.
func convolve(a, b []float64) []float64 {
	na, nb := len(a), len(b)
	out := make([]float64, na+nb-1)
	for i := range out {
		for j := 0; j < nb; j++ {
			if k := i - j; k >= 0 && k < na {
				out[i] += a[k] * b[j]
			}
		}
	}
	return out
}

// sumDomain builds the 2n-1 point output domain spanning [lo, hi].
func sumDomain(lo, hi float64, n int) []float64 {
	nn := 2*n - 1
	out := make([]float64, nn)
	for i := range out {
		out[i] = lo + float64(i)*(hi-lo)/float64(nn-1)
	}
	return out
}

// Negate returns the PDF of -X: domain values negated and reversed,
// densities mirrored left for right.
func Negate(p *pdf.PDF) (*pdf.PDF, error) {
	n := p.Len()
	x := make([]float64, n)
	px := make([]float64, n)
	for i := 0; i < n; i++ {
		xv, pv := p.At(n - 1 - i)
		x[i] = -xv
		px[i] = pv
	}
	name := p.Name()
	if name != "" {
		name = "(negative) " + name
	}
	return pdf.New(x, px, pdf.Options{
		Normalize:    true,
		Name:         name,
		VariableType: p.VariableType(),
		Unit:         p.Unit(),
	})
}

// Add returns the PDF of the sum X+Y of two independent variables.
// The inputs must share a domain; the result spans twice that domain
// with 2n-1 samples and is renormalized, since convolution on a
// finite grid drifts from unit area.
func Add(a, b *pdf.PDF) (*pdf.PDF, error) {
	if err := pdf.SameDomain([]*pdf.PDF{a, b}); err != nil {
		return nil, err
	}
	xx := sumDomain(2*a.Min(), 2*a.Max(), a.Len())
	pxx := convolve(a.Density(), b.Density())
	return pdf.New(xx, pxx, pdf.Options{
		Normalize: true,
		Unit:      unit.Common([]*pdf.PDF{a, b}),
	})
}

// Subtract returns the PDF of the difference X-Y, computed as the sum
// of X and -Y. If clampNonNegative is set, density at negative values
// is zeroed before renormalization; elapsed time between dated
// markers, for instance, cannot be negative.
func Subtract(a, b *pdf.PDF, clampNonNegative bool) (*pdf.PDF, error) {
	if err := pdf.SameDomain([]*pdf.PDF{a, b}); err != nil {
		return nil, err
	}
	neg, err := Negate(b)
	if err != nil {
		return nil, err
	}
	xx := sumDomain(a.Min()-a.Max(), a.Max()-a.Min(), a.Len())
	pxx := convolve(a.Density(), neg.Density())
	if clampNonNegative {
		for i, v := range xx {
			if v < 0 {
				pxx[i] = 0
			}
		}
	}
	return pdf.New(xx, pxx, pdf.Options{
		Normalize: true,
		Unit:      unit.Common([]*pdf.PDF{a, b}),
	})
}

// Combine multiplies densities pointwise and renormalizes. This acts
// like a Bayesian update across independent pieces of evidence about
// the same quantity (OxCal's R_Combine); it is not the distribution
// of any sum or joint variable.
func Combine(pdfs []*pdf.PDF) (*pdf.PDF, error) {
	if len(pdfs) < 2 {
		return nil, pdf.InvalidRangeError{Reason: fmt.Sprintf("combine needs at least 2 PDFs, have %d", len(pdfs))}
	}
	if err := pdf.SameDomain(pdfs); err != nil {
		return nil, err
	}
	px := pdfs[0].Density()
	for _, p := range pdfs[1:] {
		floats.Mul(px, p.Density())
	}
	return pdf.New(pdfs[0].X(), px, pdf.Options{
		Normalize: true,
		Unit:      unit.Common(pdfs),
	})
}

// Merge sums densities pointwise and renormalizes, producing an
// equal-weight mixture of alternative hypotheses (OxCal's Sum).
func Merge(pdfs []*pdf.PDF) (*pdf.PDF, error) {
	if len(pdfs) < 2 {
		return nil, pdf.InvalidRangeError{Reason: fmt.Sprintf("merge needs at least 2 PDFs, have %d", len(pdfs))}
	}
	if err := pdf.SameDomain(pdfs); err != nil {
		return nil, err
	}
	px := pdfs[0].Density()
	for _, p := range pdfs[1:] {
		floats.Add(px, p.Density())
	}
	return pdf.New(pdfs[0].X(), px, pdf.Options{
		Normalize: true,
		Unit:      unit.Common(pdfs),
	})
}

// DivideOptions bounds the quotient grid for Divide.
type DivideOptions struct {
	// MaxQuotient caps the largest ratio considered. Defaults to
	// 100 when zero.
	MaxQuotient float64

	// Step is the quotient grid spacing. Defaults to 0.01 when
	// zero.
	Step float64
}

func (o DivideOptions) withDefaults() DivideOptions {
	if o.MaxQuotient == 0 {
		o.MaxQuotient = 100
	}
	if o.Step == 0 {
		o.Step = 0.01
	}
	return o
}

// support returns the span of strictly positive density, restricted
// to positive values when positiveOnly is set.
func support(p *pdf.PDF, positiveOnly bool) (lo, hi float64, ok bool) {
	for i := 0; i < p.Len(); i++ {
		x, px := p.At(i)
		if px <= 0 || (positiveOnly && x <= 0) {
			continue
		}
		if !ok {
			lo, ok = x, true
		}
		hi = x
	}
	return lo, hi, ok
}

// Divide returns the PDF of the ratio X/T for independent variables
// with densities num and denom, using the integral
//
//	f_V(v) = ∫ f_T(t)·f_X(v·t)·t dt
//
// discretized over a quotient grid spanning the ratio of the inputs'
// positive-density supports, capped at MaxQuotient. The denominator
// contributes only where t is positive, so a clamped difference whose
// domain still reaches zero divides cleanly.
func Divide(num, denom *pdf.PDF, opts DivideOptions) (*pdf.PDF, error) {
	opts = opts.withDefaults()

	nlo, nhi, ok := support(num, false)
	if !ok {
		return nil, pdf.InvalidRangeError{Reason: "numerator has no positive density"}
	}
	tlo, thi, ok := support(denom, true)
	if !ok {
		return nil, pdf.InvalidRangeError{Reason: "denominator has no density at positive values"}
	}

	qmin := nlo / thi
	qmax := nhi / tlo
	if opts.MaxQuotient < qmax {
		qmax = opts.MaxQuotient
	}
	if qmax <= qmin {
		return nil, pdf.InvalidRangeError{Reason: fmt.Sprintf("quotient grid [%g, %g] is empty; raise MaxQuotient", qmin, qmax)}
	}

	q, err := pdf.Values(qmin, qmax, opts.Step)
	if err != nil {
		return nil, err
	}

	tx := denom.X()
	tpx := denom.Density()
	pq := make([]float64, len(q))
	for i, qi := range q {
		var s float64
		for j, t := range tx {
			if t <= 0 || tpx[j] == 0 {
				continue
			}
			s += tpx[j] * num.DensityAt(qi*t) * t
		}
		pq[i] = s
	}

	return pdf.New(q, pq, pdf.Options{
		Normalize: true,
		Unit:      unit.Quotient(num.Unit(), denom.Unit()),
	})
}
