// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pdf provides a discrete representation of a probability
// density function over an ordered domain.
//
// A PDF here is a tabulated, non-negative curve with unit area under
// the trapezoid rule. It is not defined everywhere between negative
// and positive infinity; density outside the tabulated domain is
// taken to be zero. Every PDF carries its cumulative distribution
// function, computed at construction, which supports quantile
// (inverse-transform) lookups.
//
// PDFs are immutable. Construction copies the caller's slices, and
// every operation in this module that transforms a PDF returns a new
// one.
package pdf

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/integrate"
)

// AreaTolerance is the largest deviation from unit area accepted
// without normalization.
const AreaTolerance = 1e-10

// Options configures PDF construction.
type Options struct {
	// Normalize scales the density so the trapezoidal area is 1.
	// If false, construction fails unless the area is already 1
	// within AreaTolerance.
	Normalize bool

	// Name is a brief descriptive identifier.
	Name string

	// VariableType is the sampled quantity, e.g. "age",
	// "displacement", "slip rate".
	VariableType string

	// Unit is the physical unit of the domain values, e.g. "ky".
	Unit string
}

// A PDF is a validated discrete probability density function.
type PDF struct {
	x   []float64 // domain, strictly increasing
	px  []float64 // density at each x, non-negative, unit area
	cdf []float64 // cumulative distribution, cdf[0]=0, cdf[n-1]=1

	name         string
	variableType string
	unit         string
}

// New constructs a PDF from domain values x and densities px. Both
// slices are copied; the caller's arrays are never retained or
// mutated.
func New(x, px []float64, opts Options) (*PDF, error) {
	if len(x) != len(px) {
		return nil, InvalidDomainError{fmt.Sprintf("domain has %d points but density has %d", len(x), len(px))}
	}
	if len(x) < 2 {
		return nil, InvalidDomainError{fmt.Sprintf("need at least 2 points, have %d", len(x))}
	}

	p := &PDF{
		x:            append([]float64(nil), x...),
		px:           append([]float64(nil), px...),
		name:         opts.Name,
		variableType: opts.VariableType,
		unit:         opts.Unit,
	}

	for i := 1; i < len(p.x); i++ {
		if p.x[i] <= p.x[i-1] {
			return nil, InvalidDomainError{fmt.Sprintf("domain values must strictly increase (x[%d]=%g, x[%d]=%g)", i-1, p.x[i-1], i, p.x[i])}
		}
	}
	for i, v := range p.px {
		if v < 0 {
			return nil, InvalidDensityError{fmt.Sprintf("density must be non-negative (px[%d]=%g)", i, v)}
		}
	}

	area := integrate.Trapezoidal(p.x, p.px)
	if opts.Normalize {
		if area <= 0 {
			return nil, InvalidDensityError{fmt.Sprintf("cannot normalize area %g", area)}
		}
		for i := range p.px {
			p.px[i] /= area
		}
	} else if a := area - 1; a > AreaTolerance || a < -AreaTolerance {
		return nil, UnnormalizedAreaError{Area: area}
	}

	p.computeCDF()
	return p, nil
}

// computeCDF fills p.cdf with the cumulative trapezoidal integral of
// the density, scaled so the final value is exactly 1.
func (p *PDF) computeCDF() {
	n := len(p.x)
	p.cdf = make([]float64, n)
	for i := 1; i < n; i++ {
		p.cdf[i] = p.cdf[i-1] + 0.5*(p.px[i]+p.px[i-1])*(p.x[i]-p.x[i-1])
	}
	total := p.cdf[n-1]
	if total > 0 {
		for i := range p.cdf {
			p.cdf[i] /= total
		}
	}
}

// Len returns the number of tabulated points.
func (p *PDF) Len() int { return len(p.x) }

// Min returns the smallest domain value.
func (p *PDF) Min() float64 { return p.x[0] }

// Max returns the largest domain value.
func (p *PDF) Max() float64 { return p.x[len(p.x)-1] }

// At returns the i'th domain value and density.
func (p *PDF) At(i int) (x, px float64) { return p.x[i], p.px[i] }

// X returns a copy of the domain values.
func (p *PDF) X() []float64 { return append([]float64(nil), p.x...) }

// Density returns a copy of the density values.
func (p *PDF) Density() []float64 { return append([]float64(nil), p.px...) }

// Cumulative returns a copy of the CDF values.
func (p *PDF) Cumulative() []float64 { return append([]float64(nil), p.cdf...) }

// Name returns the descriptive identifier, which may be empty.
func (p *PDF) Name() string { return p.name }

// VariableType returns the sampled quantity tag, which may be empty.
func (p *PDF) VariableType() string { return p.variableType }

// Unit returns the physical unit tag, which may be empty.
func (p *PDF) Unit() string { return p.unit }

// WithName returns a PDF identical to p but for its name. The
// tabulated data is shared, which is safe because it is immutable.
func (p *PDF) WithName(name string) *PDF {
	q := *p
	q.name = name
	return &q
}

// WithVariableType returns a PDF identical to p but for its variable
// type tag.
func (p *PDF) WithVariableType(variableType string) *PDF {
	q := *p
	q.variableType = variableType
	return &q
}

// WithUnit returns a PDF identical to p but for its unit tag. The
// domain values are not rescaled; see the unit package for that.
func (p *PDF) WithUnit(unit string) *PDF {
	q := *p
	q.unit = unit
	return &q
}

// DensityAt returns the density linearly interpolated at v, or 0
// outside the tabulated domain.
func (p *PDF) DensityAt(v float64) float64 {
	if v < p.x[0] || v > p.x[len(p.x)-1] {
		return 0
	}
	return interp(p.x, p.px, v)
}

// CDFAt returns the CDF linearly interpolated at v, clamped to 0
// below the domain and 1 above it.
func (p *PDF) CDFAt(v float64) float64 {
	if v <= p.x[0] {
		return 0
	}
	if v >= p.x[len(p.x)-1] {
		return 1
	}
	return interp(p.x, p.cdf, v)
}

// Prob returns the probability that the variable falls in [x1, x2].
func (p *PDF) Prob(x1, x2 float64) float64 {
	return p.CDFAt(x2) - p.CDFAt(x1)
}

// Quantile returns the inverse-transform of probability q, the
// smallest domain value v with CDFAt(v) >= q. Where the CDF is flat
// (zero-density gaps make the inverse multi-valued) this returns the
// lower edge of the flat interval. q is clamped to [0, 1].
func (p *PDF) Quantile(q float64) float64 {
	n := len(p.x)
	if q <= 0 {
		return p.x[0]
	}
	if q >= 1 {
		q = 1
	}
	i := sort.SearchFloat64s(p.cdf, q)
	if i <= 0 {
		return p.x[0]
	}
	if i >= n {
		return p.x[n-1]
	}
	d := p.cdf[i] - p.cdf[i-1]
	if d <= 0 {
		return p.x[i-1]
	}
	return p.x[i-1] + (q-p.cdf[i-1])/d*(p.x[i]-p.x[i-1])
}

func (p *PDF) String() string {
	s := "PDF"
	if p.name != "" {
		s += ": " + p.name
	}
	if p.variableType != "" {
		s += " - " + p.variableType
	}
	if p.unit != "" {
		s += " (" + p.unit + ")"
	}
	return s
}

// interp linearly interpolates ys as a function of xs at v. xs must
// be sorted ascending and bracket v.
func interp(xs, ys []float64, v float64) float64 {
	i := sort.SearchFloat64s(xs, v)
	if i < len(xs) && xs[i] == v {
		return ys[i]
	}
	if i <= 0 {
		return ys[0]
	}
	if i >= len(xs) {
		return ys[len(ys)-1]
	}
	t := (v - xs[i-1]) / (xs[i] - xs[i-1])
	return ys[i-1] + t*(ys[i]-ys[i-1])
}
