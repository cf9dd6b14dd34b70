// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"fmt"
	"math"
	"sort"
)

// precisionDecimals is the number of decimals retained when building
// value arrays. Rounding to a fixed tiny digit keeps repeated domain
// constructions bit-identical despite accumulated float error.
const precisionDecimals = 10

const precisionScale = 1e10 // 10^precisionDecimals

// Round rounds x to the library's working precision.
func Round(x float64) float64 {
	return math.Round(x*precisionScale) / precisionScale
}

// Values builds an evenly spaced value array from xmin to xmax
// inclusive with step dx, each value rounded to the working
// precision.
func Values(xmin, xmax, dx float64) ([]float64, error) {
	if dx <= 0 {
		return nil, InvalidRangeError{fmt.Sprintf("step must be positive, have %g", dx)}
	}
	if xmax <= xmin {
		return nil, InvalidRangeError{fmt.Sprintf("empty interval [%g, %g]", xmin, xmax)}
	}
	dx = Round(dx)
	var xs []float64
	for i := 0; ; i++ {
		v := Round(xmin + float64(i)*dx)
		if v > xmax+dx/2 {
			break
		}
		xs = append(xs, v)
	}
	return xs, nil
}

// Spacing returns a single representative sample spacing for p, the
// median of consecutive domain differences rounded to the working
// precision.
func Spacing(p *PDF) float64 {
	d := diffs(p)
	sort.Float64s(d)
	n := len(d)
	if n%2 == 1 {
		return Round(d[n/2])
	}
	return Round(0.5 * (d[n/2-1] + d[n/2]))
}

// SpacingArray returns a per-sample bin width vector for p. The first
// n-1 widths are the consecutive domain differences. If the sampling
// is regular the final width reuses the mean difference; if it is
// irregular the final width is zero, excluding the last sample from
// integral-style sums.
func SpacingArray(p *PDF) []float64 {
	d := diffs(p)

	var mean, m2 float64
	for _, v := range d {
		mean += v
	}
	mean /= float64(len(d))
	for _, v := range d {
		m2 += (v - mean) * (v - mean)
	}
	std := math.Sqrt(m2 / float64(len(d)))

	last := 0.0
	if std <= 1/precisionScale {
		last = mean
	}
	out := make([]float64, len(d)+1)
	for i, v := range d {
		out[i] = Round(v)
	}
	out[len(d)] = Round(last)
	return out
}

// DomainParams derives common value-array parameters for a set of
// PDFs: the union of their domains and the finest representative
// spacing, so no PDF loses information when resampled.
func DomainParams(pdfs []*PDF) (xmin, xmax, dx float64, err error) {
	if len(pdfs) == 0 {
		return 0, 0, 0, InvalidRangeError{"no PDFs given"}
	}
	xmin = pdfs[0].Min()
	xmax = pdfs[0].Max()
	dx = Spacing(pdfs[0])
	for _, p := range pdfs[1:] {
		if p.Min() < xmin {
			xmin = p.Min()
		}
		if p.Max() > xmax {
			xmax = p.Max()
		}
		if d := Spacing(p); d < dx {
			dx = d
		}
	}
	return xmin, xmax, dx, nil
}

// SameDomain checks that all PDFs are tabulated over identical value
// arrays.
func SameDomain(pdfs []*PDF) error {
	if len(pdfs) == 0 {
		return nil
	}
	first := pdfs[0]
	for k, p := range pdfs[1:] {
		if p.Len() != first.Len() {
			return DomainMismatchError{fmt.Sprintf("PDF %d has %d points, expected %d", k+1, p.Len(), first.Len())}
		}
		for i := 0; i < p.Len(); i++ {
			xa, _ := first.At(i)
			xb, _ := p.At(i)
			if xa != xb {
				return DomainMismatchError{fmt.Sprintf("PDF %d differs at sample %d (%g != %g)", k+1, i, xb, xa)}
			}
		}
	}
	return nil
}

func diffs(p *PDF) []float64 {
	n := p.Len()
	d := make([]float64, n-1)
	for i := 1; i < n; i++ {
		xa, _ := p.At(i - 1)
		xb, _ := p.At(i)
		d[i-1] = xb - xa
	}
	return d
}
