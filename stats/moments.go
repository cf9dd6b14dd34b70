// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats summarizes discrete PDFs and Monte Carlo pick arrays:
// moments, mode, median, and confidence ranges (interquantile and
// highest posterior density).
package stats

import (
	"math"

	"github.com/riserlab/riser/pdf"
)

// RawMoment computes Σ xⁿ·px·dx, the n'th raw moment of a tabulated
// density. dx is a per-sample bin width vector (pdf.SpacingArray).
func RawMoment(x, px, dx []float64, n int) float64 {
	var s float64
	for i := range x {
		s += math.Pow(x[i], float64(n)) * px[i] * dx[i]
	}
	return s
}

// CentralMoment computes the n'th moment about the mean,
// E[(X−μ)ⁿ].
func CentralMoment(x, px, dx []float64, n int) float64 {
	mu := RawMoment(x, px, dx, 1)
	var s float64
	for i := range x {
		s += math.Pow(x[i]-mu, float64(n)) * px[i] * dx[i]
	}
	return s
}

// StandardizedMoment computes the n'th central moment normalized by
// the standard deviation raised to n.
func StandardizedMoment(x, px, dx []float64, n int) float64 {
	return CentralMoment(x, px, dx, n) / math.Pow(CentralMoment(x, px, dx, 2), float64(n)/2)
}

// Mean returns the expected value of p, its first raw moment.
func Mean(p *pdf.PDF) float64 {
	return RawMoment(p.X(), p.Density(), pdf.SpacingArray(p), 1)
}

// Variance returns the second central moment of p.
func Variance(p *pdf.PDF) float64 {
	return CentralMoment(p.X(), p.Density(), pdf.SpacingArray(p), 2)
}

// StdDev returns the square root of the variance of p.
func StdDev(p *pdf.PDF) float64 {
	return math.Sqrt(Variance(p))
}

// Skewness returns the third standardized moment of p.
func Skewness(p *pdf.PDF) float64 {
	return StandardizedMoment(p.X(), p.Density(), pdf.SpacingArray(p), 3)
}

// Kurtosis returns the fourth standardized moment of p. A normal
// distribution has kurtosis 3.
func Kurtosis(p *pdf.PDF) float64 {
	return StandardizedMoment(p.X(), p.Density(), pdf.SpacingArray(p), 4)
}

// Mode returns the domain value at the density maximum. Ties average.
func Mode(p *pdf.PDF) float64 {
	n := p.Len()
	max := math.Inf(-1)
	for i := 0; i < n; i++ {
		if _, v := p.At(i); v > max {
			max = v
		}
	}
	var sum float64
	var count int
	for i := 0; i < n; i++ {
		if x, v := p.At(i); v == max {
			sum += x
			count++
		}
	}
	return sum / float64(count)
}

// Median returns the domain value where the CDF crosses one half.
func Median(p *pdf.PDF) float64 {
	return p.Quantile(0.5)
}
