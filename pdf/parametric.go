// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Parametric density generators. Each evaluates a standard shape over
// a given value array and returns a unit-area PDF on that grid. These
// are the building blocks for synthetic age and displacement
// constraints and for tests.

// Boxcar returns a PDF uniform on (xmin, xmax) and zero elsewhere,
// tabulated over x.
func Boxcar(x []float64, xmin, xmax float64) (*PDF, error) {
	if xmax <= xmin {
		return nil, InvalidRangeError{fmt.Sprintf("boxcar interval [%g, %g] is empty", xmin, xmax)}
	}
	px := make([]float64, len(x))
	for i, v := range x {
		if v > xmin && v < xmax {
			px[i] = 1
		}
	}
	return New(x, px, Options{Normalize: true})
}

// Triangular returns a PDF rising linearly from xmin to a peak at
// xmode and falling linearly to xmax, tabulated over x.
func Triangular(x []float64, xmin, xmode, xmax float64) (*PDF, error) {
	if !(xmin < xmode && xmode < xmax) {
		return nil, InvalidRangeError{fmt.Sprintf("triangle needs xmin < xmode < xmax, have %g, %g, %g", xmin, xmode, xmax)}
	}
	px := make([]float64, len(x))
	for i, v := range x {
		switch {
		case v >= xmin && v < xmode:
			px[i] = (v - xmin) / (xmode - xmin)
		case v == xmode:
			px[i] = 1
		case v > xmode && v <= xmax:
			px[i] = (xmax - v) / (xmax - xmode)
		}
	}
	return New(x, px, Options{Normalize: true})
}

// Trapezoidal returns a PDF rising from x1 to x2, flat from x2 to x3,
// and falling from x3 to x4, tabulated over x.
func Trapezoidal(x []float64, x1, x2, x3, x4 float64) (*PDF, error) {
	if !(x1 < x2 && x2 <= x3 && x3 < x4) {
		return nil, InvalidRangeError{fmt.Sprintf("trapezoid needs x1 < x2 <= x3 < x4, have %g, %g, %g, %g", x1, x2, x3, x4)}
	}
	px := make([]float64, len(x))
	for i, v := range x {
		switch {
		case v > x1 && v < x2:
			px[i] = (v - x1) / (x2 - x1)
		case v >= x2 && v <= x3:
			px[i] = 1
		case v > x3 && v < x4:
			px[i] = (x4 - v) / (x4 - x3)
		}
	}
	return New(x, px, Options{Normalize: true})
}

// Gaussian returns a PDF with normal density of mean mu and standard
// deviation sigma, tabulated over x. Mass in the tails beyond the
// grid is lost to renormalization, so x should span several sigma.
func Gaussian(x []float64, mu, sigma float64) (*PDF, error) {
	if sigma <= 0 {
		return nil, InvalidRangeError{fmt.Sprintf("sigma must be positive, have %g", sigma)}
	}
	dist := distuv.Normal{Mu: mu, Sigma: sigma}
	px := make([]float64, len(x))
	for i, v := range x {
		px[i] = dist.Prob(v)
	}
	return New(x, px, Options{Normalize: true})
}

// CumulativeGaussian evaluates the normal CDF with mean mu and
// standard deviation sigma at each value of x.
func CumulativeGaussian(x []float64, mu, sigma float64) []float64 {
	dist := distuv.Normal{Mu: mu, Sigma: sigma}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = dist.CDF(v)
	}
	return out
}
