// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/riserlab/riser/pdf"
)

// GridOptions controls the grid an empirical PDF is formed on. Zero
// fields are derived from the samples.
type GridOptions struct {
	Min, Max float64
	Step     float64

	Name         string
	VariableType string
	Unit         string
}

// A Formation turns raw samples into a PDF on a grid.
type Formation func(samples []float64, opts GridOptions) (*pdf.PDF, error)

// FormationByName maps a command-line name to a Formation.
func FormationByName(name string) (Formation, error) {
	switch name {
	case "histogram":
		return Histogram, nil
	case "kde":
		return KDE, nil
	}
	return nil, errors.Errorf("unknown formation method %q", name)
}

// Histogram forms a PDF by binning the samples. Each grid point
// carries the density of the bin to its right, so the final point is a
// zero bin closing the support. The default step divides the sample
// range into ceil(sqrt(n)) bins.
func Histogram(samples []float64, opts GridOptions) (*pdf.PDF, error) {
	if len(samples) < 2 {
		return nil, errors.Errorf("need at least 2 samples to form a PDF, have %d", len(samples))
	}
	min, max := opts.Min, opts.Max
	if min == 0 && max == 0 {
		min, max = floats.Min(samples), floats.Max(samples)
	}
	if max <= min {
		return nil, errors.Errorf("degenerate sample range [%v, %v]", min, max)
	}
	step := opts.Step
	if step <= 0 {
		step = (max - min) / math.Ceil(math.Sqrt(float64(len(samples))))
	}

	x, err := pdf.Values(min, max, step)
	if err != nil {
		return nil, err
	}
	px := make([]float64, len(x))
	inRange := 0
	for _, s := range samples {
		if s < min || s > max {
			continue
		}
		// The top edge closes the last bin rather than opening a
		// new one.
		i := int((s - min) / step)
		if i > len(px)-2 {
			i = len(px) - 2
		}
		px[i]++
		inRange++
	}
	if inRange == 0 {
		return nil, errors.Errorf("no samples inside [%v, %v]", min, max)
	}
	for i := range px {
		px[i] /= float64(inRange) * step
	}
	px[len(px)-1] = 0

	return pdf.New(x, px, pdf.Options{
		Normalize:    true,
		Name:         opts.Name,
		VariableType: opts.VariableType,
		Unit:         opts.Unit,
	})
}

// kdeGridPoints is the default grid resolution for KDE formation.
const kdeGridPoints = 200

// KDE forms a PDF by Gaussian kernel density estimation with the
// Silverman rule-of-thumb bandwidth. The default grid spans the
// samples plus three bandwidths of margin.
func KDE(samples []float64, opts GridOptions) (*pdf.PDF, error) {
	if len(samples) < 2 {
		return nil, errors.Errorf("need at least 2 samples to form a PDF, have %d", len(samples))
	}
	sd := stat.StdDev(samples, nil)
	if sd == 0 {
		return nil, errors.New("samples have zero variance")
	}
	h := 1.06 * sd * math.Pow(float64(len(samples)), -0.2)

	min, max := opts.Min, opts.Max
	if min == 0 && max == 0 {
		min = floats.Min(samples) - 3*h
		max = floats.Max(samples) + 3*h
	}
	if max <= min {
		return nil, errors.Errorf("degenerate sample range [%v, %v]", min, max)
	}
	step := opts.Step
	if step <= 0 {
		step = (max - min) / kdeGridPoints
	}

	x, err := pdf.Values(min, max, step)
	if err != nil {
		return nil, err
	}
	px := make([]float64, len(x))
	for _, s := range samples {
		kernel := distuv.Normal{Mu: s, Sigma: h}
		for i, xi := range x {
			px[i] += kernel.Prob(xi)
		}
	}
	for i := range px {
		px[i] /= float64(len(samples))
	}

	return pdf.New(x, px, pdf.Options{
		Normalize:    true,
		Name:         opts.Name,
		VariableType: opts.VariableType,
		Unit:         opts.Unit,
	})
}
