// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/riserlab/riser/pdf"
)

// A FilterType selects a smoothing kernel shape.
type FilterType int

const (
	// Mean is a boxcar moving average.
	Mean FilterType = iota
	// Gauss is a sampled Gaussian with sigma = width/4.
	Gauss
)

// Padding selects how samples beyond the domain are treated during
// convolution.
type Padding int

const (
	// PadZero treats the density as zero outside the domain.
	PadZero Padding = iota
	// PadReplicate extends the edge values outward.
	PadReplicate
)

// FilterOptions configures Smooth.
type FilterOptions struct {
	Type    FilterType
	Width   int
	Padding Padding

	// PreserveEdges convolves each point near a boundary with a
	// truncated, renormalized kernel instead of padded samples, so
	// sharp support edges are not smeared outward.
	PreserveEdges bool
}

// MeanFilter returns a unit-gain boxcar kernel of the given width.
func MeanFilter(width int) []float64 {
	k := make([]float64, width)
	for i := range k {
		k[i] = 1 / float64(width)
	}
	return k
}

// GaussFilter returns a unit-gain sampled Gaussian kernel of the
// given width with sigma = width/4.
func GaussFilter(width int) []float64 {
	sigma := float64(width) / 4
	center := float64(width-1) / 2
	k := make([]float64, width)
	for i := range k {
		z := (float64(i) - center) / sigma
		k[i] = math.Exp(-z * z / 2)
	}
	floats.Scale(1/floats.Sum(k), k)
	return k
}

// Smooth convolves the density of p with the selected kernel on p's
// own grid and renormalizes to unit area. Metadata is carried over.
func Smooth(p *pdf.PDF, opts FilterOptions) (*pdf.PDF, error) {
	if opts.Width < 2 {
		return nil, errors.Errorf("filter width must be at least 2, have %d", opts.Width)
	}
	if opts.Width >= p.Len() {
		return nil, errors.Errorf("filter width %d too wide for %d-point PDF", opts.Width, p.Len())
	}

	var kernel []float64
	switch opts.Type {
	case Mean:
		kernel = MeanFilter(opts.Width)
	case Gauss:
		kernel = GaussFilter(opts.Width)
	default:
		return nil, errors.Errorf("unknown filter type %d", opts.Type)
	}

	px := p.Density()
	n := len(px)
	c := opts.Width / 2
	out := make([]float64, n)
	for i := range out {
		if opts.PreserveEdges && (i < c || i+opts.Width-c > n) {
			// Truncated kernel over the in-domain taps only.
			var acc, gain float64
			for j, kj := range kernel {
				src := i + j - c
				if src < 0 || src >= n {
					continue
				}
				acc += kj * px[src]
				gain += kj
			}
			out[i] = acc / gain
			continue
		}
		var acc float64
		for j, kj := range kernel {
			src := i + j - c
			switch {
			case src >= 0 && src < n:
				acc += kj * px[src]
			case opts.Padding == PadReplicate && src < 0:
				acc += kj * px[0]
			case opts.Padding == PadReplicate:
				acc += kj * px[n-1]
			}
		}
		out[i] = acc
	}

	return pdf.New(p.X(), out, pdf.Options{
		Normalize:    true,
		Name:         p.Name(),
		VariableType: p.VariableType(),
		Unit:         p.Unit(),
	})
}
