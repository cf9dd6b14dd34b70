// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

// Resampling here is interpolation plus extrapolation: density at
// values beyond a PDF's tabulated domain is zero, matching the
// convention that a discrete PDF carries no probability outside its
// support.

// Interpolate resamples p onto the value array x, linearly
// interpolating the density and assigning zero outside p's support.
// Metadata is copied verbatim and the result is renormalized to unit
// area on the new grid.
func Interpolate(p *PDF, x []float64) (*PDF, error) {
	px := make([]float64, len(x))
	for i, v := range x {
		px[i] = p.DensityAt(v)
	}
	return New(x, px, Options{
		Normalize:    true,
		Name:         p.Name(),
		VariableType: p.VariableType(),
		Unit:         p.Unit(),
	})
}

// InterpolateAll resamples every PDF onto a common value array
// spanning the union of their domains at the finest representative
// spacing. Elementwise operations (algebra, comparisons) require
// inputs resampled this way.
func InterpolateAll(pdfs []*PDF) ([]*PDF, error) {
	xmin, xmax, dx, err := DomainParams(pdfs)
	if err != nil {
		return nil, err
	}
	x, err := Values(xmin, xmax, dx)
	if err != nil {
		return nil, err
	}
	out := make([]*PDF, len(pdfs))
	for i, p := range pdfs {
		if out[i], err = Interpolate(p, x); err != nil {
			return nil, err
		}
	}
	return out, nil
}
