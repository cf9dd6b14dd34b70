// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rate derives incremental slip rates from a marker chain,
// either analytically through PDF algebra or by Monte Carlo sampling.
package rate

import (
	"github.com/pkg/errors"

	"github.com/riserlab/riser/algebra"
	"github.com/riserlab/riser/diag"
	"github.com/riserlab/riser/marker"
	"github.com/riserlab/riser/pdf"
)

// VariableType labels every derived rate PDF.
const VariableType = "slip rate"

// AnalyticalOptions configures the analytical rate path.
type AnalyticalOptions struct {
	// ClampDisplacement zeroes negative incremental displacement
	// before division. Age differences are always clamped; whether
	// back-slip is admissible is the analyst's call.
	ClampDisplacement bool

	Divide algebra.DivideOptions
}

// An Incremental is the slip rate between one adjacent marker pair.
type Incremental struct {
	Name string
	Rate *pdf.PDF
}

// Analytical computes the incremental slip rate of every adjacent
// marker pair by convolution and ratio integration: for each pair the
// age and displacement differences older−younger are formed, then
// divided. Results come back in chain order. Unit conflicts between
// the pair's PDFs null the derived unit and warn; they never fail.
func Analytical(markers marker.List, opts AnalyticalOptions) ([]Incremental, diag.Diagnostics, error) {
	var d diag.Diagnostics
	pairs := markers.Pairs()
	if pairs == nil {
		return nil, d, errors.Errorf("need at least 2 markers for incremental rates, have %d", len(markers))
	}

	out := make([]Incremental, 0, len(pairs))
	for _, pair := range pairs {
		rate, err := pairRate(pair, opts)
		if err != nil {
			return nil, d, errors.Wrapf(err, "pair %s", pair.Name())
		}
		if rate.Unit() == "" {
			d.Warnf(diag.UnitMismatch, "pair %s: inconsistent input units; rate is unitless", pair.Name())
		}
		out = append(out, Incremental{Name: pair.Name(), Rate: rate})
	}
	return out, d, nil
}

func pairRate(pair marker.Pair, opts AnalyticalOptions) (*pdf.PDF, error) {
	ages, err := pdf.InterpolateAll([]*pdf.PDF{pair.Younger.Age, pair.Older.Age})
	if err != nil {
		return nil, errors.Wrap(err, "resampling ages")
	}
	dt, err := algebra.Subtract(ages[1], ages[0], true)
	if err != nil {
		return nil, errors.Wrap(err, "age difference")
	}

	disps, err := pdf.InterpolateAll([]*pdf.PDF{pair.Younger.Displacement, pair.Older.Displacement})
	if err != nil {
		return nil, errors.Wrap(err, "resampling displacements")
	}
	dd, err := algebra.Subtract(disps[1], disps[0], opts.ClampDisplacement)
	if err != nil {
		return nil, errors.Wrap(err, "displacement difference")
	}

	rate, err := algebra.Divide(dd, dt, opts.Divide)
	if err != nil {
		return nil, err
	}
	return rate.WithName(pair.Name()).WithVariableType(VariableType), nil
}

// Single computes the whole-history slip rate of one marker as its
// displacement divided by its age.
func Single(m marker.DatedMarker, opts algebra.DivideOptions) (*pdf.PDF, error) {
	rate, err := algebra.Divide(m.Displacement, m.Age, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "marker %s", m.Name)
	}
	return rate.WithName(m.Name).WithVariableType(VariableType), nil
}
