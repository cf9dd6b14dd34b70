// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rate

import (
	"context"

	"github.com/pkg/errors"

	"github.com/riserlab/riser/diag"
	"github.com/riserlab/riser/marker"
	"github.com/riserlab/riser/pdf"
	"github.com/riserlab/riser/sample"
	"github.com/riserlab/riser/unit"
)

// MCOptions configures the Monte Carlo rate path.
type MCOptions struct {
	// Criterion filters joint trials. Defaults to sample.NonNegative,
	// since rates from unordered trials are meaningless.
	Criterion sample.Criterion

	Samples  int
	Seed     int64
	HardStop int

	// Formation builds each rate PDF from its samples. Defaults to
	// sample.Histogram.
	Formation sample.Formation

	// Grid bounds the formation grid; zero fields are derived from
	// the rate samples of each pair separately.
	Grid sample.GridOptions

	// Smoothing, when set, is applied to each formed rate PDF.
	Smoothing *sample.FilterOptions
}

// MCResult carries the derived rates along with the raw material they
// were formed from, for inspection and plotting.
type MCResult struct {
	Rates []Incremental

	// Picks are the accepted joint trials, marker-major.
	Picks sample.Picks

	// RateSamples[i] are the incremental rate values of pair i, one
	// per accepted trial.
	RateSamples [][]float64
}

// MonteCarlo derives incremental slip rates by sampling the marker
// chain jointly, so the correlation the acceptance criterion imposes
// between adjacent pairs is preserved. Each pair's rate samples are
// (Δdisplacement)/(Δage) per accepted trial, formed into a PDF and
// optionally smoothed.
func MonteCarlo(ctx context.Context, markers marker.List, opts MCOptions) (MCResult, diag.Diagnostics, error) {
	pairs := markers.Pairs()
	if pairs == nil {
		return MCResult{}, nil, errors.Errorf("need at least 2 markers for incremental rates, have %d", len(markers))
	}
	crit := opts.Criterion
	if crit == nil {
		crit = sample.NonNegative{}
	}
	formation := opts.Formation
	if formation == nil {
		formation = sample.Histogram
	}

	picks, d, err := sample.MonteCarlo(ctx, markers, crit, sample.Options{
		Samples:  opts.Samples,
		Seed:     opts.Seed,
		HardStop: opts.HardStop,
	})
	if err != nil {
		return MCResult{}, d, err
	}
	if picks.Accepted < 2 {
		return MCResult{}, d, errors.Errorf("only %d accepted trials; cannot form rate PDFs", picks.Accepted)
	}

	res := MCResult{
		Picks:       picks,
		RateSamples: make([][]float64, len(pairs)),
		Rates:       make([]Incremental, 0, len(pairs)),
	}
	for i, pair := range pairs {
		rates := make([]float64, 0, picks.Accepted)
		for k := 0; k < picks.Accepted; k++ {
			dt := picks.Ages[i+1][k] - picks.Ages[i][k]
			if dt <= 0 {
				// Possible under a permissive criterion; such a
				// trial has no defined rate.
				continue
			}
			dd := picks.Displacements[i+1][k] - picks.Displacements[i][k]
			rates = append(rates, dd/dt)
		}
		res.RateSamples[i] = rates

		grid := opts.Grid
		grid.Name = pair.Name()
		grid.VariableType = VariableType
		grid.Unit = unit.Quotient(
			unit.Common([]*pdf.PDF{pair.Younger.Displacement, pair.Older.Displacement}),
			unit.Common([]*pdf.PDF{pair.Younger.Age, pair.Older.Age}))
		p, err := formation(rates, grid)
		if err != nil {
			return MCResult{}, d, errors.Wrapf(err, "pair %s", pair.Name())
		}
		if opts.Smoothing != nil {
			p, err = sample.Smooth(p, *opts.Smoothing)
			if err != nil {
				return MCResult{}, d, errors.Wrapf(err, "pair %s", pair.Name())
			}
		}
		if p.Unit() == "" {
			d.Warnf(diag.UnitMismatch, "pair %s: inconsistent input units; rate is unitless", pair.Name())
		}
		res.Rates = append(res.Rates, Incremental{Name: pair.Name(), Rate: p})
	}
	return res, d, nil
}
