// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"context"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/riserlab/riser/diag"
	"github.com/riserlab/riser/marker"
)

// Options configures the Monte Carlo sampler.
type Options struct {
	// Samples is the number of accepted trials to collect. Defaults
	// to 10000.
	Samples int

	// Seed seeds the sampler's local RNG, so equal seeds reproduce
	// equal picks.
	Seed int64

	// HardStop caps the total number of trials, accepted or not, so
	// an unsatisfiable criterion terminates. Defaults to 1e9.
	HardStop int
}

// Picks holds the accepted joint trials. Ages and Displacements are
// marker-major: Ages[i][k] is marker i's age in accepted trial k, so a
// column across markers is one mutually consistent trial.
type Picks struct {
	Ages          [][]float64
	Displacements [][]float64
	Accepted      int
	Tossed        int
}

// checkEvery is how many trials pass between context checks.
const checkEvery = 4096

// MonteCarlo draws joint trials from the marker chain by inverse
// transform sampling and keeps those the criterion accepts. If the
// hard stop is reached first, the picks collected so far are returned
// with a SamplingShortfall diagnostic rather than an error.
func MonteCarlo(ctx context.Context, markers marker.List, crit Criterion, opts Options) (Picks, diag.Diagnostics, error) {
	var d diag.Diagnostics
	if len(markers) == 0 {
		return Picks{}, d, errors.New("no markers to sample")
	}
	if opts.Samples <= 0 {
		opts.Samples = 10000
	}
	if opts.HardStop <= 0 {
		opts.HardStop = 1e9
	}
	if crit == nil {
		crit = AcceptAll{}
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	n := len(markers)
	picks := Picks{
		Ages:          make([][]float64, n),
		Displacements: make([][]float64, n),
	}
	for i := range picks.Ages {
		picks.Ages[i] = make([]float64, 0, opts.Samples)
		picks.Displacements[i] = make([]float64, 0, opts.Samples)
	}

	ages := make([]float64, n)
	disps := make([]float64, n)
	for trials := 0; picks.Accepted < opts.Samples && trials < opts.HardStop; trials++ {
		if trials%checkEvery == 0 {
			select {
			case <-ctx.Done():
				return Picks{}, d, ctx.Err()
			default:
			}
		}

		for i, m := range markers {
			ages[i] = m.Age.Quantile(rng.Float64())
			disps[i] = m.Displacement.Quantile(rng.Float64())
		}
		if !crit.Accept(ages, disps) {
			picks.Tossed++
			continue
		}
		for i := range markers {
			picks.Ages[i] = append(picks.Ages[i], ages[i])
			picks.Displacements[i] = append(picks.Displacements[i], disps[i])
		}
		picks.Accepted++
	}

	if picks.Accepted < opts.Samples {
		d.Warnf(diag.SamplingShortfall,
			"collected %d of %d samples before the %d-trial hard stop; consider a looser criterion",
			picks.Accepted, opts.Samples, opts.HardStop)
	}
	return picks, d, nil
}
