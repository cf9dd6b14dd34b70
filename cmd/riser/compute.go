// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riserlab/riser/algebra"
	"github.com/riserlab/riser/marker"
	"github.com/riserlab/riser/rate"
	"github.com/riserlab/riser/sample"
	"github.com/riserlab/riser/stats"
)

var computeFlags struct {
	clampDisplacement bool
	maxQuotient       float64
	dq                float64
	out               string
}

var computeCmd = &cobra.Command{
	Use:   "compute <markers.toml>",
	Short: "analytical incremental slip rates for a marker chain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		markers, d, err := marker.ReadConfig(args[0])
		printDiags(d)
		if err != nil {
			return err
		}

		rates, d, err := rate.Analytical(markers, rate.AnalyticalOptions{
			ClampDisplacement: computeFlags.clampDisplacement,
			Divide: algebra.DivideOptions{
				MaxQuotient: computeFlags.maxQuotient,
				Step:        computeFlags.dq,
			},
		})
		printDiags(d)
		if err != nil {
			return err
		}

		for _, r := range rates {
			if err := emit(computeFlags.out, r.Rate); err != nil {
				return err
			}
		}
		return nil
	},
}

var computeMCFlags struct {
	samples   int
	seed      int64
	hardStop  int
	criterion string
	maxRate   float64
	formation string
	smooth    int
	out       string
}

var computeMCCmd = &cobra.Command{
	Use:   "compute-mc <markers.toml>",
	Short: "Monte Carlo incremental slip rates for a marker chain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		crit, err := sample.CriterionByName(computeMCFlags.criterion, computeMCFlags.maxRate)
		if err != nil {
			return err
		}
		formation, err := sample.FormationByName(computeMCFlags.formation)
		if err != nil {
			return err
		}
		var smoothing *sample.FilterOptions
		if computeMCFlags.smooth > 0 {
			smoothing = &sample.FilterOptions{
				Type:          sample.Gauss,
				Width:         computeMCFlags.smooth,
				PreserveEdges: true,
			}
		}

		markers, d, err := marker.ReadConfig(args[0])
		printDiags(d)
		if err != nil {
			return err
		}

		res, d, err := rate.MonteCarlo(cmd.Context(), markers, rate.MCOptions{
			Criterion: crit,
			Samples:   computeMCFlags.samples,
			Seed:      computeMCFlags.seed,
			HardStop:  computeMCFlags.hardStop,
			Formation: formation,
			Smoothing: smoothing,
		})
		printDiags(d)
		if err != nil {
			return err
		}

		for i, r := range res.Rates {
			fmt.Println(stats.SampleConfidence(res.RateSamples[i], stats.Sigma(2), r.Name, r.Rate.Unit()))
			if err := emit(computeMCFlags.out, r.Rate); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	f := computeCmd.Flags()
	f.BoolVar(&computeFlags.clampDisplacement, "clamp-displacement", false,
		"zero negative incremental displacement before dividing")
	f.Float64Var(&computeFlags.maxQuotient, "max-quotient", 100, "largest rate on the quotient grid")
	f.Float64Var(&computeFlags.dq, "dq", 0.01, "quotient grid spacing")
	f.StringVar(&computeFlags.out, "out", "", "output file prefix; print summaries when empty")
	rootCmd.AddCommand(computeCmd)

	f = computeMCCmd.Flags()
	f.IntVar(&computeMCFlags.samples, "samples", 10000, "accepted trials to collect")
	f.Int64Var(&computeMCFlags.seed, "seed", 0, "random seed")
	f.IntVar(&computeMCFlags.hardStop, "hard-stop", 1e9, "cap on total trials")
	f.StringVar(&computeMCFlags.criterion, "criterion", "non-negative",
		"trial acceptance criterion: all, non-negative, max-rate")
	f.Float64Var(&computeMCFlags.maxRate, "max-rate", 0, "rate bound for the max-rate criterion")
	f.StringVar(&computeMCFlags.formation, "formation", "histogram",
		"how rate PDFs are formed from samples: histogram, kde")
	f.IntVar(&computeMCFlags.smooth, "smooth", 0, "Gaussian smoothing width in grid points; 0 disables")
	f.StringVar(&computeMCFlags.out, "out", "", "output file prefix; print summaries when empty")
	rootCmd.AddCommand(computeMCCmd)
}
