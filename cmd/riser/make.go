// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/riserlab/riser/pdf"
)

var makeFlags struct {
	min, max, dx float64
	name         string
	variableType string
	unit         string
	out          string
}

var makeCmd = &cobra.Command{
	Use:   "make <shape> <params...>",
	Short: "generate a parametric PDF file",
	Long: `Generate a parametric PDF on a regular grid.

Shapes and their parameters:
  gaussian mu sigma
  boxcar lo hi
  triangular lo mode hi
  trapezoidal x1 x2 x3 x4

The grid defaults to the shape's support with a 10% margin
(mu ± 5 sigma for gaussian).`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		shape := args[0]
		params, err := parseFloats(args[1:])
		if err != nil {
			return err
		}
		p, err := makePDF(shape, params)
		if err != nil {
			return err
		}
		p = p.WithName(makeFlags.name).
			WithVariableType(makeFlags.variableType).
			WithUnit(makeFlags.unit)
		return emit(makeFlags.out, p)
	},
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.Errorf("bad parameter %q", a)
		}
		out[i] = v
	}
	return out, nil
}

func makePDF(shape string, params []float64) (*pdf.PDF, error) {
	need := func(n int) error {
		if len(params) != n {
			return errors.Errorf("shape %s takes %d parameters, have %d", shape, n, len(params))
		}
		return nil
	}

	switch shape {
	case "gaussian":
		if err := need(2); err != nil {
			return nil, err
		}
		mu, sigma := params[0], params[1]
		x, err := grid(mu-5*sigma, mu+5*sigma)
		if err != nil {
			return nil, err
		}
		return pdf.Gaussian(x, mu, sigma)
	case "boxcar":
		if err := need(2); err != nil {
			return nil, err
		}
		x, err := grid(pad(params[0], params[1]))
		if err != nil {
			return nil, err
		}
		return pdf.Boxcar(x, params[0], params[1])
	case "triangular":
		if err := need(3); err != nil {
			return nil, err
		}
		x, err := grid(pad(params[0], params[2]))
		if err != nil {
			return nil, err
		}
		return pdf.Triangular(x, params[0], params[1], params[2])
	case "trapezoidal":
		if err := need(4); err != nil {
			return nil, err
		}
		x, err := grid(pad(params[0], params[3]))
		if err != nil {
			return nil, err
		}
		return pdf.Trapezoidal(x, params[0], params[1], params[2], params[3])
	}
	return nil, errors.Errorf("unknown shape %q", shape)
}

// pad widens a support by 10% so the density falls to zero inside the
// grid.
func pad(lo, hi float64) (float64, float64) {
	m := (hi - lo) / 10
	return lo - m, hi + m
}

// grid applies the --min/--max/--dx flags over the shape's defaults.
func grid(lo, hi float64) ([]float64, error) {
	if !(makeFlags.min == 0 && makeFlags.max == 0) {
		lo, hi = makeFlags.min, makeFlags.max
	}
	dx := makeFlags.dx
	if dx == 0 {
		dx = (hi - lo) / 1000
	}
	return pdf.Values(lo, hi, dx)
}

func init() {
	f := makeCmd.Flags()
	f.Float64Var(&makeFlags.min, "min", 0, "grid minimum; derived from the shape when min and max are 0")
	f.Float64Var(&makeFlags.max, "max", 0, "grid maximum")
	f.Float64Var(&makeFlags.dx, "dx", 0, "grid spacing; defaults to 1/1000 of the span")
	f.StringVar(&makeFlags.name, "name", "", "PDF name")
	f.StringVar(&makeFlags.variableType, "variable-type", "", "PDF variable type, e.g. age")
	f.StringVar(&makeFlags.unit, "unit", "", "PDF unit, e.g. ky or m")
	f.StringVar(&makeFlags.out, "out", "", "output file prefix; print a summary when empty")
	rootCmd.AddCommand(makeCmd)
}
