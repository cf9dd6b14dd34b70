// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/riserlab/riser/algebra"
	"github.com/riserlab/riser/pdf"
	"github.com/riserlab/riser/pdfio"
)

var opsFlags struct {
	clamp       bool
	maxQuotient float64
	dq          float64
	out         string
}

// readAll loads PDF files and resamples them onto a shared domain.
func readAll(paths []string) ([]*pdf.PDF, error) {
	pdfs := make([]*pdf.PDF, len(paths))
	for i, path := range paths {
		p, err := pdfio.Read(path)
		if err != nil {
			return nil, err
		}
		pdfs[i] = p
	}
	return pdf.InterpolateAll(pdfs)
}

func binaryOp(name string, op func(a, b *pdf.PDF) (*pdf.PDF, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		pdfs, err := readAll(args)
		if err != nil {
			return err
		}
		out, err := op(pdfs[0], pdfs[1])
		if err != nil {
			return err
		}
		return emit(opsFlags.out, out.WithName(name))
	}
}

func variadicOp(name string, op func([]*pdf.PDF) (*pdf.PDF, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		pdfs, err := readAll(args)
		if err != nil {
			return err
		}
		out, err := op(pdfs)
		if err != nil {
			return err
		}
		return emit(opsFlags.out, out.WithName(name))
	}
}

var addCmd = &cobra.Command{
	Use:   "add <a.txt> <b.txt>",
	Short: "PDF of the sum of two independent variables",
	Args:  cobra.ExactArgs(2),
	RunE:  binaryOp("sum", algebra.Add),
}

var subtractCmd = &cobra.Command{
	Use:   "subtract <a.txt> <b.txt>",
	Short: "PDF of the difference a-b of two independent variables",
	Args:  cobra.ExactArgs(2),
	RunE: binaryOp("difference", func(a, b *pdf.PDF) (*pdf.PDF, error) {
		return algebra.Subtract(a, b, opsFlags.clamp)
	}),
}

var divideCmd = &cobra.Command{
	Use:   "divide <num.txt> <denom.txt>",
	Short: "PDF of the ratio of two independent variables",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		num, err := pdfio.Read(args[0])
		if err != nil {
			return err
		}
		denom, err := pdfio.Read(args[1])
		if err != nil {
			return err
		}
		out, err := algebra.Divide(num, denom, algebra.DivideOptions{
			MaxQuotient: opsFlags.maxQuotient,
			Step:        opsFlags.dq,
		})
		if err != nil {
			return err
		}
		return emit(opsFlags.out, out.WithName("quotient"))
	},
}

var combineCmd = &cobra.Command{
	Use:   "combine <files...>",
	Short: "pointwise product of PDFs: joint update from independent evidence",
	Args:  cobra.MinimumNArgs(2),
	RunE:  variadicOp("combined", algebra.Combine),
}

var mergeCmd = &cobra.Command{
	Use:   "merge <files...>",
	Short: "pointwise sum of PDFs: equal-weight mixture of hypotheses",
	Args:  cobra.MinimumNArgs(2),
	RunE:  variadicOp("merged", algebra.Merge),
}

var interpolateDir string

var interpolateCmd = &cobra.Command{
	Use:   "interpolate <files...>",
	Short: "resample PDFs onto a shared value array",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pdfs, err := readAll(args)
		if err != nil {
			return err
		}
		for i, p := range pdfs {
			if interpolateDir == "" {
				if err := emit("", p); err != nil {
					return err
				}
				continue
			}
			path := filepath.Join(interpolateDir, filepath.Base(args[i]))
			if err := pdfio.Write(path, p); err != nil {
				return err
			}
			cmd.Println("wrote", path)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{addCmd, subtractCmd, divideCmd, combineCmd, mergeCmd} {
		c.Flags().StringVar(&opsFlags.out, "out", "", "output file prefix; print a summary when empty")
		rootCmd.AddCommand(c)
	}
	subtractCmd.Flags().BoolVar(&opsFlags.clamp, "clamp", false, "zero density at negative differences")
	divideCmd.Flags().Float64Var(&opsFlags.maxQuotient, "max-quotient", 100, "largest ratio on the quotient grid")
	divideCmd.Flags().Float64Var(&opsFlags.dq, "dq", 0.01, "quotient grid spacing")

	interpolateCmd.Flags().StringVar(&interpolateDir, "out-dir", "", "directory for resampled files; print summaries when empty")
	rootCmd.AddCommand(interpolateCmd)
}
