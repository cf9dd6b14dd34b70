// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// riser estimates fault slip rates from dated, displaced landscape
// markers described by discrete probability density functions.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riserlab/riser/diag"
	"github.com/riserlab/riser/pdf"
	"github.com/riserlab/riser/pdfio"
	"github.com/riserlab/riser/stats"
)

var rootCmd = &cobra.Command{
	Use:           "riser",
	Short:         "probabilistic slip rate estimation from dated offset markers",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "riser:", err)
		os.Exit(1)
	}
}

// printDiags reports warnings on stderr, keeping stdout for results.
func printDiags(d diag.Diagnostics) {
	for _, w := range d {
		fmt.Fprintln(os.Stderr, w)
	}
}

// emit writes p to "<prefix><name>.txt" when an output prefix is set
// and otherwise describes it on stdout.
func emit(prefix string, p *pdf.PDF) error {
	if prefix == "" {
		fmt.Println(describe(p))
		return nil
	}
	name := strings.ReplaceAll(p.Name(), " ", "_")
	if name == "" {
		name = "out"
	}
	path := prefix + name + ".txt"
	if err := pdfio.Write(path, p); err != nil {
		return err
	}
	fmt.Println("wrote", path)
	return nil
}

func describe(p *pdf.PDF) string {
	var b strings.Builder
	if p.Name() != "" {
		fmt.Fprintf(&b, "%s", p.Name())
		if p.VariableType() != "" {
			fmt.Fprintf(&b, " (%s)", p.VariableType())
		}
		if p.Unit() != "" {
			fmt.Fprintf(&b, " [%s]", p.Unit())
		}
		b.WriteByte('\n')
	}
	b.WriteString(stats.Summary(p).String())
	return b.String()
}
