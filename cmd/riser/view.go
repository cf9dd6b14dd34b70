// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riserlab/riser/pdfio"
	"github.com/riserlab/riser/stats"
)

var viewCmd = &cobra.Command{
	Use:   "view <file.txt>",
	Short: "describe the distribution in a PDF file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pdfio.Read(args[0])
		if err != nil {
			return err
		}

		fmt.Println(describe(p))
		fmt.Println()
		for _, sigma := range []int{1, 2} {
			conf := stats.Sigma(sigma)
			fmt.Println(stats.IQR(p, conf))
			fmt.Println(stats.HPD(p, conf))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
