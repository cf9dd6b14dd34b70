// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SampleStatistics summarizes a vector of Monte Carlo picks with a
// median-centered percentile range.
type SampleStatistics struct {
	Name       string
	Unit       string
	Confidence float64
	Median     float64
	Lo, Hi     float64
}

func (s SampleStatistics) String() string {
	out := "Sample statistics:"
	if s.Name != "" {
		out += " " + s.Name
	}
	if s.Unit != "" {
		out += " (" + s.Unit + ")"
	}
	out += fmt.Sprintf("\n%.2f %% : (%.3f - %.3f), median %.3f",
		100*s.Confidence, s.Lo, s.Hi, s.Median)
	return out
}

// SampleConfidence computes the percentile range of picks holding the
// given probability mass centered on the median.
func SampleConfidence(picks []float64, confidence float64, name, unit string) SampleStatistics {
	sorted := append([]float64(nil), picks...)
	sort.Float64s(sorted)

	half := confidence / 2
	return SampleStatistics{
		Name:       name,
		Unit:       unit,
		Confidence: confidence,
		Median:     stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Lo:         stat.Quantile(0.5-half, stat.Empirical, sorted, nil),
		Hi:         stat.Quantile(0.5+half, stat.Empirical, sorted, nil),
	}
}
