// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riserlab/riser/pdf"
)

// Sigma levels of the normal distribution: the fraction of values
// within n standard deviations of the mean.
var sigmaLevels = [...]float64{
	1: 0.682689492137086,
	2: 0.954499736103642,
	3: 0.997300203936740,
	4: 0.999936657516334,
	5: 0.999999426696856,
	6: 0.999999998026825,
	7: 0.999999999997440,
}

// Sigma returns the confidence level corresponding to n standard
// deviations of a normal distribution, for n in [1, 7].
func Sigma(n int) float64 {
	if n < 1 || n >= len(sigmaLevels) {
		panic(fmt.Sprintf("sigma level %d out of range [1, 7]", n))
	}
	return sigmaLevels[n]
}

// An Interval is one contiguous (low, high) domain range.
type Interval struct {
	Lo, Hi float64
}

// A ConfidenceRange describes where a given probability mass lies. An
// interquantile range is always one interval; a highest posterior
// density range may span several disjoint intervals when the PDF is
// multi-modal.
type ConfidenceRange struct {
	Name       string
	Method     string // "IQR" or "HPD"
	Confidence float64
	Intervals  []Interval
}

func (c ConfidenceRange) String() string {
	var b strings.Builder
	if c.Name != "" {
		fmt.Fprintf(&b, "%s: ", c.Name)
	}
	fmt.Fprintf(&b, "%.2f %% confidence (%s):", 100*c.Confidence, c.Method)
	for _, iv := range c.Intervals {
		fmt.Fprintf(&b, " (%.3f - %.3f)", iv.Lo, iv.Hi)
	}
	return b.String()
}

// IQR returns the interquantile range of p at the given confidence:
// the symmetric-tail interval between quantiles 0.5-c/2 and 0.5+c/2.
func IQR(p *pdf.PDF, confidence float64) ConfidenceRange {
	half := confidence / 2
	return ConfidenceRange{
		Name:       p.Name(),
		Method:     "IQR",
		Confidence: confidence,
		Intervals: []Interval{{
			Lo: p.Quantile(0.5 - half),
			Hi: p.Quantile(0.5 + half),
		}},
	}
}

// HPD returns the highest posterior density range of p at the given
// confidence: the narrowest set of domain ranges containing that
// probability mass. Samples are ranked by density and accumulated
// until the mass reaches the confidence level, then contiguous runs
// of selected samples are grouped into disjoint intervals.
func HPD(p *pdf.PDF, confidence float64) ConfidenceRange {
	n := p.Len()
	x := p.X()
	px := p.Density()
	dx := pdf.SpacingArray(p)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return px[order[a]] > px[order[b]]
	})

	selected := make([]bool, n)
	var mass float64
	for _, i := range order {
		m := px[i] * dx[i]
		if mass+m > confidence && mass > 0 {
			break
		}
		selected[i] = true
		mass += m
		if mass >= confidence {
			break
		}
	}

	var intervals []Interval
	for i := 0; i < n; i++ {
		if !selected[i] {
			continue
		}
		j := i
		for j+1 < n && selected[j+1] {
			j++
		}
		intervals = append(intervals, Interval{Lo: x[i], Hi: x[j]})
		i = j
	}

	return ConfidenceRange{
		Name:       p.Name(),
		Method:     "HPD",
		Confidence: confidence,
		Intervals:  intervals,
	}
}

// PDFStatistics summarizes the location and shape of a PDF.
type PDFStatistics struct {
	Mean     float64
	Variance float64
	StdDev   float64
	Skewness float64
	Kurtosis float64
	Mode     float64
	Median   float64
}

// Summary computes the descriptive statistics of p.
func Summary(p *pdf.PDF) PDFStatistics {
	return PDFStatistics{
		Mean:     Mean(p),
		Variance: Variance(p),
		StdDev:   StdDev(p),
		Skewness: Skewness(p),
		Kurtosis: Kurtosis(p),
		Mode:     Mode(p),
		Median:   Median(p),
	}
}

func (s PDFStatistics) String() string {
	return fmt.Sprintf(
		"  mode: %.3f\nmedian: %.3f\n  mean: %.3f\n   std: %.3f\n   var: %.3f\n  skew: %.3f\n  kurt: %.3f",
		s.Mode, s.Median, s.Mean, s.StdDev, s.Variance, s.Skewness, s.Kurtosis)
}
