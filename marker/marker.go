// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package marker describes dated geomorphic offsets: pairs of age and
// displacement PDFs, organized as an explicitly ordered chain.
//
// The order of a marker List is load-bearing: incremental slip rates
// are computed between adjacent markers, so a chain must be listed
// consistently from youngest/least-displaced to oldest/most-displaced.
package marker

import (
	"fmt"

	"github.com/riserlab/riser/diag"
	"github.com/riserlab/riser/pdf"
	"github.com/riserlab/riser/stats"
	"github.com/riserlab/riser/unit"
)

// A DatedMarker pairs the age and displacement constraints of one
// offset landscape feature.
type DatedMarker struct {
	Name         string
	Age          *pdf.PDF
	Displacement *pdf.PDF
}

// New validates and builds a DatedMarker. Age units must resolve to
// the year base and displacement units to the meter base; a wrong
// base is fatal, while a missing unit only warns.
func New(name string, age, displacement *pdf.PDF) (DatedMarker, diag.Diagnostics, error) {
	var d diag.Diagnostics

	if age.Unit() == "" {
		d.Warnf(diag.UnitMismatch, "marker %s: age unit not specified", name)
	} else if base, err := unit.Base(age.Unit()); err != nil || base != unit.Years {
		return DatedMarker{}, d, fmt.Errorf("marker %s: age base unit must be %q, have %q", name, unit.Years, age.Unit())
	}

	if displacement.Unit() == "" {
		d.Warnf(diag.UnitMismatch, "marker %s: displacement unit not specified", name)
	} else if base, err := unit.Base(displacement.Unit()); err != nil || base != unit.Meters {
		return DatedMarker{}, d, fmt.Errorf("marker %s: displacement base unit must be %q, have %q", name, unit.Meters, displacement.Unit())
	}

	return DatedMarker{Name: name, Age: age, Displacement: displacement}, d, nil
}

func (m DatedMarker) String() string {
	return fmt.Sprintf("DatedMarker %s: age %.2f ± %.2f %s, displacement %.2f ± %.2f %s",
		m.Name,
		stats.Mode(m.Age), stats.StdDev(m.Age), m.Age.Unit(),
		stats.Mode(m.Displacement), stats.StdDev(m.Displacement), m.Displacement.Unit())
}

// A List is an ordered marker chain.
type List []DatedMarker

// Names returns the marker names in chain order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, m := range l {
		names[i] = m.Name
	}
	return names
}

// Ages returns the age PDFs in chain order.
func (l List) Ages() []*pdf.PDF {
	out := make([]*pdf.PDF, len(l))
	for i, m := range l {
		out[i] = m.Age
	}
	return out
}

// Displacements returns the displacement PDFs in chain order.
func (l List) Displacements() []*pdf.PDF {
	out := make([]*pdf.PDF, len(l))
	for i, m := range l {
		out[i] = m.Displacement
	}
	return out
}

// A Pair is one adjacent (younger, older) step of the chain.
type Pair struct {
	Younger, Older DatedMarker
}

// Name identifies the pair as "older-younger", matching the naming of
// the incremental slip rate it bounds.
func (p Pair) Name() string {
	return p.Older.Name + "-" + p.Younger.Name
}

// Pairs returns the adjacent marker pairs in chain order.
func (l List) Pairs() []Pair {
	if len(l) < 2 {
		return nil
	}
	pairs := make([]Pair, len(l)-1)
	for i := range pairs {
		pairs[i] = Pair{Younger: l[i], Older: l[i+1]}
	}
	return pairs
}

// CheckOrder compares mean ages and displacements of adjacent markers
// and warns when the chain does not increase monotonically. Out-of-
// order chains are suspicious but not invalid, so this never fails.
func CheckOrder(l List) diag.Diagnostics {
	var d diag.Diagnostics
	for i := 1; i < len(l); i++ {
		prev, cur := l[i-1], l[i]
		if stats.Mean(cur.Age) < stats.Mean(prev.Age) {
			d.Warnf(diag.OrderingWarning, "marker %s appears to be younger than %s; confirm marker order", cur.Name, prev.Name)
		}
		if stats.Mean(cur.Displacement) < stats.Mean(prev.Displacement) {
			d.Warnf(diag.OrderingWarning, "marker %s appears to be less displaced than %s; confirm marker order", cur.Name, prev.Name)
		}
	}
	return d
}
