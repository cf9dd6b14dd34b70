// Copyright 2025 The RISeR Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sample draws joint trials from a marker chain and turns the
// accepted picks back into empirical PDFs.
package sample

import (
	"github.com/pkg/errors"
)

// A Criterion decides whether one joint trial across the marker chain
// is physically plausible. Both slices are in chain order, one value
// per marker.
type Criterion interface {
	Accept(ages, displacements []float64) bool
}

// AcceptAll keeps every trial.
type AcceptAll struct{}

func (AcceptAll) Accept(ages, displacements []float64) bool { return true }

// NonNegative requires ages and displacements to increase along the
// chain, i.e. every incremental slip rate to be non-negative.
type NonNegative struct{}

func (NonNegative) Accept(ages, displacements []float64) bool {
	for i := 1; i < len(ages); i++ {
		if ages[i] <= ages[i-1] || displacements[i] < displacements[i-1] {
			return false
		}
	}
	return true
}

// NonNegativeBounded additionally rejects trials whose incremental
// rate exceeds MaxRate anywhere along the chain.
type NonNegativeBounded struct {
	MaxRate float64
}

func (c NonNegativeBounded) Accept(ages, displacements []float64) bool {
	for i := 1; i < len(ages); i++ {
		dt := ages[i] - ages[i-1]
		dd := displacements[i] - displacements[i-1]
		if dt <= 0 || dd < 0 || dd > c.MaxRate*dt {
			return false
		}
	}
	return true
}

// CriterionByName maps a command-line name to a Criterion. maxRate is
// only consulted for "max-rate".
func CriterionByName(name string, maxRate float64) (Criterion, error) {
	switch name {
	case "all":
		return AcceptAll{}, nil
	case "non-negative":
		return NonNegative{}, nil
	case "max-rate":
		if maxRate <= 0 {
			return nil, errors.Errorf("criterion max-rate needs a positive rate bound, have %v", maxRate)
		}
		return NonNegativeBounded{MaxRate: maxRate}, nil
	}
	return nil, errors.Errorf("unknown sampling criterion %q", name)
}
