// Copyright 2025 The Outage Bounds Authors
// This file is part of Outage Bounds for Dependent Fading Channels
//
// Outage Bounds is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Outage Bounds is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Outage Bounds. If not, see <http://www.gnu.org/licenses/>.

// Package bounds computes best-case and worst-case bounds on the outage
// capacity of dependent fading channels.
//
// The computation is a pipeline over a channel.Model: the critical threshold
// c_min is the root of a balance equation (DetermineCmin), it selects the
// closed form of the bound factor phi (Phi), and phi is turned into a rate in
// bits/s/Hz (BestCaseRate, WorstCaseRate).
package bounds

import (
	"github.com/cockroachdb/errors"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/channel"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/logger"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/solver"
)

// SentinelCmin is returned by DetermineCmin if the balance equation could not
// be solved.
const SentinelCmin = 1.0

var (
	// ErrNegativeThreshold signals a threshold that is negative or not a number.
	ErrNegativeThreshold = errors.New("cmin must not be negative")
	// ErrDomain signals a rate formula evaluated outside of the domain of log2.
	ErrDomain = errors.New("argument of log2 is not positive")
	// ErrDirection signals a rate formula applied to a model of the other bound direction.
	ErrDirection = errors.New("rate formula does not match the model direction")
)

// Bound evaluates the bound pipeline for a single channel model. A Bound is
// immutable and may be used from multiple goroutines.
type Bound struct {
	model  channel.Model
	solver solver.Settings
	log    logger.Logger
}

// NewBound creates a bound evaluator. The logger receives the diagnostics of
// failed threshold computations.
func NewBound(model channel.Model, cfg solver.Settings, log logger.Logger) *Bound {
	return &Bound{
		model:  model,
		solver: cfg,
		log:    log,
	}
}

// Model returns the channel model of the bound.
func (b *Bound) Model() channel.Model {
	return b.model
}
