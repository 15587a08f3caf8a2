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

// Package channel contains the closed-form functions of the fading models
// for which outage capacity bounds are computed.
package channel

import (
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Direction tells whether a model yields an upper or a lower bound.
type Direction int

const (
	BestCase  Direction = iota // upper bound on the outage capacity
	WorstCase                  // lower bound on the outage capacity
)

func (d Direction) String() string {
	switch d {
	case BestCase:
		return "best-case"
	case WorstCase:
		return "worst-case"
	}
	return "unknown"
}

// Model is the set of functions a fading model provides to the bound
// computation. The arguments n (number of channels) and a (outage
// probability) are passed through unchanged from the caller.
type Model interface {
	// Name returns the identifier used on the command line.
	Name() string
	// Direction returns whether the model produces a best-case or worst-case bound.
	Direction() Direction

	PDF(x float64) float64
	CDF(x float64) float64
	InvCDF(x float64) float64

	// H is the auxiliary function of the threshold balance equation.
	H(x float64, n int, a float64) float64
	// T is the integral of H.
	T(x float64, n int, a float64) float64
	// Psi is the conditional expectation used when the threshold is zero.
	Psi(a float64) float64

	// LhsCmin and RhsCmin are both sides of the balance equation whose
	// root is the critical threshold.
	LhsCmin(c float64, n int, a float64) float64
	RhsCmin(c float64, n int, a float64) float64

	// BoundaryShortcut reports whether the threshold is known to be zero
	// without solving the balance equation.
	BoundaryShortcut(n int, a float64) bool
	// PhiPoint returns the point at which H is evaluated for a positive threshold.
	PhiPoint(cmin float64) float64
}

// ErrUnknownModel is returned by Lookup for unregistered model names.
var ErrUnknownModel = errors.New("unknown channel model")

var models = map[string]Model{
	ExponentialBestName: ExponentialBest{},
	RayleighBestName:    RayleighBest{},
	RayleighWorstName:   RayleighWorst{},
}

// Lookup returns the model registered under the given name.
func Lookup(name string) (Model, error) {
	m, ok := models[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownModel, "%q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return m, nil
}

// Names lists all registered model names in alphabetical order.
func Names() []string {
	return slices.Sorted(maps.Keys(models))
}

// Each applies f to every element of xs.
func Each(f func(float64) float64, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

// rhsCmin is the right-hand side of the balance equation shared by all models.
func rhsCmin(m Model, c float64, n int, a float64) float64 {
	return ((1-a)/float64(n) - c) * m.H(c, n, a)
}

// xlogx returns x*ln(x) with its limit 0 at x = 0.
func xlogx(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log(x)
}
