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

package bounds

import (
	"github.com/cockroachdb/errors"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/solver"
)

// DiffCmin is the balance equation whose root is the critical threshold.
func (b *Bound) DiffCmin(c float64, n int, a float64) float64 {
	return b.model.LhsCmin(c, n, a) - b.model.RhsCmin(c, n, a)
}

// Bracket returns the search interval for the critical threshold and the
// initial guess handed to the root finder. The lower end is kept away from
// zero to avoid logarithms of zero.
func Bracket(n int, a float64) (lo, hi, x0 float64) {
	nf := float64(n)
	lo = solver.Epsilon
	hi = (1 - a) / (nf * (nf - 1))
	x0 = ((1-a)/nf + solver.Epsilon) / 2
	return lo, hi, x0
}

// SolveCmin computes the critical threshold and reports a failure of the
// root finder as error.
func (b *Bound) SolveCmin(n int, a float64) (float64, error) {
	if b.model.BoundaryShortcut(n, a) {
		b.log.Debugf("Threshold on the boundary for n=%d, a=%v", n, a)
		return 0, nil
	}
	lo, hi, x0 := Bracket(n, a)
	res, err := solver.Brent(func(c float64) float64 {
		return b.DiffCmin(c, n, a)
	}, lo, hi, x0, b.solver)
	if err != nil {
		return 0, errors.Wrapf(err, "n=%d, a=%v", n, a)
	}
	b.log.Debugf("Threshold %v for n=%d, a=%v after %d iterations", res.Root, n, a, res.Iterations)
	return res.Root, nil
}

// DetermineCmin computes the critical threshold. If the root finder fails,
// a diagnostic is logged and SentinelCmin is returned, i.e., the bound falls
// back to the worst admissible threshold.
func (b *Bound) DetermineCmin(n int, a float64) float64 {
	cmin, err := b.SolveCmin(n, a)
	if err != nil {
		b.log.Warningf("Error during root solving for n=%d, a=%.2f: %v", n, a, err)
		return SentinelCmin
	}
	return cmin
}
