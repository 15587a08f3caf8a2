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
)

// Phi computes the bound factor for outage probability a and n channels.
func (b *Bound) Phi(a float64, n int) (float64, error) {
	return b.PhiWithCmin(a, n, b.DetermineCmin(n, a))
}

// PhiWithCmin computes the bound factor for a precomputed critical threshold.
// A positive threshold selects H, a zero threshold the conditional
// expectation; anything else is an invalid state.
func (b *Bound) PhiWithCmin(a float64, n int, cmin float64) (float64, error) {
	switch {
	case cmin > 0:
		return b.model.H(b.model.PhiPoint(cmin), n, a), nil
	case cmin == 0:
		return float64(n) * b.model.Psi(a), nil
	}
	return 0, errors.Wrapf(ErrNegativeThreshold, "cmin=%v for n=%d, a=%v", cmin, n, a)
}
