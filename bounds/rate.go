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
	"math"

	"github.com/cockroachdb/errors"
	"github.com/klb2/reliability-bounds-dependent-fading-channels/channel"
)

// BestCaseRate is the upper bound log2(1 + snr*phi(eps, n)) on the outage
// capacity in bits/s/Hz.
func (b *Bound) BestCaseRate(eps, snr float64, n int) (float64, error) {
	if d := b.model.Direction(); d != channel.BestCase {
		return 0, errors.Wrapf(ErrDirection, "%s model %s", d, b.model.Name())
	}
	phi, err := b.Phi(eps, n)
	if err != nil {
		return 0, err
	}
	return log2(1 + snr*phi)
}

// WorstCaseRate is the lower bound log2(1 - snr*phi(1-eps, n)) on the outage
// capacity in bits/s/Hz. Parameters for which the argument of the logarithm
// is not positive yield ErrDomain.
func (b *Bound) WorstCaseRate(eps, snr float64, n int) (float64, error) {
	if d := b.model.Direction(); d != channel.WorstCase {
		return 0, errors.Wrapf(ErrDirection, "%s model %s", d, b.model.Name())
	}
	phi, err := b.Phi(1-eps, n)
	if err != nil {
		return 0, err
	}
	return log2(1 - snr*phi)
}

// Rate evaluates the rate formula matching the direction of the model.
func (b *Bound) Rate(eps, snr float64, n int) (float64, error) {
	if b.model.Direction() == channel.WorstCase {
		return b.WorstCaseRate(eps, snr, n)
	}
	return b.BestCaseRate(eps, snr, n)
}

func log2(x float64) (float64, error) {
	if !(x > 0) {
		return 0, errors.Wrapf(ErrDomain, "log2(%v)", x)
	}
	return math.Log2(x), nil
}
