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

package channel

const RayleighBestName = "rayleigh-best"

// RayleighBest is the best-case model for dependent Rayleigh fading. The
// power gain of a Rayleigh faded amplitude is exponentially distributed, so
// all closed forms coincide with ExponentialBest.
type RayleighBest struct {
	ExponentialBest
}

func (RayleighBest) Name() string { return RayleighBestName }

func (m RayleighBest) RhsCmin(c float64, n int, a float64) float64 {
	return rhsCmin(m, c, n, a)
}
