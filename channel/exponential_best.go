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

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const ExponentialBestName = "exponential-best"

// unitExponential is the distribution of the channel gain with unit mean.
var unitExponential = distuv.Exponential{Rate: 1}

// ExponentialBest is the best-case model for exponentially distributed
// channel gains.
type ExponentialBest struct{}

func (ExponentialBest) Name() string { return ExponentialBestName }

func (ExponentialBest) Direction() Direction { return BestCase }

// PDF is e^{-x} for x >= 0.
func (ExponentialBest) PDF(x float64) float64 {
	return unitExponential.Prob(x)
}

// CDF is 1-e^{-x} for x >= 0.
func (ExponentialBest) CDF(x float64) float64 {
	return unitExponential.CDF(x)
}

// InvCDF is -ln(1-x). Arguments above one are clamped to one since the
// root search may overshoot the unit interval by a rounding error.
func (ExponentialBest) InvCDF(x float64) float64 {
	x = math.Min(x, 1)
	return -math.Log1p(-x)
}

// H is (n-1)*InvCDF(a+(n-1)x) + InvCDF(1-x). The second term is evaluated as
// -ln(x), which keeps its precision for thresholds close to zero.
func (m ExponentialBest) H(x float64, n int, a float64) float64 {
	k := float64(n - 1)
	return k*m.InvCDF(a+k*x) - math.Log(x)
}

func (ExponentialBest) T(x float64, n int, a float64) float64 {
	nf := float64(n)
	return nf*x - xlogx(x) + xlogx(1-a+x-nf*x)
}

// Psi diverges for a = 1.
func (ExponentialBest) Psi(a float64) float64 {
	if a == 1 {
		return math.Inf(1)
	}
	return 1 - math.Log(1-a)
}

func (ExponentialBest) LhsCmin(c float64, n int, a float64) float64 {
	if c == 0 {
		return (-1 + a) * (-1 + math.Log1p(-a))
	}
	nf := float64(n)
	r := 1 - a + c - c*nf
	return (1 - a) - (c*nf - c*math.Log(c) + r*math.Log(r))
}

func (m ExponentialBest) RhsCmin(c float64, n int, a float64) float64 {
	return rhsCmin(m, c, n, a)
}

// BoundaryShortcut is never taken for best-case models.
func (ExponentialBest) BoundaryShortcut(int, float64) bool { return false }

func (ExponentialBest) PhiPoint(cmin float64) float64 { return cmin }
