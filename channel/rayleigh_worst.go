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

import "math"

const RayleighWorstName = "rayleigh-worst"

// RayleighWorst is the worst-case model for dependent Rayleigh fading. Its
// functions live on the logarithmic scale, i.e., the support of the density
// is (-inf, 0].
type RayleighWorst struct{}

func (RayleighWorst) Name() string { return RayleighWorstName }

func (RayleighWorst) Direction() Direction { return WorstCase }

func (RayleighWorst) PDF(x float64) float64 {
	return math.Exp(x)
}

func (RayleighWorst) CDF(x float64) float64 {
	return math.Exp(x)
}

// InvCDF is ln(x); it is -inf at zero and NaN for negative x.
func (RayleighWorst) InvCDF(x float64) float64 {
	return math.Log(x)
}

func (m RayleighWorst) H(x float64, n int, a float64) float64 {
	k := float64(n - 1)
	return m.InvCDF(a+x) + k*math.Log1p(-k*x)
}

func (RayleighWorst) T(x float64, n int, a float64) float64 {
	k := float64(n - 1)
	return -float64(n)*x + xlogx(a+x) - xlogx(1-k*x)
}

// Psi is -1 at a = 0 and 0 at a = 1, where the closed form is indeterminate.
func (RayleighWorst) Psi(a float64) float64 {
	switch a {
	case 0:
		return -1
	case 1:
		return 0
	}
	return (a - a*math.Log(a) - 1) / (1 - a)
}

func (RayleighWorst) LhsCmin(c float64, n int, a float64) float64 {
	if a+c == 0 {
		return 0
	}
	nf := float64(n)
	k := nf - 1
	return (a - 1) + nf*c - (a+c)*math.Log(a+c) - (k*c-1)*math.Log1p(-k*c)
}

func (m RayleighWorst) RhsCmin(c float64, n int, a float64) float64 {
	return rhsCmin(m, c, n, a)
}

// BoundaryShortcut holds if the balance equation is already negative at zero,
// in which case the threshold lies on the boundary.
func (m RayleighWorst) BoundaryShortcut(n int, a float64) bool {
	return a > 0 && m.LhsCmin(0, n, a)-m.RhsCmin(0, n, a) < 0
}

// PhiPoint is always zero; the worst-case bound is evaluated at the fixed end
// point of the interval.
func (RayleighWorst) PhiPoint(float64) float64 { return 0 }
