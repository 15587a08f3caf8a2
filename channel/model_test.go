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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/integrate/quad"
)

func TestLookup_KnownModels(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
	}{
		{ExponentialBestName, BestCase},
		{RayleighBestName, BestCase},
		{RayleighWorstName, WorstCase},
		{" Rayleigh-Worst ", WorstCase},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m, err := Lookup(test.name)
			require.NoError(t, err)
			assert.Equal(t, test.direction, m.Direction())
		})
	}
}

func TestLookup_UnknownModel(t *testing.T) {
	_, err := Lookup("nakagami-best")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownModel))
	assert.Contains(t, err.Error(), "rayleigh-worst")
}

func TestNames_AreSortedAndDistinct(t *testing.T) {
	assert.Equal(t, []string{ExponentialBestName, RayleighBestName, RayleighWorstName}, Names())
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "best-case", BestCase.String())
	assert.Equal(t, "worst-case", WorstCase.String())
	assert.Equal(t, "unknown", Direction(7).String())
}

func TestEach_AppliesFunctionElementWise(t *testing.T) {
	m := ExponentialBest{}
	xs := []float64{0, 0.5, 1}
	ys := Each(m.CDF, xs)
	require.Len(t, ys, len(xs))
	for i, x := range xs {
		assert.Equal(t, m.CDF(x), ys[i])
	}
	assert.Empty(t, Each(m.CDF, nil))
}

func TestXlogx_LimitAtZero(t *testing.T) {
	assert.Equal(t, 0.0, xlogx(0))
	assert.InDelta(t, math.E, xlogx(math.E), 1e-15)
	assert.InDelta(t, -0.5*math.Ln2, xlogx(0.5), 1e-15)
}

// TestModels_PDFIsDerivativeOfCDF checks the density against a central
// finite difference of the distribution function.
func TestModels_PDFIsDerivativeOfCDF(t *testing.T) {
	tests := []struct {
		model Model
		xs    []float64
	}{
		{ExponentialBest{}, []float64{0.1, 0.5, 1, 3}},
		{RayleighBest{}, []float64{0.1, 0.5, 1, 3}},
		{RayleighWorst{}, []float64{-3, -1, -0.5, -0.1}},
	}
	for _, test := range tests {
		t.Run(test.model.Name(), func(t *testing.T) {
			for _, x := range test.xs {
				d := fd.Derivative(test.model.CDF, x, &fd.Settings{Formula: fd.Central})
				assert.InDelta(t, test.model.PDF(x), d, 1e-6, "x=%v", x)
			}
		})
	}
}

func TestModels_InvCDFInvertsCDF(t *testing.T) {
	tests := []struct {
		model Model
		xs    []float64
	}{
		{ExponentialBest{}, []float64{0, 0.1, 0.5, 2, 5}},
		{RayleighBest{}, []float64{0, 0.1, 0.5, 2, 5}},
		{RayleighWorst{}, []float64{-5, -2, -0.5, -0.1, 0}},
	}
	for _, test := range tests {
		t.Run(test.model.Name(), func(t *testing.T) {
			for _, x := range test.xs {
				got := test.model.InvCDF(test.model.CDF(x))
				assert.True(t, scalar.EqualWithinAbsOrRel(x, got, 1e-12, 1e-12), "x=%v, got %v", x, got)
			}
		})
	}
}

// TestModels_TIsIntegralOfH integrates H numerically over intervals on
// which all logarithms are regular.
func TestModels_TIsIntegralOfH(t *testing.T) {
	tests := []struct {
		model  Model
		n      int
		a      float64
		lo, hi float64
	}{
		{ExponentialBest{}, 2, 0.1, 0.01, 0.4},
		{ExponentialBest{}, 3, 0.1, 0.01, 0.2},
		{RayleighBest{}, 5, 0.2, 0.001, 0.1},
		{RayleighWorst{}, 2, 0.5, 0.01, 0.4},
		{RayleighWorst{}, 3, 0.5, 0.01, 0.3},
		{RayleighWorst{}, 4, 0.9, 0.001, 0.2},
	}
	for _, test := range tests {
		t.Run(test.model.Name(), func(t *testing.T) {
			h := func(x float64) float64 { return test.model.H(x, test.n, test.a) }
			want := quad.Fixed(h, test.lo, test.hi, 128, nil, 0)
			got := test.model.T(test.hi, test.n, test.a) - test.model.T(test.lo, test.n, test.a)
			assert.InDelta(t, want, got, 1e-9)
		})
	}
}

// TestModels_LhsIsComplementOfT checks lhs_cmin = (1-a) - T for best-case
// and (a-1) - T for worst-case models, including the closed form at c = 0.
func TestModels_LhsIsComplementOfT(t *testing.T) {
	for _, m := range []Model{ExponentialBest{}, RayleighBest{}} {
		for _, c := range []float64{0, 1e-6, 0.01, 0.1} {
			want := (1 - 0.2) - m.T(c, 3, 0.2)
			assert.InDelta(t, want, m.LhsCmin(c, 3, 0.2), 1e-12, "%s c=%v", m.Name(), c)
		}
	}
	m := RayleighWorst{}
	for _, c := range []float64{0, 1e-6, 0.01, 0.1} {
		want := (0.6 - 1) - m.T(c, 3, 0.6)
		assert.InDelta(t, want, m.LhsCmin(c, 3, 0.6), 1e-12, "c=%v", c)
	}
}

func TestModels_LhsCminIsContinuousAtZero(t *testing.T) {
	for _, m := range []Model{ExponentialBest{}, RayleighBest{}, RayleighWorst{}} {
		at0 := m.LhsCmin(0, 3, 0.3)
		require.False(t, math.IsNaN(at0), m.Name())
		assert.InDelta(t, at0, m.LhsCmin(1e-13, 3, 0.3), 1e-10, m.Name())
	}
}

func TestModels_RhsCminVanishesAtUpperEnd(t *testing.T) {
	for _, m := range []Model{ExponentialBest{}, RayleighBest{}, RayleighWorst{}} {
		assert.Equal(t, 0.0, m.RhsCmin((1-0.4)/4, 4, 0.4), m.Name())
	}
	m := RayleighWorst{}
	assert.InDelta(t, 0.15*math.Log(0.4), m.RhsCmin(0, 4, 0.4), 1e-15)
}
