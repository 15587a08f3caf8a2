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

// Package solver implements bracketed scalar root finding with Brent's method.
package solver

import (
	"math"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultXTol is the absolute tolerance on the root location. It is
	// negligible so that roots close to zero are resolved by DefaultRTol.
	DefaultXTol = 1e-300
	// DefaultRTol is the relative tolerance on the root location.
	DefaultRTol = 4 * Epsilon
	// DefaultMaxIterations bounds the number of function evaluations after bracketing.
	DefaultMaxIterations = 100
	// DefaultResidual is the magnitude below which a function value counts as zero.
	DefaultResidual = 64 * Epsilon
)

// Epsilon is the machine epsilon of float64.
const Epsilon = 2.220446049250313e-16

var (
	// ErrNotBracketed is returned if the function has the same sign at both ends of the bracket.
	ErrNotBracketed = errors.New("root not bracketed")
	// ErrNonFinite is returned if the function is NaN or infinite at a bracket end.
	ErrNonFinite = errors.New("non-finite function value")
	// ErrNoConvergence is returned if the iteration budget is exhausted.
	ErrNoConvergence = errors.New("failed to converge")
	// ErrInvalidBracket is returned if the bracket is empty or not finite.
	ErrInvalidBracket = errors.New("invalid bracket")
)

// Func is a scalar function whose root is searched.
type Func func(x float64) float64

// Settings controls the termination of the root search.
type Settings struct {
	XTol          float64 // absolute tolerance on x
	RTol          float64 // relative tolerance on x
	MaxIterations int     // maximum number of iterations
	Residual      float64 // |f(x)| at or below this value is treated as a root
}

// DefaultSettings returns the default tolerances and iteration budget.
func DefaultSettings() Settings {
	return Settings{
		XTol:          DefaultXTol,
		RTol:          DefaultRTol,
		MaxIterations: DefaultMaxIterations,
		Residual:      DefaultResidual,
	}
}

// Result describes a converged root.
type Result struct {
	Root        float64
	Value       float64 // f(Root)
	Iterations  int
	Evaluations int
}

// Brent finds a root of f in [lo, hi]. The function must change its sign over
// the bracket unless one of the end points already is a root. An initial guess
// x0 strictly inside the bracket is used to shrink the bracket before the
// iteration starts; guesses outside of the bracket are ignored.
func Brent(f Func, lo, hi, x0 float64, cfg Settings) (Result, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return Result{}, errors.Wrapf(ErrInvalidBracket, "[%v, %v]", lo, hi)
	}
	res := &Result{}
	eval := func(x float64) float64 {
		res.Evaluations++
		return f(x)
	}

	fLo := eval(lo)
	fHi := eval(hi)
	if !isFinite(fLo) || !isFinite(fHi) {
		return *res, errors.Wrapf(ErrNonFinite, "f(%v)=%v, f(%v)=%v", lo, fLo, hi, fHi)
	}
	if math.Abs(fLo) <= cfg.Residual {
		return res.at(lo, fLo), nil
	}
	if math.Abs(fHi) <= cfg.Residual {
		return res.at(hi, fHi), nil
	}
	if math.Signbit(fLo) == math.Signbit(fHi) {
		return *res, errors.Wrapf(ErrNotBracketed, "f(%v)=%v and f(%v)=%v have the same sign", lo, fLo, hi, fHi)
	}

	if lo < x0 && x0 < hi {
		fx0 := eval(x0)
		if isFinite(fx0) {
			if math.Abs(fx0) <= cfg.Residual {
				return res.at(x0, fx0), nil
			}
			if math.Signbit(fx0) == math.Signbit(fLo) {
				lo, fLo = x0, fx0
			} else {
				hi, fHi = x0, fx0
			}
		}
	}

	return brent(eval, lo, hi, fLo, fHi, cfg, res)
}

// brent runs the Brent-Dekker iteration on a valid bracket.
func brent(f Func, xPre, xCur, fPre, fCur float64, cfg Settings, res *Result) (Result, error) {
	var xBlk, fBlk, sPre, sCur float64

	for i := 0; i < cfg.MaxIterations; i++ {
		res.Iterations = i + 1
		if fPre != 0 && fCur != 0 && math.Signbit(fPre) != math.Signbit(fCur) {
			xBlk, fBlk = xPre, fPre
			sPre = xCur - xPre
			sCur = sPre
		}
		if math.Abs(fBlk) < math.Abs(fCur) {
			xPre, xCur, xBlk = xCur, xBlk, xCur
			fPre, fCur, fBlk = fCur, fBlk, fCur
		}

		delta := (cfg.XTol + cfg.RTol*math.Abs(xCur)) / 2
		sBis := (xBlk - xCur) / 2
		if math.Abs(fCur) <= cfg.Residual || math.Abs(sBis) < delta {
			return res.at(xCur, fCur), nil
		}

		if math.Abs(sPre) > delta && math.Abs(fCur) < math.Abs(fPre) {
			var sTry float64
			if xPre == xBlk {
				// secant step
				sTry = -fCur * (xCur - xPre) / (fCur - fPre)
			} else {
				// inverse quadratic interpolation
				dPre := (fPre - fCur) / (xPre - xCur)
				dBlk := (fBlk - fCur) / (xBlk - xCur)
				sTry = -fCur * (fBlk*dBlk - fPre*dPre) / (dBlk * dPre * (fBlk - fPre))
			}
			if 2*math.Abs(sTry) < math.Min(math.Abs(sPre), 3*math.Abs(sBis)-delta) {
				sPre, sCur = sCur, sTry
			} else {
				sPre, sCur = sBis, sBis
			}
		} else {
			sPre, sCur = sBis, sBis
		}

		xPre, fPre = xCur, fCur
		if math.Abs(sCur) > delta {
			xCur += sCur
		} else if sBis > 0 {
			xCur += delta
		} else {
			xCur -= delta
		}
		fCur = f(xCur)
		if math.IsNaN(fCur) {
			return *res, errors.Wrapf(ErrNonFinite, "f(%v) is NaN", xCur)
		}
	}
	return res.at(xCur, fCur), errors.Wrapf(ErrNoConvergence, "after %d iterations", cfg.MaxIterations)
}

func (r *Result) at(x, fx float64) Result {
	r.Root = x
	r.Value = fx
	return *r
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
