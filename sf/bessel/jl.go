// Copyright 2025 go-specfunc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bessel

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-specfunc/sf"
)

// Regime names the method used to evaluate j_l(x).
type Regime int

const (
	// RegimeInvalid marks arguments outside the domain.
	RegimeInvalid Regime = iota
	// RegimeOrigin is x == 0, where the value is known exactly.
	RegimeOrigin
	// RegimeSeries is the power series of J_{l+1/2} for small x.
	RegimeSeries
	// RegimeLargeArgument is the Hankel expansion for x much larger than l^2.
	RegimeLargeArgument
	// RegimeUniform is Olver's uniform expansion for orders above 30.
	RegimeUniform
	// RegimeClosedForm is the trigonometric closed form for l <= 2.
	RegimeClosedForm
	// RegimeRecursion is downward recursion from uniform-expansion seeds.
	RegimeRecursion
	// RegimeContinuedFraction is Steed's method; only JlSteedArray uses it.
	RegimeContinuedFraction
)

var regimeNames = [...]string{
	RegimeInvalid:           "invalid",
	RegimeOrigin:            "origin",
	RegimeSeries:            "series",
	RegimeLargeArgument:     "large argument",
	RegimeUniform:           "uniform asymptotic",
	RegimeClosedForm:        "closed form",
	RegimeRecursion:         "recursion",
	RegimeContinuedFraction: "continued fraction",
}

func (r Regime) String() string {
	if r >= 0 && int(r) < len(regimeNames) {
		return regimeNames[r]
	}
	return fmt.Sprintf("Regime(%d)", int(r))
}

// Classify returns the method Jl uses for (l, x). The first matching rule
// wins:
//
//	l < 0, x < 0, x not finite   invalid
//	x == 0                       origin
//	x^2 < 10 (l+1.5) eps^(1/5)   series
//	eps^(1/3) x > l^2 + l + 1    large argument
//	l > 30                       uniform asymptotic
//	l <= 2                       closed form
//	otherwise                    recursion
func Classify(l int, x float64) Regime {
	switch {
	case l < 0 || !finite(x) || x < 0:
		return RegimeInvalid
	case x == 0:
		return RegimeOrigin
	case x*x < seriesFactor*(float64(l)+1.5):
		return RegimeSeries
	case sf.Root3DblEpsilon*x > float64(l)*float64(l)+float64(l)+1:
		return RegimeLargeArgument
	case l > uniformMinOrder:
		return RegimeUniform
	case l <= 2:
		return RegimeClosedForm
	default:
		return RegimeRecursion
	}
}

// Jl returns the spherical Bessel function j_l(x) for l >= 0 and x >= 0.
//
// Special cases are:
//
//	Jl(0, 0) = 1
//	Jl(l, 0) = 0 for l > 0
//	Jl(l, x) = 0, domain error for l < 0, x < 0, NaN or Inf
//
// A result too small to represent is returned as 0 with an error wrapping
// sf.ErrUnderflow.
func Jl(l int, x float64) (float64, error) {
	v, s := jl(l, x)
	return v, sf.Check("bessel.Jl", s)
}

func jl(l int, x float64) (float64, sf.Status) {
	nu := float64(l) + 0.5
	switch Classify(l, x) {
	case RegimeOrigin:
		if l == 0 {
			return 1, sf.Success
		}
		return 0, sf.Success
	case RegimeSeries:
		v, s := besselTaylor(nu, x)
		return toSpherical(x, v, s)
	case RegimeLargeArgument:
		v, s := besselHankel(nu, x)
		return toSpherical(x, v, s)
	case RegimeUniform:
		v, s := besselUniform(nu, x)
		return toSpherical(x, v, s)
	case RegimeClosedForm:
		switch l {
		case 0:
			return j0(x)
		case 1:
			return j1(x)
		default:
			return j2(x)
		}
	case RegimeRecursion:
		return jlRecursion(l, x)
	default:
		return 0, sf.Domain
	}
}

// toSpherical converts a J_{l+1/2}(x) result into j_l(x).
func toSpherical(x, v float64, s sf.Status) (float64, sf.Status) {
	if s != sf.Success {
		return 0, s
	}
	return math.Sqrt(math.Pi/(2*x)) * v, sf.Success
}

// jlRecursion seeds j_32 and j_31 from the uniform expansion and recurses
// down to l.
func jlRecursion(l int, x float64) (float64, sf.Status) {
	rt := math.Sqrt(math.Pi / (2 * x))
	next, s := besselUniform(seedOrder+1.5, x)
	if s != sf.Success {
		return 0, s
	}
	cur, s := besselUniform(seedOrder+0.5, x)
	if s != sf.Success {
		return 0, s
	}
	w := newWindow(x, seedOrder+0.5, rt*cur, rt*next)
	w.downTo(float64(l)+0.5, nil)
	return w.cur, sf.Success
}
