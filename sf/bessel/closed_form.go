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
	"math"

	"github.com/ajroetker/go-specfunc/sf"
)

// ClosedForm returns j_order(x) for order 0, 1 or 2 from its elementary
// closed form. Other orders are a domain error. Negative x is allowed: j0 and
// j2 are even and j1 is odd.
func ClosedForm(order int, x float64) (float64, error) {
	if !finite(x) {
		return 0, sf.Check("bessel.ClosedForm", sf.Domain)
	}
	var (
		v float64
		s sf.Status
	)
	switch order {
	case 0:
		v, s = j0(x)
	case 1:
		v, s = j1(x)
	case 2:
		v, s = j2(x)
	default:
		s = sf.Domain
	}
	return v, sf.Check("bessel.ClosedForm", s)
}

// J0 returns j_0(x) = sin(x)/x.
func J0(x float64) (float64, error) {
	if !finite(x) {
		return 0, sf.Check("bessel.J0", sf.Domain)
	}
	v, s := j0(x)
	return v, sf.Check("bessel.J0", s)
}

// J1 returns j_1(x) = (sin(x)/x - cos(x))/x.
func J1(x float64) (float64, error) {
	if !finite(x) {
		return 0, sf.Check("bessel.J1", sf.Domain)
	}
	v, s := j1(x)
	return v, sf.Check("bessel.J1", s)
}

// J2 returns j_2(x) = ((3/x^2 - 1) sin(x) - 3 cos(x)/x)/x.
func J2(x float64) (float64, error) {
	if !finite(x) {
		return 0, sf.Check("bessel.J2", sf.Domain)
	}
	v, s := j2(x)
	return v, sf.Check("bessel.J2", s)
}

func j0(x float64) (float64, sf.Status) {
	if math.Abs(x) < sf.Root4DblEpsilon {
		return 1 - x*x/6, sf.Success
	}
	return math.Sin(x) / x, sf.Success
}

func j1(x float64) (float64, sf.Status) {
	ax := math.Abs(x)
	switch {
	case ax < 3*sf.DblMin:
		return 0, sf.Underflow
	case ax < closedFormSeriesCutoff:
		return sphericalSeries(1, x), sf.Success
	}
	s, c := halfAngle(x)
	return s/(x*x) - c/x, sf.Success
}

func j2(x float64) (float64, sf.Status) {
	ax := math.Abs(x)
	switch {
	case ax < sf.SqrtDblMin:
		return 0, sf.Underflow
	case ax < closedFormSeriesCutoff:
		return sphericalSeries(2, x), sf.Success
	}
	s, c := halfAngle(x)
	return (3/(x*x)-1)*s/x - 3*c/(x*x), sf.Success
}

// halfAngle returns sin(x) and cos(x) through t = tan(x/2), which keeps the
// pair consistent for the cancelling combinations in j1 and j2.
func halfAngle(x float64) (sin, cos float64) {
	t := math.Tan(0.5 * x)
	den := 1 + t*t
	return 2 * t / den, (1 - t*t) / den
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
