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

// sphericalSeries sums
//
//	j_l(x) = x^l/(2l+1)!! * sum_k (-x^2/2)^k / (k! (2l+3)(2l+5)...(2l+2k+1))
//
// to full precision. It is meant for |x| < 1, where the terms fall off fast.
func sphericalSeries(l int, x float64) float64 {
	df := 1.0
	for i := 3; i <= 2*l+1; i += 2 {
		df *= float64(i)
	}
	y := -0.5 * x * x
	sum, term := 1.0, 1.0
	for k := 1; ; k++ {
		term *= y / float64(k*(2*l+2*k+1))
		sum += term
		if math.Abs(term) < 0.5*sf.DblEpsilon*math.Abs(sum) {
			break
		}
	}
	return math.Pow(x, float64(l)) / df * sum
}

// besselTaylorTerms is the number of correction terms kept in besselTaylor.
const besselTaylorTerms = 4

// besselTaylor evaluates the leading terms of the power series of J_nu(x),
//
//	(x/2)^nu / Gamma(nu+1) * sum_{k=0}^{4} (-x^2/4)^k / (k! (nu+1)_k).
//
// The prefactor moves to log space once Gamma(nu+1) would overflow.
func besselTaylor(nu, x float64) (float64, sf.Status) {
	lg, _ := math.Lgamma(nu + 1)
	lnPre := nu*math.Log(0.5*x) - lg
	if lnPre < sf.LogDblMin+1 {
		return 0, sf.Underflow
	}
	var pre float64
	if nu+1 < 170 {
		pre = math.Pow(0.5*x, nu) / math.Gamma(nu+1)
	} else {
		pre = math.Exp(lnPre)
	}
	y := -0.25 * x * x
	sum, term := 1.0, 1.0
	for k := 1; k <= besselTaylorTerms; k++ {
		term *= y / ((nu + float64(k)) * float64(k))
		sum += term
	}
	return pre * sum, sf.Success
}
