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

// besselHankel evaluates the large-argument expansion
//
//	J_nu(x) ~ sqrt(2/(pi x)) (P cos(chi) - Q sin(chi)),  chi = x - (nu/2 + 1/4) pi,
//
// with P and Q truncated after their first correction. The phase is built
// from sin(x) and cos(x) directly so that chi is never formed for large x.
func besselHankel(nu, x float64) (float64, sf.Status) {
	mu := 4 * nu * nu
	sa, ca := math.Sincos((0.5*nu + 0.25) * math.Pi)
	sx, cx := math.Sincos(x)
	cosChi := cx*ca + sx*sa
	sinChi := sx*ca - cx*sa
	p := 1 - (mu-1)*(mu-9)/(128*x*x)
	q := (mu - 1) / (8 * x)
	return math.Sqrt(2/(math.Pi*x)) * (cosChi*p - sinChi*q), sf.Success
}
