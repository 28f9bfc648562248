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

	"github.com/ajroetker/go-specfunc/hwy"
	"github.com/ajroetker/go-specfunc/sf"
)

// JlSteedArray fills out[0..lmax] with j_l(x) using Steed's continued
// fraction for the ratio u'_lmax/u_lmax of the Riccati-Bessel function
// u_l = x j_l, downward recursion of (u, u') to order 0, and one
// normalization against the Wronskian.
//
// The fraction needs O(x) terms; it is abandoned with an error wrapping
// sf.ErrMaxIter once it has taken 20000 steps of width 2/x, which happens
// for x beyond roughly 2e4. On error the contents of out are unspecified.
func JlSteedArray(lmax int, x float64, out []float64) error {
	return sf.Check("bessel.JlSteedArray", jlSteedArray(lmax, x, out))
}

func jlSteedArray(lmax int, x float64, out []float64) sf.Status {
	if lmax < 0 || !finite(x) || x < 0 {
		return sf.Domain
	}
	if len(out) < lmax+1 {
		return sf.BadLength
	}
	out = out[:lmax+1]

	if x < 2*sf.Root4DblEpsilon {
		// j_l(x) ~ x^l/(2l+1)!! (1 - x^2/(2(2l+3)))
		invFact := 1.0
		xl := 1.0
		for l := range out {
			out[l] = xl * invFact * (1 - 0.5*x*x/float64(2*l+3))
			invFact /= float64(2*l + 3)
			xl *= x
		}
		return sf.Success
	}

	xinv := 1 / x
	step := 2 * xinv
	f := 1.0
	fp := float64(lmax+1) * xinv
	b := 2*fp + xinv
	end := b + steedMaxIter*step
	d := 1 / b
	del := -d
	fp += del

	// Steed's evaluation of the continued fraction; f tracks the sign of
	// the unnormalized u_lmax.
	for {
		b += step
		d = 1 / (b - d)
		del *= b*d - 1
		fp += del
		if d < 0 {
			f = -f
		}
		if b > end {
			return sf.MaxIter
		}
		if math.Abs(del) < math.Abs(fp)*sf.DblEpsilon {
			break
		}
	}
	fp *= f

	out[lmax] = f
	if lmax > 0 {
		xp2 := fp
		pl := float64(lmax) * xinv
		for l := lmax; l > 0; l-- {
			out[l-1] = pl*out[l] + xp2
			fp = pl*out[l-1] - out[l]
			if math.Abs(out[l-1]) > steedRescaleOver {
				hwy.ScaleSlice(out[l-1:], steedRescale)
				fp *= steedRescale
			}
			xp2 = fp
			pl -= xinv
		}
		f = out[0]
	}

	// u_0 = sin(x) and u_0' = cos(x), so F^2 + FP^2 fixes the scale.
	hwy.ScaleSlice(out, xinv/math.Hypot(fp, f))
	return sf.Success
}
