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
)

// RecurrenceResidual measures how well vals, taken as j_0(x), j_1(x), ...,
// satisfy j_{l-1} = (2l+1)/x j_l - j_{l+1}. It returns the largest residual
// over the interior orders, each relative to the largest magnitude among the
// three values involved. Fewer than three values, or x <= 0, give 0.
func RecurrenceResidual(x float64, vals []float64) float64 {
	n := len(vals)
	if n < 3 || !(x > 0) {
		return 0
	}
	lanes := hwy.MaxLanes[float64]()
	coef := make([]float64, lanes)
	tiny := hwy.Set(math.SmallestNonzeroFloat64)
	worst := 0.0
	for l := 1; l+1 < n; l += lanes {
		cnt := min(lanes, n-1-l)
		for i := range cnt {
			coef[i] = -float64(2*(l+i)+1) / x
		}
		prev := hwy.Load(vals[l-1 : l-1+cnt])
		cur := hwy.Load(vals[l : l+cnt])
		next := hwy.Load(vals[l+1 : l+1+cnt])
		k := hwy.Load(coef[:cnt])

		resid := hwy.Abs(hwy.FMA(k, cur, hwy.Add(prev, next)))
		scale := hwy.Max(hwy.Max(hwy.Abs(prev), hwy.Abs(cur)), hwy.Max(hwy.Abs(next), tiny))
		worst = max(worst, hwy.ReduceMax(hwy.Div(resid, scale)))
	}
	return worst
}
