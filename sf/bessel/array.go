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
	"github.com/ajroetker/go-specfunc/sf"
)

// JlArray fills out[0..lmax] with j_l(x) for l = 0..lmax.
//
// The two highest orders come from Jl and the rest from downward recursion,
// so out[lmax] is exactly Jl(lmax, x). out must have at least lmax+1
// elements. On error the contents of out are unspecified.
//
// If either seed fails the whole array is abandoned. In particular, for small
// x where j_{lmax+1}(x) underflows, JlArray returns an error wrapping
// sf.ErrUnderflow even though the low orders are representable; JlSteedArray
// fills that case.
func JlArray(lmax int, x float64, out []float64) error {
	return sf.Check("bessel.JlArray", jlArray(lmax, x, out))
}

func jlArray(lmax int, x float64, out []float64) sf.Status {
	if lmax < 0 || !finite(x) || x < 0 {
		return sf.Domain
	}
	if len(out) < lmax+1 {
		return sf.BadLength
	}
	out = out[:lmax+1]
	if x == 0 {
		clear(out)
		out[0] = 1
		return sf.Success
	}
	next, s := jl(lmax+1, x)
	if s != sf.Success {
		return s
	}
	cur, s := jl(lmax, x)
	if s != sf.Success {
		return s
	}
	out[lmax] = cur
	w := newWindow(x, float64(lmax)+0.5, cur, next)
	w.downTo(0.5, func(nu, v float64) {
		out[int(nu)] = v
	})
	return sf.Success
}
