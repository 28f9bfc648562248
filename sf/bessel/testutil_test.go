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
	"testing"
)

// envelope is the scale against which j_l(x) errors are measured: the value
// itself where j_l is monotone, and at least the 1/x amplitude once x is
// past the turning point and the value may sit near a zero.
func envelope(l int, x, want float64) float64 {
	if x < float64(l)+1 {
		return math.Abs(want)
	}
	return max(math.Abs(want), 1/x)
}

// closeEnough reports whether got is within tol of want relative to scale.
func closeEnough(got, want, scale, tol float64) bool {
	return math.Abs(got-want) <= tol*scale
}

// ulpDistance64 returns the number of representable float64 values between
// a and b.
func ulpDistance64(a, b float64) uint64 {
	if a == b {
		return 0
	}
	ia := int64(math.Float64bits(a))
	ib := int64(math.Float64bits(b))
	if ia < 0 {
		ia = math.MinInt64 - ia
	}
	if ib < 0 {
		ib = math.MinInt64 - ib
	}
	if ia > ib {
		return uint64(ia - ib)
	}
	return uint64(ib - ia)
}

func mustJl(t testing.TB, l int, x float64) float64 {
	t.Helper()
	v, err := Jl(l, x)
	if err != nil {
		t.Fatalf("Jl(%d, %v): %v", l, x, err)
	}
	return v
}
