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

package hwy

import "math"

// Portable lane-by-lane implementations. Every operation works on the
// common prefix of its operands, so a short tail vector stays short.

// Load creates a vector from the first MaxLanes elements of src.
func Load[T Lanes](src []T) Vec[T] {
	n := min(MaxLanes[T](), len(src))
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes v into dst, truncating to len(dst).
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(v.data), len(dst))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

func zipWith[T Lanes](a, b Vec[T], f func(x, y T) T) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = f(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return zipWith(a, b, func(x, y T) T { return x + y })
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return zipWith(a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	return zipWith(a, b, func(x, y T) T { return x / y })
}

// Max returns the element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return zipWith(a, b, func(x, y T) T { return max(x, y) })
}

// Abs computes the absolute value of every lane.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, val := range v.data {
		if val < 0 {
			val = -val
		}
		result[i] = val
	}
	return Vec[T]{data: result}
}

// FMA computes a*b + c per lane with a single rounding.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data), len(c.data))
	result := make([]T, n)
	for i := range n {
		result[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return Vec[T]{data: result}
}

// ReduceMax returns the largest lane, or zero for an empty vector.
func ReduceMax[T Lanes](v Vec[T]) T {
	var m T
	for i, val := range v.data {
		if i == 0 || val > m {
			m = val
		}
	}
	return m
}

// ScaleSlice multiplies every element of dst by s in place.
func ScaleSlice[T Floats](dst []T, s T) {
	vs := Set(s)
	for i := 0; i < len(dst); i += vs.NumLanes() {
		Store(Mul(Load(dst[i:]), vs), dst[i:])
	}
}
