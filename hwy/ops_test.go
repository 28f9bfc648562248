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

import (
	"math"
	"testing"
)

func TestMaxLanes(t *testing.T) {
	if got, want := MaxLanes[float64](), CurrentWidth()/8; got != want {
		t.Errorf("MaxLanes[float64]() = %d, want %d", got, want)
	}
	if got, want := MaxLanes[float32](), CurrentWidth()/4; got != want {
		t.Errorf("MaxLanes[float32]() = %d, want %d", got, want)
	}
	if CurrentLevel().String() == "unknown" {
		t.Errorf("CurrentLevel() = %d has no name", CurrentLevel())
	}
}

func TestLoadStoreTail(t *testing.T) {
	src := []float64{1, 2, 3}
	v := Load(src[2:])
	if v.NumLanes() != 1 {
		t.Fatalf("Load of 1-element tail has %d lanes, want 1", v.NumLanes())
	}
	dst := make([]float64, 1)
	Store(v, dst)
	if dst[0] != 3 {
		t.Errorf("Store: got %v, want 3", dst[0])
	}
}

func TestArithmetic(t *testing.T) {
	n := MaxLanes[float64]()
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range n {
		a[i] = float64(i) - 1.5
		b[i] = 2
	}
	va, vb := Load(a), Load(b)

	testCases := []struct {
		name string
		got  Vec[float64]
		want func(x, y float64) float64
	}{
		{"Add", Add(va, vb), func(x, y float64) float64 { return x + y }},
		{"Mul", Mul(va, vb), func(x, y float64) float64 { return x * y }},
		{"Div", Div(va, vb), func(x, y float64) float64 { return x / y }},
		{"Max", Max(va, vb), math.Max},
		{"FMA", FMA(va, vb, va), func(x, y float64) float64 { return x*y + x }},
	}
	for _, tc := range testCases {
		got := tc.got.Data()
		for i := range n {
			if want := tc.want(a[i], b[i]); got[i] != want {
				t.Errorf("%s lane %d = %v, want %v", tc.name, i, got[i], want)
			}
		}
	}
}

func TestReductions(t *testing.T) {
	v := Abs(Load([]float64{-4, 1, -0.5}))
	if got := ReduceMax(v); got != 4 {
		t.Errorf("ReduceMax = %v, want 4", got)
	}
	if got := ReduceMax(Vec[float64]{}); got != 0 {
		t.Errorf("ReduceMax(empty) = %v, want 0", got)
	}
}

func TestScaleSlice(t *testing.T) {
	for _, size := range []int{0, 1, 3, 7, 16, 33} {
		dst := make([]float64, size)
		for i := range dst {
			dst[i] = float64(i + 1)
		}
		ScaleSlice(dst, 0.5)
		for i, v := range dst {
			if want := float64(i+1) / 2; v != want {
				t.Errorf("size %d: dst[%d] = %v, want %v", size, i, v, want)
			}
		}
	}
}
