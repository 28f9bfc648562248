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

// Package hwy is a small portable vector layer used by the special-function
// packages for whole-slice arithmetic (scaling, residual checks).
//
// The vector width follows the dispatch level detected at startup. Setting
// HWY_NO_SIMD to a non-empty value other than "0" forces scalar mode.
package hwy

import (
	"os"
	"unsafe"
)

// Floats is the set of floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// Lanes is the set of all supported lane types.
type Lanes interface {
	Floats | ~int32 | ~int64 | ~uint32 | ~uint64
}

// Vec is a vector of lanes. Its length is at most MaxLanes[T]() and may be
// shorter when it was loaded from the tail of a slice.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of active lanes in v.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns a copy of the lanes of v.
func (v Vec[T]) Data() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// DispatchLevel identifies the instruction set the vector width was chosen for.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
)

func (l DispatchLevel) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

var (
	currentLevel DispatchLevel
	currentWidth int
)

// CurrentLevel returns the dispatch level selected at startup.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the vector width in bytes.
func CurrentWidth() int { return currentWidth }

// NoSimdEnv reports whether HWY_NO_SIMD asks for scalar mode.
func NoSimdEnv() bool {
	v := os.Getenv("HWY_NO_SIMD")
	return v != "" && v != "0"
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
}

// MaxLanes returns the number of lanes of type T in a full vector.
func MaxLanes[T Lanes]() int {
	var zero T
	n := currentWidth / int(unsafe.Sizeof(zero))
	if n < 1 {
		return 1
	}
	return n
}
