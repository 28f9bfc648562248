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
	"errors"

	"go.uber.org/zap"

	"github.com/ajroetker/go-specfunc/sf"
)

// The *Value functions return only the value. A non-success status is passed
// to sf.Warn, which logs it through the logger installed with sf.SetLogger;
// the value is the same as from the checked form.

// J0Value returns j_0(x).
func J0Value(x float64) float64 {
	v, err := J0(x)
	warn(err, zap.Float64("x", x))
	return v
}

// J1Value returns j_1(x).
func J1Value(x float64) float64 {
	v, err := J1(x)
	warn(err, zap.Float64("x", x))
	return v
}

// J2Value returns j_2(x).
func J2Value(x float64) float64 {
	v, err := J2(x)
	warn(err, zap.Float64("x", x))
	return v
}

// JlValue returns j_l(x).
func JlValue(l int, x float64) float64 {
	v, err := Jl(l, x)
	warn(err, zap.Int("l", l), zap.Float64("x", x))
	return v
}

func warn(err error, fields ...zap.Field) {
	var e *sf.Error
	if errors.As(err, &e) {
		sf.Warn(e.Func, e.Status, fields...)
	}
}
