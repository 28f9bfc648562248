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

// Package bessel evaluates the spherical Bessel functions of the first kind,
// j_l(x) = sqrt(pi/(2x)) J_{l+1/2}(x), for integer l >= 0 and real x >= 0.
//
// Jl picks one of several methods from (l, x) (see Classify): a short
// power series near the origin, the Hankel expansion for arguments large
// against l^2, Olver's uniform expansion for high orders, the closed forms
// for l <= 2, and downward recursion from high-order seeds for the rest.
// JlArray fills every order up to lmax from two seeds by downward
// recursion, and JlSteedArray does the same with a Steed continued fraction.
//
// Checked functions return the value and an error whose Status can be read
// with sf.StatusOf. Underflow is reported as an error wrapping
// sf.ErrUnderflow together with the value 0. The *Value functions return only
// the value and send non-success statuses to sf.Warn.
package bessel
