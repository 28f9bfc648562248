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

package sf

// IEEE 754 double precision constants. The n-th roots of epsilon are the
// usual switch points between truncated series and closed forms.
const (
	DblEpsilon      = 2.2204460492503131e-16
	Root3DblEpsilon = 6.0554544523933429e-06
	Root4DblEpsilon = 1.2207031250000000e-04
	Root5DblEpsilon = 7.4009597974140505e-04

	DblMin     = 2.2250738585072014e-308
	SqrtDblMin = 1.4916681462400413e-154
	LogDblMin  = -7.0839641853226408e+02
)
