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

import "github.com/ajroetker/go-specfunc/sf"

const (
	// seriesFactor scales (l+1.5) in the x^2 bound below which the power
	// series is used.
	seriesFactor = 10 * sf.Root5DblEpsilon

	// uniformMinOrder is the largest order handled without the uniform
	// expansion.
	uniformMinOrder = 30

	// seedOrder is the order of the lower seed for the recursion method; the
	// upper seed is seedOrder+1.
	seedOrder = uniformMinOrder + 1

	// turningBand is the widest half-width, in z = x/nu, of the band around
	// the turning point in which the uniform expansion is evaluated at a
	// shifted order and recursed back.
	turningBand = 0.1

	// turningAiry is the Airy argument |t| at the edge of the turning band
	// once x is large enough that the band is narrower than turningBand.
	turningAiry = 1.4

	// zetaSeriesCutoff is sqrt|1-z^2| below which zeta(z) is summed from its
	// series about z = 1.
	zetaSeriesCutoff = 0.5

	// closedFormSeriesCutoff is |x| below which j1 and j2 use their power
	// series instead of the trigonometric closed forms.
	closedFormSeriesCutoff = 1.0

	// steedMaxIter bounds the continued fraction in units of its step 2/x.
	steedMaxIter = 20000

	// steedRescale and its reciprocal keep Steed's unnormalized values in
	// range during the downward pass.
	steedRescale     = 1e-250
	steedRescaleOver = 1e250
)
