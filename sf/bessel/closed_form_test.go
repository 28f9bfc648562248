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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-specfunc/sf"
)

func TestClosedForm(t *testing.T) {
	testCases := []struct {
		order int
		x     float64
		want  float64
	}{
		{0, 1.0, 0.8414709848078965},
		{0, 10.0, -0.05440211108893698},
		{1, 0.1, 0.03330001190255757},
		{1, 1.0, 0.3011686789397568},
		{1, 7.5, -0.029542487235341416},
		{2, 0.01, 6.6666190477513225e-06},
		{2, 0.5, 0.016371106607993412},
		{2, 3.0, 0.29863749707573356},
		{2, 50.0, 0.004083240843399146},
	}
	for _, tc := range testCases {
		got, err := ClosedForm(tc.order, tc.x)
		if err != nil {
			t.Errorf("ClosedForm(%d, %v): %v", tc.order, tc.x, err)
			continue
		}
		if !closeEnough(got, tc.want, math.Abs(tc.want), 1e-14) {
			t.Errorf("ClosedForm(%d, %v) = %v, want %v", tc.order, tc.x, got, tc.want)
		}
	}
}

func TestClosedFormParity(t *testing.T) {
	for _, x := range []float64{0.01, 0.7, 1, 4.2, 99} {
		for order, fn := range []func(float64) (float64, error){J0, J1, J2} {
			pos, err := fn(x)
			require.NoError(t, err)
			neg, err := fn(-x)
			require.NoError(t, err)
			sign := 1.0
			if order == 1 {
				sign = -1
			}
			if neg != sign*pos {
				t.Errorf("j%d(-%v) = %v, want %v", order, x, neg, sign*pos)
			}
		}
	}
}

func TestClosedFormSeriesSwitch(t *testing.T) {
	// Both sides of the series cutoff describe the same function.
	below := math.Nextafter(closedFormSeriesCutoff, 0)
	for order, fn := range []func(float64) (float64, error){J1, J2} {
		a, err := fn(below)
		require.NoError(t, err)
		b, err := fn(closedFormSeriesCutoff)
		require.NoError(t, err)
		assert.InEpsilon(t, b, a, 1e-14, "j%d", order+1)
	}
}

func TestClosedFormErrors(t *testing.T) {
	_, err := ClosedForm(3, 1)
	assert.ErrorIs(t, err, sf.ErrDomain)
	_, err = ClosedForm(-1, 1)
	assert.ErrorIs(t, err, sf.ErrDomain)
	_, err = ClosedForm(0, math.NaN())
	assert.ErrorIs(t, err, sf.ErrDomain)
	_, err = J1(math.Inf(1))
	assert.ErrorIs(t, err, sf.ErrDomain)

	v, err := J1(1e-310)
	assert.ErrorIs(t, err, sf.ErrUnderflow)
	assert.Zero(t, v)
	v, err = J2(1e-160)
	assert.ErrorIs(t, err, sf.ErrUnderflow)
	assert.Zero(t, v)

	v, err = J0(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}
