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

package airy

import (
	"math"
	"testing"
)

// closeEnough reports whether got matches want to within tol relative to
// scale.
func closeEnough(got, want, scale, tol float64) bool {
	return math.Abs(got-want) <= tol*scale
}

func TestAiry(t *testing.T) {
	testCases := []struct {
		t, ai, aiPrime float64
	}{
		{-20.0, -0.1764061270779847, 0.8928628567364713},
		{-9.5, 0.3191032477191282, -0.10809531881187123},
		{-8.0, -0.0527050503563862, 0.9355609381983065},
		{-3.0, -0.37881429367765806, 0.3145837692165988},
		{-1.0, 0.5355608832923521, -0.01016056711664521},
		{0.0, 0.3550280538878172, -0.2588194037928068},
		{0.5, 0.23169360648083348, -0.2249105326646839},
		{2.0, 0.03492413042327438, -0.05309038443365363},
		{5.0, 0.00010834442813607442, -0.0002474138908684625},
		{8.5, 1.0997009755195506e-08, -3.237725440447602e-08},
		{9.0, 2.47116843087249e-09, -7.480641389658946e-09},
		{10.0, 1.1047532552898686e-10, -3.5206336767389237e-10},
	}
	for _, tc := range testCases {
		ai, aip := Airy(tc.t)
		// On the oscillatory side the natural scale is the envelope, not the
		// value, which can sit near a zero.
		aiScale, aipScale := math.Abs(tc.ai), math.Abs(tc.aiPrime)
		if tc.t < 0 {
			env := 1 / math.Sqrt(math.Pi) / math.Pow(math.Abs(tc.t), 0.25)
			aiScale = max(aiScale, env)
			aipScale = max(aipScale, env*math.Sqrt(math.Abs(tc.t)))
		}
		if !closeEnough(ai, tc.ai, aiScale, 1e-13) {
			t.Errorf("Ai(%v) = %v, want %v", tc.t, ai, tc.ai)
		}
		if !closeEnough(aip, tc.aiPrime, aipScale, 1e-13) {
			t.Errorf("Ai'(%v) = %v, want %v", tc.t, aip, tc.aiPrime)
		}
	}
}

func TestAirySatisfiesEquation(t *testing.T) {
	// Ai satisfies y'' = t*y; check it with a central difference of Ai'.
	for _, x := range []float64{-8.5, -4.25, -0.75, 0.3, 3.7, 8.9} {
		const h = 1e-4
		d2 := (AiPrime(x+h) - AiPrime(x-h)) / (2 * h)
		want := x * Ai(x)
		scale := max(math.Abs(want), 1e-3*math.Abs(AiPrime(x)), 1e-12)
		if math.Abs(d2-want) > 1e-6*scale+1e-9 {
			t.Errorf("Ai''(%v) = %v, want t*Ai(t) = %v", x, d2, want)
		}
	}
}

func TestAirySpecialCases(t *testing.T) {
	if ai, aip := Airy(math.Inf(1)); ai != 0 || aip != 0 {
		t.Errorf("Airy(+Inf) = %v, %v, want 0, 0", ai, aip)
	}
	if ai, _ := Airy(math.NaN()); !math.IsNaN(ai) {
		t.Errorf("Airy(NaN) = %v, want NaN", ai)
	}
	if ai, _ := Airy(-math.Inf(1)); !math.IsNaN(ai) {
		t.Errorf("Airy(-Inf) = %v, want NaN", ai)
	}
	if ai, aip := Airy(1000); ai != 0 || aip != 0 {
		t.Errorf("Airy(1000) = %v, %v, want underflow to 0", ai, aip)
	}
}

func TestAiryContinuityAtCutoff(t *testing.T) {
	for _, edge := range []float64{-asymptoticCutoff, asymptoticCutoff} {
		below, _ := Airy(math.Nextafter(edge, math.Inf(-1)))
		above, _ := Airy(math.Nextafter(edge, math.Inf(1)))
		scale := max(math.Abs(below), math.Abs(above))
		if math.Abs(below-above) > 1e-12*scale {
			t.Errorf("Ai jumps at %v: %v vs %v", edge, below, above)
		}
	}
}

func TestCoefficients(t *testing.T) {
	// u_1 = 5/72, v_1 = -7/72.
	if got := U(1); math.Abs(got-5.0/72) > 1e-17 {
		t.Errorf("U(1) = %v, want %v", got, 5.0/72)
	}
	if got := V(1); math.Abs(got+7.0/72) > 1e-17 {
		t.Errorf("V(1) = %v, want %v", got, -7.0/72)
	}
}

func BenchmarkAiry(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Airy(float64(i%36)*0.5 - 9)
	}
}
