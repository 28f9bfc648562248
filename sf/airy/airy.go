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

// Package airy evaluates the Airy function Ai and its derivative for real
// arguments.
//
// The tails |t| >= 9 use the classical asymptotic expansions truncated at
// their smallest term. In between, the Airy equation y'' = t*y is integrated
// with Taylor steps: downward from t = 9 on the decaying side, where the
// recessive solution is stable in that direction, and upward from the known
// values at the origin on the oscillatory side.
package airy

import "math"

const (
	// asymptoticCutoff is |t| beyond which the asymptotic expansions are used.
	asymptoticCutoff = 9.0
	// maxStep bounds the Taylor step length.
	maxStep = 0.5

	ai0      = 0.35502805388781723926
	aiPrime0 = -0.25881940379280679840

	numCoeffs = 60
)

// u[k] and v[k] are the coefficients of the Airy asymptotic expansions.
var u, v = asymptoticCoeffs(numCoeffs)

func asymptoticCoeffs(n int) (u, v []float64) {
	u = make([]float64, n)
	v = make([]float64, n)
	u[0], v[0] = 1, 1
	for k := 1; k < n; k++ {
		fk := float64(k)
		u[k] = u[k-1] * (6*fk - 5) * (6*fk - 3) * (6*fk - 1) / ((2*fk - 1) * 216 * fk)
		v[k] = -(6*fk + 1) / (6*fk - 1) * u[k]
	}
	return u, v
}

// U returns the k-th coefficient of the asymptotic expansion of Ai.
func U(k int) float64 { return u[k] }

// V returns the k-th coefficient of the asymptotic expansion of Ai'.
func V(k int) float64 { return v[k] }

// Airy returns Ai(t) and Ai'(t).
//
// Special cases are:
//
//	Airy(NaN) = NaN, NaN
//	Airy(+Inf) = 0, 0
//	Airy(-Inf) = NaN, NaN
func Airy(t float64) (ai, aiPrime float64) {
	switch {
	case math.IsNaN(t) || math.IsInf(t, -1):
		return math.NaN(), math.NaN()
	case math.IsInf(t, 1):
		return 0, 0
	case t >= asymptoticCutoff:
		return decaying(t)
	case t <= -asymptoticCutoff:
		s := -t
		xi := 2.0 / 3.0 * s * math.Sqrt(s)
		theta := xi - math.Pi/4
		return OscillatoryTail(xi, math.Cos(theta), math.Sin(theta))
	case t >= 0:
		y, yp := decaying(asymptoticCutoff)
		return integrate(asymptoticCutoff, t, y, yp)
	default:
		return integrate(0, t, ai0, aiPrime0)
	}
}

// Ai returns the Airy function of the first kind.
func Ai(t float64) float64 {
	ai, _ := Airy(t)
	return ai
}

// AiPrime returns the derivative of Ai.
func AiPrime(t float64) float64 {
	_, aip := Airy(t)
	return aip
}

// decaying evaluates the t >= 9 expansion, where xi = (2/3) t^(3/2) and
//
//	Ai(t)  ~  e^-xi / (2 sqrt(pi) t^(1/4)) * sum (-1)^k u_k xi^-k
//	Ai'(t) ~ -t^(1/4) e^-xi / (2 sqrt(pi)) * sum (-1)^k v_k xi^-k
func decaying(t float64) (ai, aiPrime float64) {
	xi := 2.0 / 3.0 * t * math.Sqrt(t)
	sa, sb := 1.0, 1.0
	prev := math.Inf(1)
	pow := 1.0
	for k := 1; k < numCoeffs; k++ {
		pow /= -xi
		ta := u[k] * pow
		if math.Abs(ta) > prev {
			break
		}
		prev = math.Abs(ta)
		sa += ta
		sb += v[k] * pow
		if math.Abs(ta) < 1e-17*math.Abs(sa) {
			break
		}
	}
	e := math.Exp(-xi)
	q := math.Sqrt(math.Sqrt(t))
	ai = e / (2 * math.SqrtPi * q) * sa
	aiPrime = -q * e / (2 * math.SqrtPi) * sb
	return ai, aiPrime
}

// OscillatoryTail evaluates the t <= -9 expansion for xi = (2/3)|t|^(3/2)
// with the phase supplied by the caller as cos and sin of xi - pi/4. Callers
// that know xi only as a difference of large quantities can form the phase
// from an accurately reduced angle instead.
func OscillatoryTail(xi, cosTheta, sinTheta float64) (ai, aiPrime float64) {
	pa, qa, pb, qb := 1.0, 0.0, 1.0, 0.0
	prev := math.Inf(1)
	pow := 1.0
	for k := 1; k < numCoeffs; k++ {
		pow /= xi
		ta := u[k] * pow
		if math.Abs(ta) > prev {
			break
		}
		prev = math.Abs(ta)
		tb := v[k] * pow
		if (k/2)%2 == 1 {
			ta, tb = -ta, -tb
		}
		if k%2 == 0 {
			pa += ta
			pb += tb
		} else {
			qa += ta
			qb += tb
		}
		if prev < 1e-17 {
			break
		}
	}
	q := math.Pow(1.5*xi, 1.0/6.0)
	ai = (cosTheta*pa + sinTheta*qa) / (math.SqrtPi * q)
	aiPrime = q * (sinTheta*pb - cosTheta*qb) / math.SqrtPi
	return ai, aiPrime
}

// integrate carries (y, y') of the Airy equation from t0 to t.
func integrate(t0, t, y, yp float64) (float64, float64) {
	n := int(math.Ceil(math.Abs(t-t0) / maxStep))
	for i := range n {
		h := (t - t0) / float64(n-i)
		y, yp = taylorStep(t0, y, yp, h)
		t0 += h
	}
	return y, yp
}

// taylorStep advances y'' = t*y by h from t0 using the Taylor coefficients
// a[n+2] = (t0*a[n] + a[n-1]) / ((n+1)(n+2)). Some coefficients vanish at
// t0 = 0, so the sum stops only after three consecutive negligible terms.
func taylorStep(t0, y, yp, h float64) (float64, float64) {
	const maxTerms = 200
	sy := y + yp*h
	syp := yp
	am1, a0, a1 := 0.0, y, yp // a[n-1], a[n], a[n+1]
	hp := h                   // h^(n+1)
	quiet := 0
	for n := 0; n < maxTerms; n++ {
		next := (t0*a0 + am1) / float64((n+1)*(n+2))
		m := float64(n + 2)
		dterm := m * next * hp
		hp *= h
		term := next * hp
		sy += term
		syp += dterm
		if math.Abs(term) <= 1e-17*math.Abs(sy) && math.Abs(dterm) <= 1e-17*math.Abs(syp) {
			quiet++
			if quiet >= 3 {
				break
			}
		} else {
			quiet = 0
		}
		am1, a0, a1 = a0, a1, next
	}
	return sy, syp
}
