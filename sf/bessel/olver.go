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

	"github.com/ajroetker/go-specfunc/sf"
	"github.com/ajroetker/go-specfunc/sf/airy"
)

// uniformTerms is the number of correction terms K kept in the uniform
// expansion; terms are O(nu^-2k).
const uniformTerms = 3

// debye[k] holds the coefficients of the Debye polynomial U_k(p) in
// ascending powers of p.
var debye = debyePolynomials(2*uniformTerms + 2)

// debyePolynomials builds U_0..U_{n-1} from U_0 = 1 and
//
//	U_{k+1}(p) = p^2 (1-p^2) U_k'(p) / 2 + (1/8) int_0^p (1 - 5t^2) U_k(t) dt.
func debyePolynomials(n int) [][]float64 {
	polys := make([][]float64, 1, n)
	polys[0] = []float64{1}
	for len(polys) < n {
		u := polys[len(polys)-1]
		next := make([]float64, len(u)+3)
		for i := 1; i < len(u); i++ {
			c := float64(i) * u[i] // coefficient of p^(i-1) in U_k'
			next[i+1] += 0.5 * c
			next[i+3] -= 0.5 * c
		}
		for i, c := range u {
			next[i+1] += c / 8 / float64(i+1)
			next[i+3] -= 5 * c / 8 / float64(i+3)
		}
		for len(next) > 0 && next[len(next)-1] == 0 {
			next = next[:len(next)-1]
		}
		polys = append(polys, next)
	}
	return polys
}

// uniformZeta returns zeta(z) from
//
//	(2/3) zeta^(3/2) = ln((1 + sqrt(1-z^2))/z) - sqrt(1-z^2)   z <= 1
//	(2/3) (-zeta)^(3/2) = sqrt(z^2-1) - acos(1/z)              z > 1
//
// Near z = 1 both right-hand sides are differences of nearly equal terms, so
// with s = sqrt|1-z^2| they are summed as atanh(s) - s = s^3/3 + s^5/5 + ...
// and s - atan(s) = s^3/3 - s^5/5 + ... instead.
func uniformZeta(z float64) float64 {
	var s, sign float64
	if z < 1 {
		s, sign = math.Sqrt((1-z)*(1+z)), 1
	} else {
		s, sign = math.Sqrt((z-1)*(z+1)), -1
	}

	var w float64
	switch {
	case s < zetaSeriesCutoff:
		s2 := s * s
		p := s * s2
		for k := 3.0; ; k += 2 {
			term := p / k
			w += term
			if math.Abs(term) <= 0.5*sf.DblEpsilon*w {
				break
			}
			p *= sign * s2
		}
	case z < 1:
		w = math.Log((1+s)/z) - s
	default:
		w = s - math.Acos(1/z)
	}
	c := math.Cbrt(1.5 * w)
	return sign * c * c
}

// uniformCoeffs returns sum_k A_k nu^-2k and sum_k B_k nu^-2k together with
// r = zeta/(1-z^2). A_k and B_k are the combinations of U_k and the Airy
// asymptotic constants
//
//	A_k = sum_{j=0}^{2k}   (3/2)^j v_j zeta^(-3j/2) U_{2k-j}(p)
//	B_k = -sum_{j=0}^{2k+1} (3/2)^j u_j zeta^(-3j/2 - 1/2) U_{2k-j+1}(p)
//
// with p = (1-z^2)^(-1/2). Every monomial p^n zeta^(-m/2) that occurs has an
// even m+n, so it is rewritten as r^(n/2) zeta^(-(m+n)/2), which is real on
// both sides of z = 1.
func uniformCoeffs(z, zeta, nu float64) (sumA, sumB, r float64) {
	r = zeta / ((1 - z) * (1 + z))
	sr := math.Sqrt(r)

	const maxPow = 3*(2*uniformTerms+1) + 2
	var srPow, zetaInv [maxPow + 1]float64
	srPow[0], zetaInv[0] = 1, 1
	for i := 1; i <= maxPow; i++ {
		srPow[i] = srPow[i-1] * sr
		zetaInv[i] = zetaInv[i-1] / zeta
	}

	inv2 := 1 / (nu * nu)
	f := 1.0
	for k := 0; k <= uniformTerms; k++ {
		var a, b float64
		w := 1.0 // 1.5^j
		for j := 0; j <= 2*k; j++ {
			for n, c := range debye[2*k-j] {
				if c != 0 {
					a += w * airy.V(j) * c * srPow[n] * zetaInv[(3*j+n)/2]
				}
			}
			w *= 1.5
		}
		w = 1
		for j := 0; j <= 2*k+1; j++ {
			for n, c := range debye[2*k-j+1] {
				if c != 0 {
					b -= w * airy.U(j) * c * srPow[n] * zetaInv[(1+3*j+n)/2]
				}
			}
			w *= 1.5
		}
		sumA += a * f
		sumB += b * f
		f *= inv2
	}
	return sumA, sumB, r
}

// besselUniformCore evaluates Olver's expansion
//
//	J_nu(nu z) ~ (4 zeta/(1-z^2))^(1/4) [Ai(t) sumA / nu^(1/3) + Ai'(t) sumB / nu^(5/3)]
//
// at t = nu^(2/3) zeta. On the oscillatory side the Airy phase is assembled
// from sin(x) and cos(x) and a small remainder, since zeta itself carries an
// absolute error that grows with x.
func besselUniformCore(nu, x float64) (float64, sf.Status) {
	z := x / nu
	zeta := uniformZeta(z)
	sumA, sumB, r := uniformCoeffs(z, zeta, nu)
	nu13 := math.Cbrt(nu)
	nu23 := nu13 * nu13
	t := nu23 * zeta

	var ai, aip float64
	if t <= -9 {
		s := math.Sqrt((x - nu) * (x + nu))
		ac := math.Acos(nu / x)
		xi := s - nu*ac
		d := nu*nu/(x+s) + nu*ac + math.Pi/4
		sx, cx := math.Sincos(x)
		sd, cd := math.Sincos(d)
		ai, aip = airy.OscillatoryTail(xi, cx*cd+sx*sd, sx*cd-cx*sd)
	} else {
		ai, aip = airy.Airy(t)
		if ai == 0 && aip == 0 {
			return 0, sf.Underflow
		}
	}
	pre := math.Sqrt(math.Sqrt(4 * r))
	return pre * (ai*sumA/nu13 + aip*sumB/(nu*nu23)), sf.Success
}

// turningWidth returns the half-width, in z = x/nu, of the band around the
// turning point inside which besselUniform shifts the order. It is
// turningBand for moderate x and narrows like x^(-2/3) beyond that, which
// keeps the Airy argument at the band edge near turningAiry.
func turningWidth(x float64) float64 {
	c := math.Cbrt(x)
	return min(turningBand, turningAiry/(math.Cbrt(2)*c*c))
}

// besselUniform returns J_nu(x) from the uniform expansion. Near the turning
// point x = nu the expansion is evaluated at the smallest order mu = nu + m
// with x/mu <= 1 - turningWidth(x) and carried back to nu by downward
// recursion, which takes about x - nu + x^(1/3) steps.
func besselUniform(nu, x float64) (float64, sf.Status) {
	band := turningWidth(x)
	if math.Abs(1-x/nu) >= band {
		return besselUniformCore(nu, x)
	}
	mu := nu + math.Ceil(x/(1-band)-nu)
	next, s := besselUniformCore(mu+1, x)
	if s != sf.Success {
		return 0, s
	}
	cur, s := besselUniformCore(mu, x)
	if s != sf.Success {
		return 0, s
	}
	w := newWindow(x, mu, cur, next)
	w.downTo(nu, nil)
	return w.cur, sf.Success
}
