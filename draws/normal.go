// SPDX-License-Identifier: MIT

package draws

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Coefficients of Wichura's algorithm AS241 (PPND16), accurate to about
// 1 part in 10^16.
var (
	wichuraA = [8]float64{
		3.387132872796366608, 133.14166789178437745,
		1971.5909503065514427, 13731.693765509461125,
		45921.953931549871457, 67265.770927008700853,
		33430.575583588128105, 2509.0809287301226727,
	}
	wichuraB = [8]float64{
		1, 42.313330701600911252,
		687.1870074920579083, 5394.1960214247511077,
		21213.794301586595867, 39307.89580009271061,
		28729.085735721942674, 5226.495278852545925,
	}
	wichuraC = [8]float64{
		1.42343711074968357734, 4.6303378461565452959,
		5.7694972214606914055, 3.64784832476320460504,
		1.27045825245236838258, 0.24178072517745061177,
		0.0227238449892691845833, 7.7454501427834140764e-4,
	}
	wichuraD = [8]float64{
		1, 2.05319162663775882187,
		1.6763848301838038494, 0.68976733498510000455,
		0.14810397642748007459, 0.0151986665636164571966,
		5.475938084995344946e-4, 1.05075007164441684324e-9,
	}
	wichuraE = [8]float64{
		6.6579046435011037772, 5.4637849111641143699,
		1.7848265399172913358, 0.29656057182850489123,
		0.026532189526576123093, 0.0012426609473880784386,
		2.71155556874348757815e-5, 2.01033439929228813265e-7,
	}
	wichuraF = [8]float64{
		1, 0.59983220655588793769,
		0.13692988092273580531, 0.0148753612908506148525,
		7.868691311456132591e-4, 1.8463183175100546818e-5,
		1.4215117583164458887e-7, 2.04426310338993978564e-15,
	}
)

// poly evaluates c[0] + c[1]x + ... + c[7]x^7 by Horner's rule.
func poly(c *[8]float64, x float64) float64 {
	v := c[7]
	for i := 6; i >= 0; i-- {
		v = v*x + c[i]
	}

	return v
}

// Wichura returns the standard normal quantile Φ⁻¹(p) using algorithm AS241.
//
// Behavior highlights:
//   - p ≤ 0 ⇒ -Inf, p ≥ 1 ⇒ +Inf, NaN ⇒ NaN.
//   - Symmetric: Wichura(1-p) == -Wichura(p).
//
// Complexity: O(1).
func Wichura(p float64) float64 {
	switch {
	case math.IsNaN(p):
		return math.NaN()
	case p <= 0:
		return math.Inf(-1)
	case p >= 1:
		return math.Inf(1)
	}

	q := p - 0.5
	if math.Abs(q) <= 0.425 {
		r := 0.180625 - q*q

		return q * poly(&wichuraA, r) / poly(&wichuraB, r)
	}

	r := p
	if q > 0 {
		r = 1 - p
	}
	r = math.Sqrt(-math.Log(r))

	var v float64
	if r <= 5 {
		r -= 1.6
		v = poly(&wichuraC, r) / poly(&wichuraD, r)
	} else {
		r -= 5
		v = poly(&wichuraE, r) / poly(&wichuraF, r)
	}
	if q < 0 {
		return -v
	}

	return v
}

// NormalFromUniform transforms a matrix of uniform numbers into standard
// normal draws, returning a new matrix of the same shape.
func NormalFromUniform(u *mat.Dense) *mat.Dense {
	r, c := u.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, v float64) float64 { return Wichura(v) }, u)

	return out
}

// Normal draws i.i.d. N(0,1) variates by applying Wichura to U(0,1) draws.
func Normal(r *rand.Rand, sampleSize, drawCount int) (*mat.Dense, error) {
	u, err := Uniform(r, sampleSize, drawCount)
	if err != nil {
		return nil, err
	}

	return NormalFromUniform(u), nil
}
