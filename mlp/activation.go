// SPDX-License-Identifier: MIT

package mlp

import "math"

// Sigmoid returns the logistic function 1/(1+e^(-x)).
// Output is in (0,1) for finite x, saturating to exactly 0 or 1 in float64
// for |x| beyond ~37 (upper side) and ~745 (lower side). Sigmoid(0) == 0.5.
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// SigmoidPrime returns the derivative σ(x)·(1−σ(x)).
// The maximum is 0.25 at x == 0; it vanishes in the saturated regions.
func SigmoidPrime(x float64) float64 {
	s := Sigmoid(x)

	return s * (1 - s)
}
