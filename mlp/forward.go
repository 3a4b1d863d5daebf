// SPDX-License-Identifier: MIT

package mlp

import (
	"github.com/katalvlaran/lvnet/matrix"
)

// Feedforward propagates a sizes[0]×1 column vector through every layer,
// storing z[ℓ] = W[ℓ]·a_prev + b[ℓ] and a[ℓ] = σ(z[ℓ]) for ℓ = 0…L-1, where
// a_prev is the input for ℓ == 0 and a[ℓ-1] otherwise.
//
// Implementation:
//   - Stage 1: validate the input shape, then keep a private copy of it so
//     Backpropagate can use it as the layer-0 a_prev.
//   - Stage 2: for each layer in order, compute z then a. Every scratch
//     buffer is written before any later stage reads it.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (input is not sizes[0]×1).
//
// Complexity:
//   - Time O(Σ sizes[ℓ]·sizes[ℓ+1]), Space O(Σ sizes[ℓ]).
func (n *Network) Feedforward(input matrix.Matrix) error {
	if err := matrix.ValidateColumnVector(input, n.sizes[0]); err != nil {
		return networkErrorf(opFeedforward, err)
	}
	in, err := matrix.DenseCopyOf(input)
	if err != nil {
		return networkErrorf(opFeedforward, err)
	}
	n.input = in

	prev := in
	var wa, z, a *matrix.Dense
	for l := range n.w {
		if wa, err = matrix.Mul(n.w[l], prev); err != nil {
			return networkErrorf(opFeedforward, err)
		}
		if z, err = matrix.Add(wa, n.b[l]); err != nil {
			return networkErrorf(opFeedforward, err)
		}
		if a, err = matrix.Map(z, Sigmoid); err != nil {
			return networkErrorf(opFeedforward, err)
		}
		n.z[l], n.a[l] = z, a
		prev = a
	}

	return nil
}

// Run feeds input forward and returns a copy of the output activation.
// It overwrites the network's forward scratch like Feedforward does.
//
// Errors:
//   - same as Feedforward.
func (n *Network) Run(input matrix.Matrix) (*matrix.Dense, error) {
	if err := n.Feedforward(input); err != nil {
		return nil, networkErrorf(opRun, err)
	}

	return n.Output(), nil
}

// prevActivation returns a_prev for layer l: the stored input for l == 0 and
// a[l-1] otherwise.
func (n *Network) prevActivation(l int) *matrix.Dense {
	if l == 0 {
		return n.input
	}

	return n.a[l-1]
}
