// SPDX-License-Identifier: MIT

package mlp

import (
	"github.com/katalvlaran/lvnet/matrix"
)

// Backpropagate accumulates the gradients of the per-sample cost
// C = ½‖a[L-1] − target‖² with respect to every weight and bias, using the
// activations of the most recent Feedforward.
//
// Implementation:
//   - Stage 1: validate that a forward pass happened and that target has the
//     output shape; seed dC/da = a[L-1] − target.
//   - Stage 2: for ℓ = L-1 down to 0:
//     dC/dz   = dC/da ⊙ σ'(z[ℓ])
//     gradB[ℓ] += dC/dz
//     gradW[ℓ] += dC/dz · a_prevᵀ
//     dC/da   ← W[ℓ]ᵀ · dC/dz   (skipped for ℓ == 0)
//
// Behavior highlights:
//   - Gradients are summed over calls, never averaged; ZeroGrad resets them.
//   - Weights and biases are not modified.
//
// Errors:
//   - ErrNoForwardPass (no Feedforward yet).
//   - ErrNilMatrix, ErrDimensionMismatch (target is not outputSize×1).
//
// Complexity:
//   - Time O(Σ sizes[ℓ]·sizes[ℓ+1]), Space O(Σ sizes[ℓ]·sizes[ℓ+1]).
func (n *Network) Backpropagate(target matrix.Matrix) error {
	if n.input == nil {
		return networkErrorf(opBackpropagate, ErrNoForwardPass)
	}
	last := len(n.w) - 1
	if err := matrix.ValidateColumnVector(target, n.a[last].Rows()); err != nil {
		return networkErrorf(opBackpropagate, err)
	}

	dcda, err := matrix.Sub(n.a[last], target)
	if err != nil {
		return networkErrorf(opBackpropagate, err)
	}

	var dsig, dcdz, prevT, dcdw, wT *matrix.Dense
	for l := last; l >= 0; l-- {
		if dsig, err = matrix.Map(n.z[l], SigmoidPrime); err != nil {
			return networkErrorf(opBackpropagate, err)
		}
		if dcdz, err = matrix.Hadamard(dcda, dsig); err != nil {
			return networkErrorf(opBackpropagate, err)
		}
		if prevT, err = matrix.Transpose(n.prevActivation(l)); err != nil {
			return networkErrorf(opBackpropagate, err)
		}
		if dcdw, err = matrix.Mul(dcdz, prevT); err != nil {
			return networkErrorf(opBackpropagate, err)
		}
		if n.gradB[l], err = matrix.Add(n.gradB[l], dcdz); err != nil {
			return networkErrorf(opBackpropagate, err)
		}
		if n.gradW[l], err = matrix.Add(n.gradW[l], dcdw); err != nil {
			return networkErrorf(opBackpropagate, err)
		}
		if l == 0 {
			break
		}
		if wT, err = matrix.Transpose(n.w[l]); err != nil {
			return networkErrorf(opBackpropagate, err)
		}
		if dcda, err = matrix.Mul(wT, dcdz); err != nil {
			return networkErrorf(opBackpropagate, err)
		}
	}

	return nil
}
