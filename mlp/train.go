// SPDX-License-Identifier: MIT

// Package mlp - whole-batch gradient descent.
//
// One TrainBatch call is one optimizer step:
//
//	ZeroGrad
//	for each row i: Feedforward(xᵢᵀ); Backpropagate(yᵢᵀ)
//	W[ℓ] -= lr·gradW[ℓ];  b[ℓ] -= lr·gradB[ℓ]
//
// Gradients are the plain sum over the batch (no 1/n factor), so the
// effective step grows with the batch size.

package mlp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvnet/matrix"
)

// TrainBatch performs one gradient-descent step over every row of inputs
// (n×sizes[0]) paired with the same row of targets (n×outputSize).
//
// Implementation:
//   - Stage 1: validate shapes and learning rate before touching any state.
//   - Stage 2: ZeroGrad, then Feedforward/Backpropagate each transposed row
//     in row order.
//   - Stage 3: apply b -= lr·gradB and W -= lr·gradW for every layer.
//
// Behavior highlights:
//   - A batch with zero rows leaves the parameters unchanged.
//   - On error the parameters are unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (column widths or row counts disagree).
//   - ErrLearningRate (lr is NaN, ±Inf or ≤ 0).
//
// Complexity:
//   - Time O(n·Σ sizes[ℓ]·sizes[ℓ+1]).
func (n *Network) TrainBatch(inputs, targets matrix.Matrix, lr float64) error {
	if err := n.validateBatch(inputs, targets); err != nil {
		return networkErrorf(opTrainBatch, err)
	}
	if math.IsNaN(lr) || math.IsInf(lr, 0) || lr <= 0 {
		return networkErrorf(opTrainBatch, fmt.Errorf("lr=%v: %w", lr, ErrLearningRate))
	}

	n.ZeroGrad()
	var x, y *matrix.Dense
	var err error
	for i := 0; i < inputs.Rows(); i++ {
		if x, y, err = samplePair(inputs, targets, i); err != nil {
			return networkErrorf(opTrainBatch, err)
		}
		if err = n.Feedforward(x); err != nil {
			return networkErrorf(opTrainBatch, err)
		}
		if err = n.Backpropagate(y); err != nil {
			return networkErrorf(opTrainBatch, err)
		}
	}

	if err = n.applyGradients(lr); err != nil {
		return networkErrorf(opTrainBatch, err)
	}

	return nil
}

// Cost returns ½·Σᵢ‖Run(xᵢᵀ) − yᵢᵀ‖² over the batch. It overwrites the
// forward scratch but leaves gradients and parameters untouched.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (same rules as TrainBatch).
func (n *Network) Cost(inputs, targets matrix.Matrix) (float64, error) {
	if err := n.validateBatch(inputs, targets); err != nil {
		return 0, networkErrorf(opCost, err)
	}

	var total float64
	var x, y, out, diff *matrix.Dense
	var err error
	for i := 0; i < inputs.Rows(); i++ {
		if x, y, err = samplePair(inputs, targets, i); err != nil {
			return 0, networkErrorf(opCost, err)
		}
		if out, err = n.Run(x); err != nil {
			return 0, networkErrorf(opCost, err)
		}
		if diff, err = matrix.Sub(out, y); err != nil {
			return 0, networkErrorf(opCost, err)
		}
		d := diff.Values()
		total += 0.5 * floats.Dot(d, d)
	}

	return total, nil
}

// validateBatch checks inputs is n×sizes[0] and targets is n×outputSize.
func (n *Network) validateBatch(inputs, targets matrix.Matrix) error {
	if err := matrix.ValidateNotNil(inputs); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(targets); err != nil {
		return err
	}
	if inputs.Cols() != n.InputSize() {
		return fmt.Errorf("inputs have %d columns, network expects %d: %w", inputs.Cols(), n.InputSize(), ErrDimensionMismatch)
	}
	if targets.Cols() != n.OutputSize() {
		return fmt.Errorf("targets have %d columns, network produces %d: %w", targets.Cols(), n.OutputSize(), ErrDimensionMismatch)
	}
	if inputs.Rows() != targets.Rows() {
		return fmt.Errorf("%d input rows vs %d target rows: %w", inputs.Rows(), targets.Rows(), ErrDimensionMismatch)
	}

	return nil
}

// samplePair extracts row i of inputs and targets as column vectors.
func samplePair(inputs, targets matrix.Matrix, i int) (x, y *matrix.Dense, err error) {
	var row *matrix.Dense
	if row, err = matrix.RowAt(inputs, i); err != nil {
		return nil, nil, err
	}
	if x, err = row.T(); err != nil {
		return nil, nil, err
	}
	if row, err = matrix.RowAt(targets, i); err != nil {
		return nil, nil, err
	}
	if y, err = row.T(); err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

// applyGradients performs b -= lr·gradB and W -= lr·gradW layer by layer.
// New parameter matrices are committed only after every layer succeeded.
func (n *Network) applyGradients(lr float64) error {
	w := make([]*matrix.Dense, len(n.w))
	b := make([]*matrix.Dense, len(n.b))
	var step *matrix.Dense
	var err error
	for l := range n.w {
		if step, err = n.gradB[l].Scale(lr); err != nil {
			return err
		}
		if b[l], err = n.b[l].Sub(step); err != nil {
			return err
		}
		if step, err = n.gradW[l].Scale(lr); err != nil {
			return err
		}
		if w[l], err = n.w[l].Sub(step); err != nil {
			return err
		}
	}
	copy(n.w, w)
	copy(n.b, b)

	return nil
}
