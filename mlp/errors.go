// SPDX-License-Identifier: MIT
// Package mlp: sentinel error set.
// Every exported operation returns one of these sentinels (or a matrix
// sentinel) wrapped with the operation name; match them with errors.Is.
// Nothing in this package panics on caller input.

package mlp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

var (
	// ErrConfiguration is returned by New when fewer than two layer sizes are
	// given or when any layer size is not positive.
	ErrConfiguration = errors.New("mlp: invalid network configuration")

	// ErrNoForwardPass is returned by Backpropagate when no input has been fed
	// forward yet, so there is no activation to differentiate.
	ErrNoForwardPass = errors.New("mlp: backpropagate before any feedforward")

	// ErrLearningRate is returned by TrainBatch for a learning rate that is
	// not a finite positive number.
	ErrLearningRate = errors.New("mlp: learning rate must be finite and > 0")

	// ErrLayerOutOfRange is returned by the per-layer accessors for an index
	// outside [0, Layers()). It also matches matrix.ErrOutOfRange.
	ErrLayerOutOfRange = fmt.Errorf("mlp: layer index: %w", matrix.ErrOutOfRange)
)

// ErrDimensionMismatch is the matrix sentinel reported for every width or
// shape disagreement (input height, target shape, batch widths, row counts).
var ErrDimensionMismatch = matrix.ErrDimensionMismatch

// Operation tags for uniform error wrapping.
const (
	opNew           = "New"
	opFeedforward   = "Feedforward"
	opBackpropagate = "Backpropagate"
	opTrainBatch    = "TrainBatch"
	opRun           = "Run"
	opCost          = "Cost"
	opLayer         = "Layer"
)

// networkErrorf wraps err with the operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func networkErrorf(tag string, err error) error {
	return fmt.Errorf("mlp.%s: %w", tag, err)
}
