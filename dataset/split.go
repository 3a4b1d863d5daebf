// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnet/matrix"
)

// DefaultTrainFraction is the share of rows used for training by the demo.
const DefaultTrainFraction = 0.8

// Partition holds a contiguous train/test split of a feature matrix and its
// targets.
type Partition struct {
	TrainX, TrainY *matrix.Dense
	TestX, TestY   *matrix.Dense
}

// Split keeps the row order and cuts at n0 = ⌊n·trainFraction⌋: rows
// [0, n0) train, rows [n0, n) test. No shuffling is performed.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts differ).
//   - ErrSplitFraction (trainFraction is NaN or outside [0, 1]).
//
// Complexity:
//   - Time O(n·(cols(x)+cols(y))), Space same.
func Split(x, y matrix.Matrix, trainFraction float64) (Partition, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return Partition{}, datasetErrorf(opSplit, err)
	}
	if err := matrix.ValidateNotNil(y); err != nil {
		return Partition{}, datasetErrorf(opSplit, err)
	}
	if x.Rows() != y.Rows() {
		return Partition{}, datasetErrorf(opSplit, fmt.Errorf("%d feature rows vs %d target rows: %w", x.Rows(), y.Rows(), ErrDimensionMismatch))
	}
	if math.IsNaN(trainFraction) || trainFraction < 0 || trainFraction > 1 {
		return Partition{}, datasetErrorf(opSplit, fmt.Errorf("%v: %w", trainFraction, ErrSplitFraction))
	}

	n := x.Rows()
	n0 := int(math.Floor(float64(n) * trainFraction))

	var p Partition
	var err error
	if p.TrainX, err = matrix.SliceRows(x, 0, n0); err != nil {
		return Partition{}, datasetErrorf(opSplit, err)
	}
	if p.TrainY, err = matrix.SliceRows(y, 0, n0); err != nil {
		return Partition{}, datasetErrorf(opSplit, err)
	}
	if p.TestX, err = matrix.SliceRows(x, n0, n); err != nil {
		return Partition{}, datasetErrorf(opSplit, err)
	}
	if p.TestY, err = matrix.SliceRows(y, n0, n); err != nil {
		return Partition{}, datasetErrorf(opSplit, err)
	}

	return p, nil
}
