// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set.
// Loader errors carry the 1-based CSV line of the offending record.

package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

var (
	// ErrInvalidCategory is returned when a categorical field holds a value
	// outside its declared category list.
	ErrInvalidCategory = errors.New("dataset: invalid category")

	// ErrMalformedRecord is returned for records with the wrong number of
	// fields or a numeric field that does not parse as float64.
	ErrMalformedRecord = errors.New("dataset: malformed record")

	// ErrNoRecords is returned when no usable record remains after the header
	// and after incomplete rows were dropped.
	ErrNoRecords = errors.New("dataset: no usable records")

	// ErrSplitFraction is returned by Split for a fraction outside [0, 1].
	ErrSplitFraction = errors.New("dataset: split fraction must be in [0,1]")
)

// ErrDimensionMismatch is reported by Split when features and targets have
// different row counts.
var ErrDimensionMismatch = matrix.ErrDimensionMismatch

const (
	opOneHot    = "OneHot"
	opLoadHeart = "LoadHeart"
	opSplit     = "Split"
)

// datasetErrorf wraps err with the operation tag. Use only when err != nil.
func datasetErrorf(tag string, err error) error {
	return fmt.Errorf("dataset.%s: %w", tag, err)
}
