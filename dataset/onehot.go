// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"slices"
)

// OneHot encodes value against an ordered category list: the result has
// len(categories) entries with 1.0 at the position of value and 0.0 elsewhere.
// Matching is exact and case-sensitive.
//
// Errors:
//   - ErrInvalidCategory (value is not in categories).
//
// Complexity:
//   - Time O(len(categories)), Space O(len(categories)).
func OneHot(value string, categories []string) ([]float64, error) {
	idx := slices.Index(categories, value)
	if idx < 0 {
		return nil, datasetErrorf(opOneHot, fmt.Errorf("%q not in %q: %w", value, categories, ErrInvalidCategory))
	}
	out := make([]float64, len(categories))
	out[idx] = 1

	return out, nil
}
