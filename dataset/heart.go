// SPDX-License-Identifier: MIT

// Package dataset - heart-disease CSV loader.
//
// Record layout (13 fields, header row first):
//
//	Age, Sex{M,F}, ChestPainType{ATA,ASY,NAP,TA}, RestingBP, Cholesterol,
//	FastingBS, RestingECG{Normal,ST,LVH}, MaxHR, ExerciseAngina{Y,N},
//	Oldpeak, ST_Slope{Flat,Up,Down}, HRGap, HeartDisease
//
// The first twelve fields expand to 21 features (categoricals one-hot in the
// listed order); HeartDisease is the 0/1 target. Records with any empty field
// are dropped. Row order of the output follows the file.

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnet/matrix"
)

const (
	// HeartFields is the number of CSV fields per record.
	HeartFields = 13

	// HeartFeatures is the width of the encoded feature matrix.
	HeartFeatures = 21
)

// column describes one input field. Nil categories mark a numeric field.
type column struct {
	name       string
	categories []string
}

// heartColumns lists the twelve feature fields in file order; the target is
// the field after them.
var heartColumns = []column{
	{name: "Age"},
	{name: "Sex", categories: []string{"M", "F"}},
	{name: "ChestPainType", categories: []string{"ATA", "ASY", "NAP", "TA"}},
	{name: "RestingBP"},
	{name: "Cholesterol"},
	{name: "FastingBS"},
	{name: "RestingECG", categories: []string{"Normal", "ST", "LVH"}},
	{name: "MaxHR"},
	{name: "ExerciseAngina", categories: []string{"Y", "N"}},
	{name: "Oldpeak"},
	{name: "ST_Slope", categories: []string{"Flat", "Up", "Down"}},
	{name: "HRGap"},
}

// HeartFeatureNames returns the 21 feature column names in matrix order.
// One-hot columns are named "Field=Category".
func HeartFeatureNames() []string {
	names := make([]string, 0, HeartFeatures)
	for _, col := range heartColumns {
		if col.categories == nil {
			names = append(names, col.name)
			continue
		}
		for _, c := range col.categories {
			names = append(names, col.name+"="+c)
		}
	}

	return names
}

// LoadHeart reads heart-disease records from r and returns an n×21 feature
// matrix and an n×1 target matrix. Values are not normalized.
//
// Implementation:
//   - Stage 1: skip the header row.
//   - Stage 2: for each record, drop it if any field is empty, else encode
//     numeric fields with strconv.ParseFloat and categoricals with OneHot.
//   - Stage 3: pack the accumulated rows into Dense matrices.
//
// Errors:
//   - ErrMalformedRecord (wrong field count, unparsable number, CSV syntax).
//   - ErrInvalidCategory (categorical value outside its list).
//   - ErrNoRecords (nothing left after the header and dropped rows).
//
// Complexity:
//   - Time O(n), Space O(n).
func LoadHeart(r io.Reader) (x, y *matrix.Dense, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = HeartFields
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	if _, err = cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, datasetErrorf(opLoadHeart, fmt.Errorf("empty input: %w", ErrNoRecords))
		}
		return nil, nil, datasetErrorf(opLoadHeart, fmt.Errorf("header: %w: %w", ErrMalformedRecord, err))
	}

	var features, targets []float64
	row := make([]float64, 0, HeartFeatures)
	var rec []string
	var target float64
	for {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, datasetErrorf(opLoadHeart, fmt.Errorf("%w: %w", ErrMalformedRecord, err))
		}
		if slices.Contains(rec, "") {
			continue
		}
		if row, target, err = encodeHeart(row[:0], rec); err != nil {
			line, _ := cr.FieldPos(0)
			return nil, nil, datasetErrorf(opLoadHeart, fmt.Errorf("line %d: %w", line, err))
		}
		features = append(features, row...)
		targets = append(targets, target)
	}

	n := len(targets)
	if n == 0 {
		return nil, nil, datasetErrorf(opLoadHeart, ErrNoRecords)
	}
	if x, err = matrix.NewFromValues(n, HeartFeatures, features); err != nil {
		return nil, nil, datasetErrorf(opLoadHeart, err)
	}
	if y, err = matrix.NewFromValues(n, 1, targets); err != nil {
		return nil, nil, datasetErrorf(opLoadHeart, err)
	}

	return x, y, nil
}

// LoadHeartFile opens path and delegates to LoadHeart.
func LoadHeartFile(path string) (x, y *matrix.Dense, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, datasetErrorf(opLoadHeart, err)
	}
	defer f.Close()

	return LoadHeart(f)
}

// encodeHeart appends the 21 encoded features of rec to dst and parses the
// target field.
func encodeHeart(dst []float64, rec []string) ([]float64, float64, error) {
	for i, col := range heartColumns {
		if col.categories == nil {
			v, err := parseNumber(col.name, rec[i])
			if err != nil {
				return dst, 0, err
			}
			dst = append(dst, v)
			continue
		}
		hot, err := OneHot(strings.TrimSpace(rec[i]), col.categories)
		if err != nil {
			return dst, 0, fmt.Errorf("%s: %w", col.name, err)
		}
		dst = append(dst, hot...)
	}
	target, err := parseNumber("HeartDisease", rec[len(heartColumns)])

	return dst, target, err
}

func parseNumber(name, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", name, field, ErrMalformedRecord)
	}

	return v, nil
}
