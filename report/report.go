// SPDX-License-Identifier: MIT

// Package report scores a binary classifier on a held-out set.
//
// A sample is predicted positive when the model output is strictly greater
// than Threshold and negative when strictly less. An output of exactly
// Threshold counts as neither, so it lowers both accuracy and the rates.
package report

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvnet/matrix"
)

// Threshold separates positive from negative predictions.
const Threshold = 0.5

var (
	// ErrEmptyEvaluation is returned when the evaluation set has no rows.
	ErrEmptyEvaluation = errors.New("report: empty evaluation set")

	// ErrNilRunner is returned when Evaluate is given no model.
	ErrNilRunner = errors.New("report: nil runner")

	// ErrDimensionMismatch is reported when targets are not n×1, when row
	// counts differ, or when the model output is not 1×1.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

const opEvaluate = "Evaluate"

func reportErrorf(tag string, err error) error {
	return fmt.Errorf("report.%s: %w", tag, err)
}

// Runner is the inference surface Evaluate needs; *mlp.Network satisfies it.
type Runner interface {
	Run(input matrix.Matrix) (*matrix.Dense, error)
}

// Result holds per-sample outputs and the derived confusion counts.
type Result struct {
	Targets []float64 // y[i,0] in row order
	Outputs []float64 // model output for row i

	Positives int // targets equal to 1
	Negatives int // Rows - Positives
	TP, TN    int

	Accuracy float64 // (TP+TN)/Rows
	TPRate   float64 // TP/Positives, 0 when there are no positives
	TNRate   float64 // TN/Negatives, 0 when there are no negatives
}

// Rows returns the number of evaluated samples.
func (r Result) Rows() int { return len(r.Targets) }

// Evaluate runs the model on every row of x (transposed to a column vector)
// and compares the single output with y[i,0].
//
// Errors:
//   - ErrNilRunner (model is nil, including a typed nil pointer).
//   - ErrNilMatrix, ErrDimensionMismatch (see the sentinel doc).
//   - ErrEmptyEvaluation (x has no rows).
//   - any error returned by the runner, wrapped.
//
// Complexity:
//   - Time O(n · cost(Run)), Space O(n).
func Evaluate(model Runner, x, y matrix.Matrix) (Result, error) {
	if isNilRunner(model) {
		return Result{}, reportErrorf(opEvaluate, ErrNilRunner)
	}
	if err := matrix.ValidateNotNil(x); err != nil {
		return Result{}, reportErrorf(opEvaluate, err)
	}
	if err := matrix.ValidateNotNil(y); err != nil {
		return Result{}, reportErrorf(opEvaluate, err)
	}
	if y.Cols() != 1 || x.Rows() != y.Rows() {
		return Result{}, reportErrorf(opEvaluate, fmt.Errorf("x %dx%d, y %dx%d: %w", x.Rows(), x.Cols(), y.Rows(), y.Cols(), ErrDimensionMismatch))
	}
	n := x.Rows()
	if n == 0 {
		return Result{}, reportErrorf(opEvaluate, ErrEmptyEvaluation)
	}

	res := Result{Targets: make([]float64, n), Outputs: make([]float64, n)}
	var row, col, out *matrix.Dense
	var err error
	for i := 0; i < n; i++ {
		if row, err = matrix.RowAt(x, i); err != nil {
			return Result{}, reportErrorf(opEvaluate, err)
		}
		if col, err = row.T(); err != nil {
			return Result{}, reportErrorf(opEvaluate, err)
		}
		if out, err = model.Run(col); err != nil {
			return Result{}, reportErrorf(opEvaluate, fmt.Errorf("row %d: %w", i, err))
		}
		if r, c := out.Shape(); r != 1 || c != 1 {
			return Result{}, reportErrorf(opEvaluate, fmt.Errorf("row %d: output %dx%d: %w", i, r, c, ErrDimensionMismatch))
		}
		if res.Targets[i], err = y.At(i, 0); err != nil {
			return Result{}, reportErrorf(opEvaluate, err)
		}
		res.Outputs[i], _ = out.At(0, 0)
	}
	res.tally()

	return res, nil
}

// isNilRunner reports a nil interface or a typed nil pointer behind it.
func isNilRunner(model Runner) bool {
	if model == nil {
		return true
	}
	v := reflect.ValueOf(model)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

// tally fills the counts and rates from Targets and Outputs.
func (r *Result) tally() {
	r.Positives = floats.Count(func(v float64) bool { return v == 1 }, r.Targets)
	r.Negatives = len(r.Targets) - r.Positives
	r.TP, r.TN = 0, 0
	for i, t := range r.Targets {
		switch o := r.Outputs[i]; {
		case t == 1 && o > Threshold:
			r.TP++
		case t == 0 && o < Threshold:
			r.TN++
		}
	}
	r.Accuracy = ratio(r.TP+r.TN, len(r.Targets))
	r.TPRate = ratio(r.TP, r.Positives)
	r.TNRate = ratio(r.TN, r.Negatives)
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}

// WriteTable prints one "target | output" line per sample at 5 decimals,
// preceded by a header line.
func (r Result) WriteTable(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Target  | Output"); err != nil {
		return err
	}
	for i, t := range r.Targets {
		if _, err := fmt.Fprintf(w, "%.5f | %.5f\n", t, r.Outputs[i]); err != nil {
			return err
		}
	}

	return nil
}

// String renders the three summary lines.
func (r Result) String() string {
	return fmt.Sprintf("Accuracy: %v\nTP rate: %v\nTN rate: %v", r.Accuracy, r.TPRate, r.TNRate)
}
