package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/mlp"
	"github.com/katalvlaran/lvnet/report"
)

// echo returns the first input feature as its output.
type echo struct{}

func (echo) Run(in matrix.Matrix) (*matrix.Dense, error) {
	v, err := in.At(0, 0)
	if err != nil {
		return nil, err
	}
	return matrix.NewFromValues(1, 1, []float64{v})
}

type failing struct{ err error }

func (f failing) Run(matrix.Matrix) (*matrix.Dense, error) { return nil, f.err }

type wide struct{}

func (wide) Run(matrix.Matrix) (*matrix.Dense, error) { return matrix.NewZeros(2, 1) }

func mustFromValues(t *testing.T, rows, cols int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromValues(rows, cols, vals)
	require.NoError(t, err)

	return m
}

func TestEvaluate_Counts(t *testing.T) {
	// outputs:  0.9  0.2  0.7  0.5  0.1  0.6
	// targets:  1    1    0    0    0    1
	x := mustFromValues(t, 6, 2, 0.9, 0, 0.2, 0, 0.7, 0, 0.5, 0, 0.1, 0, 0.6, 0)
	y := mustFromValues(t, 6, 1, 1, 1, 0, 0, 0, 1)

	res, err := report.Evaluate(echo{}, x, y)
	require.NoError(t, err)

	assert.Equal(t, 6, res.Rows())
	assert.Equal(t, []float64{0.9, 0.2, 0.7, 0.5, 0.1, 0.6}, res.Outputs)
	assert.Equal(t, []float64{1, 1, 0, 0, 0, 1}, res.Targets)
	assert.Equal(t, 3, res.Positives)
	assert.Equal(t, 3, res.Negatives)
	assert.Equal(t, 2, res.TP)
	assert.Equal(t, 1, res.TN, "an output of exactly 0.5 is not a negative prediction")
	assert.InDelta(t, 0.5, res.Accuracy, 1e-15)
	assert.InDelta(t, 2.0/3, res.TPRate, 1e-15)
	assert.InDelta(t, 1.0/3, res.TNRate, 1e-15)
}

func TestEvaluate_RatesWithoutPositives(t *testing.T) {
	x := mustFromValues(t, 2, 1, 0.1, 0.9)
	y := mustFromValues(t, 2, 1, 0, 0)

	res, err := report.Evaluate(echo{}, x, y)
	require.NoError(t, err)
	assert.Zero(t, res.Positives)
	assert.Zero(t, res.TPRate)
	assert.Equal(t, 0.5, res.TNRate)
	assert.Equal(t, 0.5, res.Accuracy)
}

func TestEvaluate_Errors(t *testing.T) {
	x := mustFromValues(t, 2, 1, 0.1, 0.9)
	y := mustFromValues(t, 2, 1, 0, 1)

	_, err := report.Evaluate(echo{}, x, mustFromValues(t, 3, 1, 0, 1, 0))
	assert.ErrorIs(t, err, report.ErrDimensionMismatch)
	_, err = report.Evaluate(echo{}, x, mustFromValues(t, 2, 2, 0, 1, 0, 1))
	assert.ErrorIs(t, err, report.ErrDimensionMismatch)
	_, err = report.Evaluate(wide{}, x, y)
	assert.ErrorIs(t, err, report.ErrDimensionMismatch)
	_, err = report.Evaluate(echo{}, nil, y)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	empty, err := matrix.NewZeros(0, 1)
	require.NoError(t, err)
	_, err = report.Evaluate(echo{}, empty, empty)
	assert.ErrorIs(t, err, report.ErrEmptyEvaluation)

	boom := errors.New("boom")
	_, err = report.Evaluate(failing{boom}, x, y)
	assert.ErrorIs(t, err, boom)
}

func TestEvaluate_Network(t *testing.T) {
	net, err := mlp.New([]int{2, 2, 1}, mlp.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, net.SetWeights(0, mustFromValues(t, 2, 2, 20, 20, 20, 20)))
	require.NoError(t, net.SetBiases(0, mustFromValues(t, 2, 1, -10, -30)))
	require.NoError(t, net.SetWeights(1, mustFromValues(t, 1, 2, 20, -20)))
	require.NoError(t, net.SetBiases(1, mustFromValues(t, 1, 1, -10)))

	x := mustFromValues(t, 4, 2, 0, 0, 0, 1, 1, 0, 1, 1)
	y := mustFromValues(t, 4, 1, 0, 1, 1, 0)
	res, err := report.Evaluate(net, x, y)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Accuracy)
	assert.Equal(t, 1.0, res.TPRate)
	assert.Equal(t, 1.0, res.TNRate)
}

func TestResult_Formatting(t *testing.T) {
	x := mustFromValues(t, 2, 1, 0.75, 0.25)
	y := mustFromValues(t, 2, 1, 1, 0)
	res, err := report.Evaluate(echo{}, x, y)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.WriteTable(&buf))
	assert.Equal(t, "Target  | Output\n1.00000 | 0.75000\n0.00000 | 0.25000\n", buf.String())
	assert.Equal(t, "Accuracy: 1\nTP rate: 1\nTN rate: 1", res.String())
}

func TestEvaluate_NilRunner(t *testing.T) {
	x := mustFromValues(t, 2, 1, 0.1, 0.9)
	y := mustFromValues(t, 2, 1, 0, 1)

	_, err := report.Evaluate(nil, x, y)
	assert.ErrorIs(t, err, report.ErrNilRunner)

	var net *mlp.Network
	_, err = report.Evaluate(net, x, y)
	assert.ErrorIs(t, err, report.ErrNilRunner, "typed nil network")
}
