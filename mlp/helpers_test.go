package mlp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/mlp"
)

// hide wraps a matrix so kernels cannot take the *Dense fast path.
type hide struct{ matrix.Matrix }

func mustFromValues(t testing.TB, rows, cols int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromValues(rows, cols, vals)
	require.NoError(t, err)

	return m
}

func mustNew(t testing.TB, sizes []int, opts ...mlp.Option) *mlp.Network {
	t.Helper()
	n, err := mlp.New(sizes, opts...)
	require.NoError(t, err)

	return n
}

// xorBatch returns the four XOR samples as a 4×2 input and 4×1 target.
func xorBatch(t testing.TB) (x, y *matrix.Dense) {
	t.Helper()
	x = mustFromValues(t, 4, 2, 0, 0, 0, 1, 1, 0, 1, 1)
	y = mustFromValues(t, 4, 1, 0, 1, 1, 0)

	return x, y
}

// params flattens every weight then every bias, layer by layer.
func params(t testing.TB, n *mlp.Network) []float64 {
	t.Helper()
	var out []float64
	for l := 0; l < n.Layers(); l++ {
		w, err := n.Weights(l)
		require.NoError(t, err)
		out = append(out, w.Values()...)
	}
	for l := 0; l < n.Layers(); l++ {
		b, err := n.Biases(l)
		require.NoError(t, err)
		out = append(out, b.Values()...)
	}

	return out
}

// grads flattens the accumulated gradients in the same order as params.
func grads(t testing.TB, n *mlp.Network) []float64 {
	t.Helper()
	var out []float64
	for l := 0; l < n.Layers(); l++ {
		w, err := n.WeightGrad(l)
		require.NoError(t, err)
		out = append(out, w.Values()...)
	}
	for l := 0; l < n.Layers(); l++ {
		b, err := n.BiasGrad(l)
		require.NoError(t, err)
		out = append(out, b.Values()...)
	}

	return out
}

// setParams is the inverse of params.
func setParams(t testing.TB, n *mlp.Network, p []float64) {
	t.Helper()
	sizes := n.LayerSizes()
	off := 0
	for l := 0; l < n.Layers(); l++ {
		r, c := sizes[l+1], sizes[l]
		require.NoError(t, n.SetWeights(l, mustFromValues(t, r, c, p[off:off+r*c]...)))
		off += r * c
	}
	for l := 0; l < n.Layers(); l++ {
		r := sizes[l+1]
		require.NoError(t, n.SetBiases(l, mustFromValues(t, r, 1, p[off:off+r]...)))
		off += r
	}
}
