package mlp_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/mlp"
)

func TestNew_RejectsBadConfiguration(t *testing.T) {
	for _, sizes := range [][]int{nil, {}, {3}, {2, 0, 1}, {-1, 1}, {2, 3, -4}} {
		t.Run(fmt.Sprint(sizes), func(t *testing.T) {
			n, err := mlp.New(sizes)
			assert.ErrorIs(t, err, mlp.ErrConfiguration)
			assert.Nil(t, n)
		})
	}
}

func TestNew_Shapes(t *testing.T) {
	sizes := []int{3, 4, 2}
	n := mustNew(t, sizes, mlp.WithSeed(1))
	assert.Equal(t, 2, n.Layers())
	assert.Equal(t, 3, n.InputSize())
	assert.Equal(t, 2, n.OutputSize())
	assert.Equal(t, "mlp.Network[3 4 2]", n.String())

	got := n.LayerSizes()
	assert.Equal(t, sizes, got)
	got[0] = 99
	assert.Equal(t, 3, n.InputSize(), "LayerSizes must return a copy")

	for l := 0; l < n.Layers(); l++ {
		w, err := n.Weights(l)
		require.NoError(t, err)
		r, c := w.Shape()
		assert.Equal(t, sizes[l+1], r)
		assert.Equal(t, sizes[l], c)
		for _, v := range w.Values() {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}

		b, err := n.Biases(l)
		require.NoError(t, err)
		r, c = b.Shape()
		assert.Equal(t, sizes[l+1], r)
		assert.Equal(t, 1, c)

		gw, err := n.WeightGrad(l)
		require.NoError(t, err)
		assert.Equal(t, make([]float64, sizes[l+1]*sizes[l]), gw.Values(), "gradients start at zero")
		gb, err := n.BiasGrad(l)
		require.NoError(t, err)
		assert.Equal(t, make([]float64, sizes[l+1]), gb.Values())
	}

	assert.Equal(t, []float64{0, 0}, n.Output().Values(), "output is zero before any forward pass")
}

func TestNew_SeedReproducible(t *testing.T) {
	sizes := []int{2, 5, 1}
	a := mustNew(t, sizes, mlp.WithSeed(7))
	b := mustNew(t, sizes, mlp.WithSeed(7))
	c := mustNew(t, sizes, mlp.WithSeed(8))
	d := mustNew(t, sizes, mlp.WithRand(matrix.NewRand(7)))

	assert.Equal(t, params(t, a), params(t, b))
	assert.NotEqual(t, params(t, a), params(t, c))
	assert.Equal(t, params(t, a), params(t, d), "WithSeed(s) draws like WithRand(matrix.NewRand(s))")

	// weights are drawn before biases, layer 0 first
	first, err := matrix.NewRandomUniform(5, 2, matrix.NewRand(7))
	require.NoError(t, err)
	w0, err := a.Weights(0)
	require.NoError(t, err)
	assert.True(t, first.Equal(w0))
}

func TestSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, mlp.Sigmoid(0))
	assert.Equal(t, 0.25, mlp.SigmoidPrime(0))
	for _, x := range []float64{-30, -5, -1, -0.1, 0.1, 1, 5, 30} {
		s := mlp.Sigmoid(x)
		assert.Greater(t, s, 0.0)
		assert.Less(t, s, 1.0)
		assert.InDelta(t, 1.0, s+mlp.Sigmoid(-x), 1e-15, "σ(x)+σ(-x) == 1")
		assert.InDelta(t, s*(1-s), mlp.SigmoidPrime(x), 1e-15)
		assert.LessOrEqual(t, mlp.SigmoidPrime(x), 0.25)
	}
	assert.Equal(t, 1.0, mlp.Sigmoid(1000))
	assert.Equal(t, 0.0, mlp.Sigmoid(-1000))
	assert.Equal(t, 0.0, mlp.SigmoidPrime(-1000))
	assert.True(t, math.IsNaN(mlp.Sigmoid(math.NaN())))
}

func TestAccessors_LayerOutOfRange(t *testing.T) {
	n := mustNew(t, []int{2, 3, 1}, mlp.WithSeed(1))
	for _, l := range []int{-1, 2, 10} {
		for name, get := range map[string]func(int) (*matrix.Dense, error){
			"Weights":       n.Weights,
			"Biases":        n.Biases,
			"WeightGrad":    n.WeightGrad,
			"BiasGrad":      n.BiasGrad,
			"Activation":    n.Activation,
			"PreActivation": n.PreActivation,
		} {
			m, err := get(l)
			assert.ErrorIs(t, err, mlp.ErrLayerOutOfRange, "%s(%d)", name, l)
			assert.ErrorIs(t, err, matrix.ErrOutOfRange, "%s(%d)", name, l)
			assert.Nil(t, m)
		}
		assert.ErrorIs(t, n.SetWeights(l, mustFromValues(t, 3, 2, 1, 2, 3, 4, 5, 6)), mlp.ErrLayerOutOfRange)
		assert.ErrorIs(t, n.SetBiases(l, mustFromValues(t, 3, 1, 1, 2, 3)), mlp.ErrLayerOutOfRange)
	}
}

func TestSetWeights(t *testing.T) {
	n := mustNew(t, []int{2, 3, 1}, mlp.WithSeed(1))
	w := mustFromValues(t, 3, 2, 1, 2, 3, 4, 5, 6)
	require.NoError(t, n.SetWeights(0, hide{w}))

	got, err := n.Weights(0)
	require.NoError(t, err)
	assert.True(t, w.Equal(got))

	// the network keeps its own copy in both directions
	require.NoError(t, w.Set(0, 0, 100))
	require.NoError(t, got.Set(0, 1, 100))
	again, err := n.Weights(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, again.Values())

	assert.ErrorIs(t, n.SetWeights(0, mustFromValues(t, 2, 3, 1, 2, 3, 4, 5, 6)), mlp.ErrDimensionMismatch)
	assert.ErrorIs(t, n.SetBiases(1, mustFromValues(t, 2, 1, 1, 2)), mlp.ErrDimensionMismatch)
	assert.ErrorIs(t, n.SetWeights(0, nil), matrix.ErrNilMatrix)
}
