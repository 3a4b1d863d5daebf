// SPDX-License-Identifier: MIT

// Package mlp - Network state, construction and per-layer accessors.
//
// Layout (L = len(sizes)-1 parameterized layers, ℓ ∈ [0, L)):
//   - w[ℓ]      sizes[ℓ+1]×sizes[ℓ]  weights
//   - b[ℓ]      sizes[ℓ+1]×1         biases
//   - z[ℓ]      sizes[ℓ+1]×1         pre-activation of the last forward pass
//   - a[ℓ]      sizes[ℓ+1]×1         activation σ(z[ℓ]) of the last forward pass
//   - gradW[ℓ]  same shape as w[ℓ]   accumulated ∂C/∂W since the last ZeroGrad
//   - gradB[ℓ]  same shape as b[ℓ]   accumulated ∂C/∂b since the last ZeroGrad
//   - input     sizes[0]×1           copy of the last fed input (a_prev of layer 0)
//
// Policy:
//   - Scratch (z, a, input) is written by Feedforward before anything reads it.
//   - Gradients accumulate across Backpropagate calls and are reset by ZeroGrad;
//     TrainBatch calls ZeroGrad first, so batches never leak into each other.
//   - A Network is not safe for concurrent use: every forward pass rewrites the
//     scratch buffers.

package mlp

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvnet/matrix"
)

// Network is a fully connected feed-forward perceptron with sigmoid
// activation on every layer. Construct it with New.
type Network struct {
	sizes []int

	w, b         []*matrix.Dense
	z, a         []*matrix.Dense
	gradW, gradB []*matrix.Dense

	input *matrix.Dense // nil until the first Feedforward
}

// New builds a network with len(sizes)-1 layers, where sizes[0] is the input
// width and sizes[len-1] the output width.
//
// Implementation:
//   - Stage 1: validate len(sizes) ≥ MinLayers and every size > 0.
//   - Stage 2: draw every weight matrix from U[0,1), layer 0 first.
//   - Stage 3: draw every bias vector from U[0,1), then allocate zeroed
//     scratch and gradient buffers of the matching shapes.
//
// Errors:
//   - ErrConfiguration (too few layers or a non-positive size).
//
// Complexity:
//   - Time O(Σ sizes[ℓ]·sizes[ℓ+1]), Space same.
func New(sizes []int, opts ...Option) (*Network, error) {
	if len(sizes) < MinLayers {
		return nil, networkErrorf(opNew, fmt.Errorf("%d layer sizes, need at least %d: %w", len(sizes), MinLayers, ErrConfiguration))
	}
	for i, s := range sizes {
		if s <= 0 {
			return nil, networkErrorf(opNew, fmt.Errorf("sizes[%d]=%d: %w", i, s, ErrConfiguration))
		}
	}
	o := gatherOptions(opts...)

	layers := len(sizes) - 1
	n := &Network{
		sizes: slices.Clone(sizes),
		w:     make([]*matrix.Dense, layers),
		b:     make([]*matrix.Dense, layers),
		z:     make([]*matrix.Dense, layers),
		a:     make([]*matrix.Dense, layers),
		gradW: make([]*matrix.Dense, layers),
		gradB: make([]*matrix.Dense, layers),
	}

	var err error
	var l int
	for l = 0; l < layers; l++ {
		if n.w[l], err = matrix.NewRandomUniform(sizes[l+1], sizes[l], o.rng); err != nil {
			return nil, networkErrorf(opNew, err)
		}
	}
	for l = 0; l < layers; l++ {
		out := sizes[l+1]
		if n.b[l], err = matrix.NewRandomUniform(out, 1, o.rng); err != nil {
			return nil, networkErrorf(opNew, err)
		}
		// Shapes are positive here, so NewZeros cannot fail.
		n.z[l], _ = matrix.NewZeros(out, 1)
		n.a[l], _ = matrix.NewZeros(out, 1)
		n.gradB[l], _ = matrix.NewZeros(out, 1)
		n.gradW[l], _ = matrix.NewZeros(out, sizes[l])
	}

	return n, nil
}

// LayerSizes returns a copy of the widths the network was built with.
func (n *Network) LayerSizes() []int { return slices.Clone(n.sizes) }

// Layers returns the number of parameterized layers, len(LayerSizes())-1.
func (n *Network) Layers() int { return len(n.w) }

// InputSize returns sizes[0].
func (n *Network) InputSize() int { return n.sizes[0] }

// OutputSize returns the width of the last layer.
func (n *Network) OutputSize() int { return n.sizes[len(n.sizes)-1] }

// checkLayer validates a layer index against [0, Layers()).
func (n *Network) checkLayer(l int) error {
	if l < 0 || l >= len(n.w) {
		return networkErrorf(opLayer, fmt.Errorf("%d not in [0,%d): %w", l, len(n.w), ErrLayerOutOfRange))
	}

	return nil
}

// layerCopy returns a copy of bufs[l] after validating l.
func (n *Network) layerCopy(bufs []*matrix.Dense, l int) (*matrix.Dense, error) {
	if err := n.checkLayer(l); err != nil {
		return nil, err
	}

	return bufs[l].Copy(), nil
}

// Weights returns a copy of the weight matrix of layer l.
func (n *Network) Weights(l int) (*matrix.Dense, error) { return n.layerCopy(n.w, l) }

// Biases returns a copy of the bias vector of layer l.
func (n *Network) Biases(l int) (*matrix.Dense, error) { return n.layerCopy(n.b, l) }

// WeightGrad returns a copy of the accumulated weight gradient of layer l.
func (n *Network) WeightGrad(l int) (*matrix.Dense, error) { return n.layerCopy(n.gradW, l) }

// BiasGrad returns a copy of the accumulated bias gradient of layer l.
func (n *Network) BiasGrad(l int) (*matrix.Dense, error) { return n.layerCopy(n.gradB, l) }

// Activation returns a copy of a[l] from the last forward pass.
func (n *Network) Activation(l int) (*matrix.Dense, error) { return n.layerCopy(n.a, l) }

// PreActivation returns a copy of z[l] from the last forward pass.
func (n *Network) PreActivation(l int) (*matrix.Dense, error) { return n.layerCopy(n.z, l) }

// SetWeights replaces the weights of layer l with a copy of w.
//
// Errors:
//   - ErrLayerOutOfRange, ErrNilMatrix, ErrDimensionMismatch (shape differs).
func (n *Network) SetWeights(l int, w matrix.Matrix) error {
	return n.setLayer(n.w, l, w)
}

// SetBiases replaces the biases of layer l with a copy of b.
//
// Errors:
//   - ErrLayerOutOfRange, ErrNilMatrix, ErrDimensionMismatch (shape differs).
func (n *Network) SetBiases(l int, b matrix.Matrix) error {
	return n.setLayer(n.b, l, b)
}

func (n *Network) setLayer(bufs []*matrix.Dense, l int, m matrix.Matrix) error {
	if err := n.checkLayer(l); err != nil {
		return err
	}
	if err := matrix.ValidateBinarySameShape(bufs[l], m); err != nil {
		return networkErrorf(opLayer, err)
	}
	d, err := matrix.DenseCopyOf(m)
	if err != nil {
		return networkErrorf(opLayer, err)
	}
	bufs[l] = d

	return nil
}

// ZeroGrad resets every accumulated gradient to zero in place.
// Complexity: O(number of parameters), no allocation.
func (n *Network) ZeroGrad() {
	for l := range n.gradW {
		n.gradW[l].Clear()
		n.gradB[l].Clear()
	}
}

// Output returns a copy of the last layer's activation. Before the first
// Feedforward it is the zero vector.
func (n *Network) Output() *matrix.Dense {
	return n.a[len(n.a)-1].Copy()
}

// String summarizes the topology, e.g. "mlp.Network[2 5 1]".
func (n *Network) String() string {
	return fmt.Sprintf("mlp.Network%v", n.sizes)
}
