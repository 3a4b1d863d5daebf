// SPDX-License-Identifier: MIT

// Package mlp: functional configuration for network construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Randomness policy:
//   - Initial weights and biases are drawn from U[0,1) in a fixed order: every
//     weight matrix (layer 0 first, row-major), then every bias vector.
//   - Without WithSeed/WithRand the package-global math/rand source is used,
//     so two networks built back to back differ.
//   - WithSeed(s) makes construction bit-reproducible; seed 0 maps to the
//     matrix package default seed, exactly like matrix.NewRand.
package mlp

import (
	"math/rand"

	"github.com/katalvlaran/lvnet/matrix"
)

// ---------- Defaults ----------

const (
	// MinLayers is the smallest accepted len(sizes): an input and an output layer.
	MinLayers = 2

	// DefaultLearningRate is the step size used by the bundled demos.
	DefaultLearningRate = 0.01

	// DefaultEpochs is the number of TrainBatch calls used by the bundled demos.
	DefaultEpochs = 1000
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly; the last
// source-related option wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	rng *rand.Rand // nil ⇒ global math/rand source
}

// WithSeed draws the initial parameters from a dedicated source seeded with
// seed. Two networks of the same sizes built with the same seed are equal.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = matrix.NewRand(seed) }
}

// WithRand draws the initial parameters from rng. The caller keeps ownership;
// the network reads from rng only inside New. A nil rng restores the global
// source.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.rng = rng }
}

// gatherOptions applies opts over the zero-value defaults.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
