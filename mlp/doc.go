// Package mlp implements a fully connected multi-layer perceptron with
// sigmoid activation, trained by whole-batch gradient descent with
// backpropagation on the squared-error cost ½‖a − y‖².
//
// A network is described by its layer widths: New([]int{2, 5, 1}) has two
// inputs, one hidden layer of five units and one output. Inputs and targets
// of single samples are column vectors (matrix.Dense of shape k×1); batches
// hold one sample per row.
//
// Typical use:
//
//	net, err := mlp.New([]int{2, 5, 1}, mlp.WithSeed(42))
//	for epoch := 0; epoch < 1000; epoch++ {
//		if err := net.TrainBatch(x, y, 1.0); err != nil { ... }
//	}
//	out, err := net.Run(sample)
//
// All operations report failures as wrapped sentinels (ErrConfiguration,
// ErrNoForwardPass, ErrLearningRate, ErrLayerOutOfRange, and the matrix
// sentinels); nothing panics on caller input. A Network must not be used
// from several goroutines at once.
package mlp
