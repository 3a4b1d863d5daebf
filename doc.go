// Package lvnet is a small, dependency-light neural-network toolkit: a dense
// float64 matrix engine and a sigmoid multi-layer perceptron trained by
// whole-batch gradient descent with backpropagation.
//
// Under the hood, everything is organized under four packages and a CLI:
//
//	matrix/     - row-major Dense container, arithmetic, slicing, normalization
//	mlp/        - Network: Feedforward, Backpropagate, TrainBatch, Run, Cost
//	dataset/    - OneHot, heart-disease CSV loader, contiguous train/test Split
//	report/     - thresholded binary evaluation (accuracy, TP rate, TN rate)
//	cmd/lvnet/  - `lvnet xor` and `lvnet heart -data file.csv` demos
//
// Quick start:
//
//	net, _ := mlp.New([]int{2, 5, 1}, mlp.WithSeed(1))
//	for i := 0; i < 1000; i++ {
//		_ = net.TrainBatch(x, y, 1.0) // x: n×2, y: n×1
//	}
//	out, _ := net.Run(sample) // sample: 2×1
//
// Every operation returns wrapped sentinel errors instead of panicking;
// match them with errors.Is.
package lvnet
