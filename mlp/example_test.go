package mlp_test

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/mlp"
)

// ExampleNetwork_Run wires hand-picked weights that solve XOR and
// classifies the four corners of the unit square.
func ExampleNetwork_Run() {
	net, _ := mlp.New([]int{2, 2, 1}, mlp.WithSeed(1))
	w0, _ := matrix.NewFromValues(2, 2, []float64{20, 20, 20, 20})
	b0, _ := matrix.NewFromValues(2, 1, []float64{-10, -30})
	w1, _ := matrix.NewFromValues(1, 2, []float64{20, -20})
	b1, _ := matrix.NewFromValues(1, 1, []float64{-10})
	_ = net.SetWeights(0, w0)
	_ = net.SetBiases(0, b0)
	_ = net.SetWeights(1, w1)
	_ = net.SetBiases(1, b1)

	for _, in := range [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		x, _ := matrix.NewFromValues(2, 1, in)
		out, err := net.Run(x)
		if err != nil {
			fmt.Println(err)
			return
		}
		v, _ := out.At(0, 0)
		fmt.Printf("%v xor %v = %.0f\n", in[0], in[1], v)
	}
	// Output:
	// 0 xor 0 = 0
	// 0 xor 1 = 1
	// 1 xor 0 = 1
	// 1 xor 1 = 0
}

// ExampleNetwork_TrainBatch shows the error reported for a non-positive
// learning rate.
func ExampleNetwork_TrainBatch() {
	net, _ := mlp.New([]int{2, 3, 1}, mlp.WithSeed(42))
	x, _ := matrix.NewFromValues(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})
	y, _ := matrix.NewFromValues(4, 1, []float64{0, 1, 1, 0})

	fmt.Println(net.TrainBatch(x, y, 0))
	fmt.Println(net.TrainBatch(x, y, 1) == nil)
	// Output:
	// mlp.TrainBatch: lr=0: mlp: learning rate must be finite and > 0
	// true
}
