package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/mlp"
)

// trainFlags are shared by every subcommand.
type trainFlags struct {
	hidden   int
	lr       float64
	epochs   int
	logEvery int
	seed     int64
}

func (f *trainFlags) register(fs *flag.FlagSet, hidden int, lr float64) {
	fs.IntVar(&f.hidden, "hidden", hidden, "width of the hidden layer")
	fs.Float64Var(&f.lr, "lr", lr, "learning rate")
	fs.IntVar(&f.epochs, "epochs", mlp.DefaultEpochs, "number of whole-batch updates")
	fs.IntVar(&f.logEvery, "log-every", 100, "print progress every n epochs (0 disables)")
	fs.Int64Var(&f.seed, "seed", 0, "seed for the initial weights (0 = unseeded)")
}

// options turns the seed flag into network options.
func (f *trainFlags) options() []mlp.Option {
	if f.seed == 0 {
		return nil
	}

	return []mlp.Option{mlp.WithSeed(f.seed)}
}

// train runs f.epochs TrainBatch steps and reports the batch cost every
// f.logEvery epochs.
func train(w io.Writer, net *mlp.Network, x, y *matrix.Dense, f trainFlags) error {
	if f.epochs < 0 {
		return fmt.Errorf("-epochs must be >= 0, got %d", f.epochs)
	}
	fmt.Fprintf(w, "Training %s on %d samples...\n", net, x.Rows())
	for epoch := 0; epoch < f.epochs; epoch++ {
		if err := net.TrainBatch(x, y, f.lr); err != nil {
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if f.logEvery > 0 && epoch%f.logEvery == 0 {
			cost, err := net.Cost(x, y)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Epoch: %d cost=%.5f\n", epoch, cost)
		}
	}

	return nil
}
