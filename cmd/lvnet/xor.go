package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/mlp"
)

func runXOR(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("xor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var f trainFlags
	f.register(fs, 5, 1.0)
	if err := fs.Parse(args); err != nil {
		return err
	}

	x, err := matrix.NewFromValues(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})
	if err != nil {
		return err
	}
	y, err := matrix.NewFromValues(4, 1, []float64{0, 1, 1, 0})
	if err != nil {
		return err
	}

	net, err := mlp.New([]int{2, f.hidden, 1}, f.options()...)
	if err != nil {
		return err
	}
	if err = train(stdout, net, x, y, f); err != nil {
		return err
	}

	fmt.Fprintln(stdout)
	var row, col, out *matrix.Dense
	for i := 0; i < x.Rows(); i++ {
		if row, err = x.RowAt(i); err != nil {
			return err
		}
		if col, err = row.T(); err != nil {
			return err
		}
		if out, err = net.Run(col); err != nil {
			return err
		}
		a, _ := row.At(0, 0)
		b, _ := row.At(0, 1)
		v, _ := out.At(0, 0)
		fmt.Fprintf(stdout, "%.0f %.0f: %.5f\n", a, b, v)
	}

	return nil
}
