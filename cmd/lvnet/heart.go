package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/lvnet/dataset"
	"github.com/katalvlaran/lvnet/mlp"
	"github.com/katalvlaran/lvnet/report"
)

func runHeart(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("heart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var f trainFlags
	f.register(fs, 10, mlp.DefaultLearningRate)
	data := fs.String("data", "", "heart-disease CSV with a header row (required)")
	split := fs.Float64("train", dataset.DefaultTrainFraction, "fraction of rows used for training")
	table := fs.Bool("table", true, "print the target/output table of the test rows")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *data == "" {
		return errors.New("heart: -data is required")
	}

	x, y, err := dataset.LoadHeartFile(*data)
	if err != nil {
		return err
	}
	if x, err = x.NormalizeColumns(); err != nil {
		return err
	}
	p, err := dataset.Split(x, y, *split)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Loaded %d records: %d train, %d test\n", x.Rows(), p.TrainX.Rows(), p.TestX.Rows())

	net, err := mlp.New([]int{dataset.HeartFeatures, f.hidden, 1}, f.options()...)
	if err != nil {
		return err
	}
	if err = train(stdout, net, p.TrainX, p.TrainY, f); err != nil {
		return err
	}

	res, err := report.Evaluate(net, p.TestX, p.TestY)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	if *table {
		if err = res.WriteTable(stdout); err != nil {
			return err
		}
		fmt.Fprintln(stdout)
	}
	_, err = fmt.Fprintln(stdout, res)

	return err
}
