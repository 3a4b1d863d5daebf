// Package main provides the lvnet CLI: small demos that train the mlp
// package on XOR and on a heart-disease CSV.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

const usage = `lvnet trains a sigmoid multi-layer perceptron.

Commands:
  xor      Learn XOR with a [2,hidden,1] network
  heart    Classify heart disease from a CSV file (-data path)

Run "lvnet <command> -h" for the flags of a command.
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvnet: ")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// run dispatches one subcommand. Results go to stdout, flag diagnostics to
// stderr. A -h request prints the command's flags and is not an error.
func run(cmd string, args []string, stdout, stderr io.Writer) error {
	err := dispatch(cmd, args, stdout, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}

	return err
}

func dispatch(cmd string, args []string, stdout, stderr io.Writer) error {
	switch cmd {
	case "xor":
		return runXOR(args, stdout, stderr)
	case "heart":
		return runHeart(args, stdout, stderr)
	case "help", "-h", "--help":
		_, err := fmt.Fprint(stdout, usage)
		return err
	default:
		return fmt.Errorf("unknown command %q\n\n%s", cmd, usage)
	}
}
