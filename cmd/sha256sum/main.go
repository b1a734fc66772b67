// sha256sum hashes stdin or each named file and prints one line of
// `<hex digest>  <name>` per input. The argument "-", or no arguments at
// all, means stdin.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/zeebo/sha256"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "sha256sum: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flagSet := pflag.NewFlagSet("sha256sum", pflag.ContinueOnError)
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	names := flagSet.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}

	for _, name := range names {
		sum, err := sumFile(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s  %s\n", sum, name)
	}
	return nil
}

func sumFile(name string) (string, error) {
	in := os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return "", err
		}
		defer f.Close()
		in = f
	}

	h := sha256.New()
	if _, err := io.Copy(h, in); err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return h.SumHex(), nil
}
