// Command amath computes descriptive statistics, correlations, discrete
// Fourier transforms and probability densities over numbers read from
// standard input.
package main

import (
	"os"

	"github.com/sartorproj/amath/cmd/amath/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
