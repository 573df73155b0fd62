package commands

import (
	"github.com/spf13/cobra"

	"github.com/sartorproj/amath/stats"
)

type scalarKernel func(values []float64) (float64, error)

func (a *app) scalarCommands() []*cobra.Command {
	cmds := []*cobra.Command{
		a.scalarCommand("mean", "Arithmetic mean", stats.Mean),
		a.scalarCommand("variance", "Population variance", stats.Variance),
		a.scalarCommand("min", "Smallest value", stats.Min),
		a.scalarCommand("max", "Largest value", stats.Max),
		a.scalarCommand("range", "Largest minus smallest value", stats.Range),
	}

	var sorted bool
	median := a.scalarCommand("median", "Median (sorts descending)", func(values []float64) (float64, error) {
		return stats.Median(values, sorted)
	})
	median.Flags().BoolVar(&sorted, "sorted", false, "input is already sorted in descending order")

	var sampleMode bool
	stdev := a.scalarCommand("stdev", "Standard deviation (population by default)", func(values []float64) (float64, error) {
		return stats.StdDev(values, !sampleMode)
	})
	stdev.Flags().BoolVar(&sampleMode, "sample", false, "use the sample estimator (divide by n-1)")

	return append(cmds, median, stdev)
}

func (a *app) scalarCommand(name, short string, kernel scalarKernel) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			values, err := a.readFloats()
			if err != nil {
				return err
			}

			var result float64
			err = a.observe(name, len(values), 0, func() error {
				var kerr error
				result, kerr = kernel(values)
				return kerr
			})
			if err != nil {
				return err
			}

			return a.printScalar(result)
		},
	}
}
