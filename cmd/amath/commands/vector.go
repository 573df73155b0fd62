package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sartorproj/amath/distribution"
	"github.com/sartorproj/amath/sample"
	"github.com/sartorproj/amath/stats"
)

// ErrLambdaRequired is returned when pdist runs without --lambda.
var ErrLambdaRequired = errors.New("--lambda is required")

func (a *app) vectorCommands() []*cobra.Command {
	return []*cobra.Command{
		a.normalizeCommand(),
		a.zscoreCommand(),
		a.ndistCommand(),
		a.pdistCommand(),
	}
}

func (a *app) normalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize",
		Short: "Rescale values to [0, 1] (unchanged when all values are equal)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			values, err := a.readFloats()
			if err != nil {
				return err
			}

			err = a.observe("normalize", len(values), 0, func() error {
				if len(values) == 0 {
					return stats.ErrEmptyInput
				}
				if !stats.Normalize(values) {
					a.logger.Warn("zero range, values left unchanged")
				}
				return nil
			})
			if err != nil {
				return err
			}

			return a.printVector(values)
		},
	}
}

func (a *app) zscoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "zscore",
		Short: "Standard scores using the sample standard deviation",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			values, err := a.readFloats()
			if err != nil {
				return err
			}

			var scores []float64
			err = a.observe("zscore", len(values), 0, func() error {
				var kerr error
				scores, kerr = stats.ZScore(values)
				return kerr
			})
			if err != nil {
				return err
			}

			return a.printVector(scores)
		},
	}
}

func (a *app) ndistCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ndist",
		Short: "Normal density of each value under the fitted normal",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			values, err := a.readFloats()
			if err != nil {
				return err
			}

			workers := a.cfg.Workers()
			var densities []float64
			err = a.observe("ndist", len(values), workers, func() error {
				var kerr error
				densities, kerr = distribution.Normal(values, workers)
				return kerr
			})
			if err != nil {
				return err
			}

			return a.printVector(densities)
		},
	}
}

func (a *app) pdistCommand() *cobra.Command {
	var lambda float64

	cmd := &cobra.Command{
		Use:   "pdist",
		Short: "Poisson probability of each count for rate --lambda",
		Long: `pdist reads one count per line and prints P(X = k) for a Poisson
distribution with rate --lambda. Fractional counts are truncated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("lambda") {
				return ErrLambdaRequired
			}

			values, err := a.readFloats()
			if err != nil {
				return err
			}
			counts := sample.Counts(values)

			workers := a.cfg.Workers()
			var probs []float64
			err = a.observe("pdist", len(counts), workers, func() error {
				var kerr error
				probs, kerr = distribution.Poisson(counts, lambda, workers)
				return kerr
			})
			if err != nil {
				return err
			}

			return a.printVector(probs)
		},
	}

	cmd.Flags().Float64VarP(&lambda, "lambda", "l", 0, "Poisson rate")

	return cmd
}
