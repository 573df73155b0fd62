package commands

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/sartorproj/amath/sample"
	"github.com/sartorproj/amath/stats"
)

type pairKernel func(x, y []float64) (float64, error)

// pairFlags selects the two columns a pair command reads.
type pairFlags struct {
	x, y      string
	idColumn  string
	id        string
	delimiter string
	noHeader  bool
	skipRows  int
}

func (f *pairFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.x, "x", "", "x column name (default: first column)")
	flags.StringVar(&f.y, "y", "", "y column name (default: second column)")
	flags.StringVar(&f.idColumn, "id-column", "", "column holding row IDs")
	flags.StringVar(&f.id, "id", "", "only use rows whose ID column equals this value")
	flags.StringVarP(&f.delimiter, "delimiter", "d", ",", "field delimiter")
	flags.BoolVar(&f.noHeader, "no-header", false, "input has no header row")
	flags.IntVar(&f.skipRows, "skip-rows", 0, "rows to skip before the header")
}

func (f *pairFlags) options() (*sample.CSVOptions, error) {
	delim, size := utf8.DecodeRuneInString(f.delimiter)
	if size == 0 || size != len(f.delimiter) {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", f.delimiter)
	}

	opts := sample.DefaultCSVOptions()
	opts.XColumn = f.x
	opts.YColumn = f.y
	opts.IDColumn = f.idColumn
	opts.IDFilter = f.id
	opts.Delimiter = delim
	opts.HasHeader = !f.noHeader
	opts.SkipRows = f.skipRows

	return opts, nil
}

func (a *app) pairCommands() []*cobra.Command {
	var sampleMode bool
	cov := a.pairCommand("cov", "Covariance of two columns (population by default)", func(x, y []float64) (float64, error) {
		return stats.Covariance(x, y, !sampleMode)
	})
	cov.Flags().BoolVar(&sampleMode, "sample", false, "use the sample estimator (divide by n-1)")

	return []*cobra.Command{
		a.pairCommand("kcorr", "Kendall rank correlation (tau-a) of two columns", stats.Kendall),
		a.pairCommand("pcorr", "Pearson correlation of two columns", stats.Pearson),
		cov,
	}
}

func (a *app) pairCommand(name, short string, kernel pairKernel) *cobra.Command {
	var pf pairFlags

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			pairs, err := a.readPairs(&pf)
			if err != nil {
				return err
			}
			a.logger.Debug("pairs loaded", "x", pairs.XName, "y", pairs.YName, "n", pairs.Len())

			var result float64
			err = a.observe(name, pairs.Len(), 0, func() error {
				var kerr error
				result, kerr = kernel(pairs.X, pairs.Y)
				return kerr
			})
			if err != nil {
				return err
			}

			return a.printScalar(result)
		},
	}
	pf.register(cmd)

	return cmd
}

func (a *app) readPairs(pf *pairFlags) (*sample.Pairs, error) {
	opts, err := pf.options()
	if err != nil {
		return nil, err
	}

	r, closeFn, err := a.openInput()
	if err != nil {
		return nil, err
	}
	defer closeFn()

	return sample.LoadPairs(r, opts)
}
