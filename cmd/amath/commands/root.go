// Package commands implements the amath command tree.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sartorproj/amath/config"
	"github.com/sartorproj/amath/sample"
	"github.com/sartorproj/amath/telemetry"
)

// Version is set at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

const rootLong = `amath reads numbers from standard input (or --input), one per line,
and prints the result of the selected computation.

Lines that are not numbers are read as 0. Vector results are printed one
value per line. Pair commands (kcorr, pcorr, cov) read two CSV columns;
dft and idft read one complex value per line ("re im", "re,im" or "(re+imi)").`

// app carries the state shared by every subcommand of one invocation.
type app struct {
	viper   *viper.Viper
	cfg     *config.Config
	logger  *slog.Logger
	metrics *telemetry.Metrics

	configPath string
	inputPath  string
	verbose    bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Execute runs amath with args and returns the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		viper:   viper.New(),
		metrics: telemetry.NewMetrics(),
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
	}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()

	if a.cfg != nil && a.cfg.Metrics.File != "" {
		if writeErr := a.metrics.WriteTextfile(a.cfg.Metrics.File); writeErr != nil {
			err = errors.Join(err, writeErr)
		}
	}

	if err != nil {
		color.New(color.FgRed).Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "amath",
		Short:             "Descriptive statistics, correlations, DFT and densities from the command line",
		Long:              rootLong,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default ./amath.yaml)")
	flags.StringVarP(&a.inputPath, "input", "i", "", "read input from file instead of stdin")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	flags.IntP("threads", "t", 0, "worker threads for dft, idft, ndist and pdist (0 = all CPUs)")
	flags.IntP("precision", "p", 6, "decimal places in printed results")
	flags.String("log-format", "text", "log format: text or json")
	flags.String("metrics-file", "", "write Prometheus metrics of this run to file")

	bindings := map[string]string{
		"compute.threads":  "threads",
		"output.precision": "precision",
		"logging.format":   "log-format",
		"metrics.file":     "metrics-file",
	}
	for key, name := range bindings {
		// Lookup cannot fail for flags registered above.
		_ = a.viper.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(a.scalarCommands()...)
	root.AddCommand(a.vectorCommands()...)
	root.AddCommand(a.pairCommands()...)
	root.AddCommand(a.transformCommands()...)
	root.AddCommand(a.describeCommand(), a.versionCommand())

	return root
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadWith(a.viper, a.configPath)
	if err != nil {
		return err
	}

	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	a.cfg = cfg
	a.logger = telemetry.NewLogger(a.stderr, cfg.Logging.Level, cfg.Logging.Format)
	a.logger.Debug("configuration loaded",
		"threads", cfg.Workers(),
		"precision", cfg.Output.Precision,
		"config_file", a.viper.ConfigFileUsed(),
	)

	return nil
}

// observe runs fn as the kernel call for operation, timing it for the logs
// and the metrics registry.
func (a *app) observe(operation string, size, workers int, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	a.metrics.Observe(operation, size, workers, elapsed, err)

	attrs := []any{"operation", operation, "n", size, "elapsed", elapsed}
	if workers > 0 {
		attrs = append(attrs, "workers", workers)
	}
	if err != nil {
		a.logger.Debug("kernel failed", append(attrs, "error", err)...)
		return fmt.Errorf("%s: %w", operation, err)
	}
	a.logger.Debug("kernel finished", attrs...)

	return nil
}

// readFloats reads the one-value-per-line input. Empty input is left for
// the kernels to reject.
func (a *app) readFloats() ([]float64, error) {
	r, closeFn, err := a.openInput()
	if err != nil {
		return nil, err
	}
	defer closeFn()

	return sample.ReadFloats(r)
}

func (a *app) openInput() (io.Reader, func() error, error) {
	return sample.Open(a.inputPath, a.stdin)
}

func (a *app) printScalar(v float64) error {
	return sample.WriteFloat(a.stdout, v, a.cfg.Output.Precision)
}

func (a *app) printVector(values []float64) error {
	return sample.WriteFloats(a.stdout, values, a.cfg.Output.Precision)
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// Skip config loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "amath %s\n", Version)
		},
	}
}
