package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/amath/stats"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func (a *app) describeCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Summary statistics of the input",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			format = strings.ToLower(format)
			if format != formatTable && format != formatJSON && format != formatYAML {
				return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
			}

			values, err := a.readFloats()
			if err != nil {
				return err
			}

			var summary *stats.Summary
			err = a.observe("describe", len(values), 0, func() error {
				var kerr error
				summary, kerr = stats.Summarize(values)
				return kerr
			})
			if err != nil {
				return err
			}

			switch format {
			case formatJSON:
				return a.writeSummaryJSON(summary)
			case formatYAML:
				return a.writeSummaryYAML(summary)
			default:
				a.writeSummaryTable(summary)
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json or yaml")

	return cmd
}

func (a *app) writeSummaryTable(s *stats.Summary) {
	prec := a.cfg.Output.Precision
	num := func(v float64) string {
		if math.IsNaN(v) {
			return "-"
		}
		return strconv.FormatFloat(v, 'f', prec, 64)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(a.stdout)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Statistic", "Value"})
	tw.AppendRows([]table.Row{
		{"count", humanize.Comma(int64(s.Count))},
		{"mean", num(s.Mean)},
		{"median", num(s.Median)},
		{"min", num(s.Min)},
		{"max", num(s.Max)},
		{"range", num(s.Range)},
		{"stdev", num(s.StdDev)},
		{"sample stdev", num(s.SampleStdDev)},
		{"variance", num(s.Variance)},
		{"sample variance", num(s.SampleVariance)},
	})
	tw.Render()
}

// writeSummaryJSON writes NaN fields as null, which encoding/json cannot
// represent as numbers.
func (a *app) writeSummaryJSON(s *stats.Summary) error {
	num := func(v float64) any {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return v
	}

	out := map[string]any{
		"count":           s.Count,
		"mean":            num(s.Mean),
		"median":          num(s.Median),
		"min":             num(s.Min),
		"max":             num(s.Max),
		"range":           num(s.Range),
		"stdev":           num(s.StdDev),
		"sample_stdev":    num(s.SampleStdDev),
		"variance":        num(s.Variance),
		"sample_variance": num(s.SampleVariance),
	}

	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (a *app) writeSummaryYAML(s *stats.Summary) error {
	enc := yaml.NewEncoder(a.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
