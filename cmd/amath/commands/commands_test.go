package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/amath/sample"
	"github.com/sartorproj/amath/stats"
)

func run(t *testing.T, input string, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = Execute(args, strings.NewReader(input), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestScalarCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{"mean", "1\n2\n3\n4\n", []string{"mean"}, "2.500000\n"},
		{"median odd", "3\n1\n2\n", []string{"median"}, "2.000000\n"},
		{"median even", "4\n1\n3\n2\n", []string{"median"}, "2.500000\n"},
		{"median sorted", "9\n5\n1\n", []string{"median", "--sorted"}, "5.000000\n"},
		{"stdev population", "2\n4\n4\n4\n5\n5\n7\n9\n", []string{"stdev"}, "2.000000\n"},
		{"stdev sample", "2\n4\n4\n4\n5\n5\n7\n9\n", []string{"stdev", "--sample"}, "2.138090\n"},
		{"variance", "2\n4\n4\n4\n5\n5\n7\n9\n", []string{"variance"}, "4.000000\n"},
		{"min", "3\n-1\n2\n", []string{"min"}, "-1.000000\n"},
		{"max", "3\n-1\n2\n", []string{"max"}, "3.000000\n"},
		{"range", "3\n-1\n2\n", []string{"range"}, "4.000000\n"},
		{"non-numeric lines read as zero", "4\nabc\n2\n", []string{"mean"}, "2.000000\n"},
		{"precision flag", "1\n2\n", []string{"mean", "--precision", "2"}, "1.50\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, out, errOut := run(t, tt.input, tt.args...)
			require.Equal(t, 0, code, errOut)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEmptyInputFails(t *testing.T) {
	t.Parallel()

	for _, cmd := range []string{"mean", "median", "stdev", "min", "zscore", "normalize", "ndist", "describe"} {
		code, out, errOut := run(t, "", cmd)
		assert.Equal(t, 1, code, cmd)
		assert.Empty(t, out, cmd)
		assert.Contains(t, errOut, "empty input", cmd)
	}
}

func TestVectorCommands(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "0\n5\n10\n", "normalize")
	require.Equal(t, 0, code)
	assert.Equal(t, "0.000000\n0.500000\n1.000000\n", out)

	code, out, _ = run(t, "7\n7\n", "normalize")
	require.Equal(t, 0, code)
	assert.Equal(t, "7.000000\n7.000000\n", out)

	code, out, _ = run(t, "1\n2\n3\n", "zscore")
	require.Equal(t, 0, code)
	assert.Equal(t, "-1.000000\n0.000000\n1.000000\n", out)

	code, _, errOut := run(t, "5\n5\n5\n", "zscore")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "zero")
}

func TestNdist(t *testing.T) {
	t.Parallel()

	// Mean 0, population deviation 1.
	code, out, errOut := run(t, "-1\n1\n", "ndist", "--threads", "2")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "0.241971\n0.241971\n", out)
}

func TestPdist(t *testing.T) {
	t.Parallel()

	code, out, errOut := run(t, "0\n1\n2.9\n-1\n", "pdist", "--lambda", "1", "--threads", "3")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "0.367879\n0.367879\n0.183940\n0.000000\n", out)

	code, _, errOut = run(t, "0\n", "pdist")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "--lambda")

	code, _, errOut = run(t, "0\n", "pdist", "--lambda", "-2")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid poisson rate")
}

func TestPairCommands(t *testing.T) {
	t.Parallel()

	const csv = "x,y\n1,2\n2,4\n3,6\n"

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"pcorr"}, "1.000000\n"},
		{[]string{"kcorr"}, "1.000000\n"},
		{[]string{"cov"}, "1.333333\n"},
		{[]string{"cov", "--sample"}, "2.000000\n"},
		{[]string{"kcorr", "--x", "y", "--y", "x"}, "1.000000\n"},
	}

	for _, tt := range tests {
		code, out, errOut := run(t, csv, tt.args...)
		require.Equal(t, 0, code, errOut)
		assert.Equal(t, tt.want, out, tt.args)
	}
}

func TestPairCommandsFilterAndErrors(t *testing.T) {
	t.Parallel()

	const csv = "id;a;b\nu;1;3\nv;2;2\nu;2;2\nv;1;1\nu;3;1\n"

	code, out, errOut := run(t, csv, "kcorr", "--id-column", "id", "--id", "u", "--x", "a", "--y", "b", "-d", ";")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "-1.000000\n", out)

	code, _, errOut = run(t, csv, "pcorr", "--x", "missing", "-d", ";")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "column not found")

	code, _, errOut = run(t, csv, "pcorr", "-d", ";;")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "single character")

	code, _, errOut = run(t, "1,2,A\n3,4,B\n5,6,B\n", "pcorr", "--no-header", "--id-column", "id", "--id", "A")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "header row")

	code, out, errOut = run(t, "1,1\n2,3\n", "cov", "--no-header")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "0.500000\n", out)
}

func TestDFTRoundTrip(t *testing.T) {
	t.Parallel()

	input := "1 0\n2 0\n3 0\n4 0\n5 0\n"

	code, spectrum, errOut := run(t, input, "dft", "--threads", "3", "--precision", "12")
	require.Equal(t, 0, code, errOut)

	code, restored, errOut := run(t, spectrum, "idft", "--threads", "2", "--precision", "12")
	require.Equal(t, 0, code, errOut)

	got, err := sample.ReadComplex(strings.NewReader(restored))
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, c := range got {
		assert.InDelta(t, float64(i+1), real(c), 1e-9)
		assert.InDelta(t, 0, imag(c), 1e-9)
	}
}

func TestDFTMagnitude(t *testing.T) {
	t.Parallel()

	code, out, errOut := run(t, "1\n1\n1\n1\n", "dft", "--magnitude")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "4.000000\n0.000000\n0.000000\n0.000000\n", out)

	code, _, _ = run(t, "", "idft")
	assert.Equal(t, 1, code)
}

func TestDescribeTable(t *testing.T) {
	t.Parallel()

	var input strings.Builder
	for i := 1; i <= 1000; i++ {
		input.WriteString("1\n")
	}

	code, out, errOut := run(t, input.String(), "describe")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "1,000")
	assert.Contains(t, out, "sample variance")
	assert.Contains(t, out, "1.000000")
}

func TestDescribeJSON(t *testing.T) {
	t.Parallel()

	code, out, errOut := run(t, "2\n4\n6\n", "describe", "--format", "json")
	require.Equal(t, 0, code, errOut)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 3, got["count"], 0)
	assert.InDelta(t, 4, got["mean"], 1e-12)
	assert.InDelta(t, 2, got["sample_stdev"], 1e-12)

	code, out, errOut = run(t, "5\n", "describe", "-f", "json")
	require.Equal(t, 0, code, errOut)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Nil(t, got["sample_stdev"])
}

func TestDescribeYAML(t *testing.T) {
	t.Parallel()

	code, out, errOut := run(t, "1\n3\n", "describe", "--format", "yaml")
	require.Equal(t, 0, code, errOut)

	var got stats.Summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2, got.Count)
	assert.InDelta(t, 2, got.Median, 1e-12)
	assert.InDelta(t, 1, got.Variance, 1e-12)

	code, _, errOut = run(t, "1\n", "describe", "--format", "xml")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown output format")
}

func TestInputFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(path, []byte("10\n20\n"), 0o600))

	code, out, errOut := run(t, "", "mean", "--input", path)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "15.000000\n", out)

	code, _, errOut = run(t, "", "mean", "--input", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "open input")
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "amath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  precision: 3\ncompute:\n  threads: 2\n"), 0o600))

	code, out, errOut := run(t, "1\n2\n", "mean", "--config", path)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "1.500\n", out)

	// Flags win over the file.
	code, out, errOut = run(t, "1\n2\n", "mean", "--config", path, "-p", "1")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "1.5\n", out)

	code, _, errOut = run(t, "1\n", "mean", "--threads", "-1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "threads must not be negative")
}

func TestVerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	code, out, errOut := run(t, "1\n2\n", "ndist", "-v", "--log-format", "json", "--threads", "2")
	require.Equal(t, 0, code, errOut)
	assert.NotEmpty(t, out)
	assert.Contains(t, errOut, `"msg":"kernel finished"`)
	assert.Contains(t, errOut, `"operation":"ndist"`)
	assert.Contains(t, errOut, `"workers":2`)
}

func TestMetricsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "amath.prom")

	code, _, errOut := run(t, "1 0\n0 1\n", "dft", "--threads", "2", "--metrics-file", path)
	require.Equal(t, 0, code, errOut)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `amath_kernel_calls_total{operation="dft",status="ok"} 1`)
	assert.Contains(t, string(content), `amath_kernel_workers{operation="dft"} 2`)
	assert.Contains(t, string(content), `amath_kernel_input_size{operation="dft"} 2`)

	// Failed kernels are recorded too.
	code, _, _ = run(t, "", "mean", "--metrics-file", path)
	require.Equal(t, 1, code)

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `amath_kernel_calls_total{operation="mean",status="error"} 1`)
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()

	code, _, errOut := run(t, "", "frobnicate")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown command")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	code, out, _ := run(t, "", "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "amath "+Version+"\n", out)
}
