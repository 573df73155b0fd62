package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "amath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
compute:
  threads: 3
output:
  precision: 2
logging:
  level: debug
  format: json
metrics:
  file: /tmp/amath.prom
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Compute.Threads)
	assert.Equal(t, 3, cfg.Workers())
	assert.Equal(t, 2, cfg.Output.Precision)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/amath.prom", cfg.Metrics.File)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "compute:\n  threads: 3\n")
	t.Setenv("AMATH_COMPUTE_THREADS", "7")
	t.Setenv("AMATH_OUTPUT_PRECISION", "9")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Compute.Threads)
	assert.Equal(t, 9, cfg.Output.Precision)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     error
	}{
		{name: "negative_threads", content: "compute:\n  threads: -1\n", err: ErrInvalidThreads},
		{name: "precision_too_high", content: "output:\n  precision: 40\n", err: ErrInvalidPrecision},
		{name: "bad_level", content: "logging:\n  level: loud\n", err: ErrInvalidLogLevel},
		{name: "bad_format", content: "logging:\n  format: xml\n", err: ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, tt.err)
		})
	}
}
