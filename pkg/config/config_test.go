package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/fakes/pkg/compression"
	"github.com/ajitpratap0/fakes/pkg/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fakes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := NewDefault()
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.IsCompressionEnabled())
	assert.Equal(t, compression.Config{Algorithm: compression.None, Level: compression.Default}, cfg.CompressionSettings())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, NewDefault().Locale, cfg.Locale)
	assert.Equal(t, 1, cfg.Count)
	assert.Empty(t, cfg.Columns)
}

func TestLoadFile(t *testing.T) {
	t.Setenv("TEST_FAKES_SEED", "42")
	path := writeFile(t, `
locale: ja_JP
count: 10
seed: ${TEST_FAKES_SEED}
converter: json
header: true
columns:
  - Name.FullName(name#true)
  - Primitive.Int(age#18#65)
compression:
  algorithm: zstd
  level: best
logging:
  level: debug
  encoding: json
observability:
  metrics: true
history:
  path: /tmp/fakes-history.db
  keep: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ja_JP", cfg.Locale)
	assert.Equal(t, 10, cfg.Count)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "json", cfg.Converter)
	assert.True(t, cfg.Header)
	assert.Equal(t, "-", cfg.Output)
	assert.Equal(t, []string{"Name.FullName(name#true)", "Primitive.Int(age#18#65)"}, cfg.Columns)
	assert.True(t, cfg.IsCompressionEnabled())
	assert.Equal(t, compression.Best, cfg.CompressionSettings().Level)
	assert.Equal(t, "debug", cfg.LoggerConfig().Level)
	assert.True(t, cfg.Observability.Metrics)
	assert.False(t, cfg.Observability.Tracing)
	assert.True(t, cfg.IsHistoryEnabled())
	assert.Equal(t, 5, cfg.History.Keep)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "count: 3\nconverter: tsv\n")
	t.Setenv("FAKES_COUNT", "7")
	t.Setenv("FAKES_COMPRESSION_ALGORITHM", "gzip")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Count)
	assert.Equal(t, "tsv", cfg.Converter)
	assert.Equal(t, "gzip", cfg.Compression.Algorithm)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))

	_, err = Load(writeFile(t, "count: [\n"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))

	_, err = Load(writeFile(t, "count: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count must be at least 1")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty locale", func(c *Config) { c.Locale = " " }},
		{"zero count", func(c *Config) { c.Count = 0 }},
		{"bad converter", func(c *Config) { c.Converter = "xml" }},
		{"empty output", func(c *Config) { c.Output = "" }},
		{"bad algorithm", func(c *Config) { c.Compression.Algorithm = "brotli" }},
		{"bad level", func(c *Config) { c.Compression.Level = "11" }},
		{"negative concurrency", func(c *Config) { c.Compression.Concurrency = -1 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad encoding", func(c *Config) { c.Logging.Encoding = "xml" }},
		{"negative history keep", func(c *Config) { c.History.Keep = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeConfig), err.Error())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := NewDefault()
	cfg.Count = 25
	cfg.Columns = []string{"Address.City(city)"}
	cfg.Compression.Algorithm = "lz4"

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("TEST_FAKES_A", "alpha")
	assert.Equal(t, "x: alpha, y: , z: ${open", substituteEnvVars("x: ${TEST_FAKES_A}, y: ${TEST_FAKES_UNSET}, z: ${open"))
	assert.Equal(t, "no vars", substituteEnvVars("no vars"))
}
