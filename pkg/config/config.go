package config

import (
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/ajitpratap0/fakes/pkg/compression"
	"github.com/ajitpratap0/fakes/pkg/converter"
	"github.com/ajitpratap0/fakes/pkg/errors"
	"github.com/ajitpratap0/fakes/pkg/logger"
)

// Config is the configuration of one generation run.
type Config struct {
	// Locale is a registered locale id or alias
	Locale string `yaml:"locale" mapstructure:"locale"`
	// Count is the number of records, at least 1
	Count int `yaml:"count" mapstructure:"count"`
	// Seed of the random stream; 0 draws one
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
	// Converter is csv, tsv or json
	Converter string `yaml:"converter" mapstructure:"converter"`
	// Header selects the full form of the converter
	Header bool `yaml:"header" mapstructure:"header"`
	// Output is a file path, or "-" for stdout
	Output string `yaml:"output" mapstructure:"output"`
	// Columns are option expressions, one per column
	Columns []string `yaml:"columns" mapstructure:"columns"`

	Compression   CompressionConfig   `yaml:"compression" mapstructure:"compression"`
	Logging       LoggingConfig       `yaml:"logging" mapstructure:"logging"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
	History       HistoryConfig       `yaml:"history" mapstructure:"history"`
}

// CompressionConfig selects how the output stream is compressed.
type CompressionConfig struct {
	Algorithm   string `yaml:"algorithm" mapstructure:"algorithm"`
	Level       string `yaml:"level" mapstructure:"level"`
	Concurrency int    `yaml:"concurrency" mapstructure:"concurrency"`
}

// LoggingConfig mirrors logger.Config.
type LoggingConfig struct {
	Level       string `yaml:"level" mapstructure:"level"`
	Development bool   `yaml:"development" mapstructure:"development"`
	Encoding    string `yaml:"encoding" mapstructure:"encoding"`
}

// ObservabilityConfig switches the trace exporter and the metrics dump.
type ObservabilityConfig struct {
	Tracing bool `yaml:"tracing" mapstructure:"tracing"`
	Metrics bool `yaml:"metrics" mapstructure:"metrics"`
}

// HistoryConfig points at the run history database. An empty path
// disables recording.
type HistoryConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
	// Keep is the number of runs kept after each record; 0 keeps all
	Keep int `yaml:"keep" mapstructure:"keep"`
}

// NewDefault returns the configuration used when nothing is set.
func NewDefault() *Config {
	return &Config{
		Locale:    "jpn",
		Count:     1,
		Seed:      0,
		Converter: string(converter.CSV),
		Header:    false,
		Output:    "-",
		Compression: CompressionConfig{
			Algorithm: string(compression.None),
			Level:     compression.Default.String(),
		},
		Logging: LoggingConfig{
			Level:    "warn",
			Encoding: "console",
		},
		History: HistoryConfig{
			Keep: 100,
		},
	}
}

// Validate validates the configuration for correctness.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Locale) == "" {
		return errors.New(errors.ErrorTypeConfig, "locale is required")
	}
	if c.Count < 1 {
		return errors.Newf(errors.ErrorTypeConfig, "count must be at least 1, got %d", c.Count)
	}
	if _, err := converter.ParseFileType(c.Converter); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "invalid converter")
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New(errors.ErrorTypeConfig, "output is required; use - for stdout")
	}
	if _, err := compression.ParseAlgorithm(c.Compression.Algorithm); err != nil {
		return err
	}
	if _, err := compression.ParseLevel(c.Compression.Level); err != nil {
		return err
	}
	if c.Compression.Concurrency < 0 {
		return errors.New(errors.ErrorTypeConfig, "compression concurrency cannot be negative")
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "invalid log level")
	}
	switch c.Logging.Encoding {
	case "", "console", "json":
	default:
		return errors.Newf(errors.ErrorTypeConfig, "log encoding must be console or json, got %q", c.Logging.Encoding)
	}
	if c.History.Keep < 0 {
		return errors.New(errors.ErrorTypeConfig, "history keep cannot be negative")
	}
	return nil
}

// CompressionSettings resolves the compression section. Call Validate first.
func (c *Config) CompressionSettings() compression.Config {
	alg, _ := compression.ParseAlgorithm(c.Compression.Algorithm)
	level, _ := compression.ParseLevel(c.Compression.Level)
	return compression.Config{Algorithm: alg, Level: level, Concurrency: c.Compression.Concurrency}
}

// LoggerConfig returns the logger settings of c.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:       c.Logging.Level,
		Development: c.Logging.Development,
		Encoding:    c.Logging.Encoding,
	}
}

// IsHistoryEnabled returns true if runs are recorded
func (c *Config) IsHistoryEnabled() bool {
	return strings.TrimSpace(c.History.Path) != ""
}

// IsCompressionEnabled returns true if the output is compressed
func (c *Config) IsCompressionEnabled() bool {
	alg, err := compression.ParseAlgorithm(c.Compression.Algorithm)
	return err == nil && alg != compression.None
}
