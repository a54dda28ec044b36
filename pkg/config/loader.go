package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/fakes/pkg/errors"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "FAKES"

// Load resolves a Config from the defaults, the YAML file at filePath (if
// not empty) and the environment. The result is validated.
func Load(filePath string) (*Config, error) {
	v := NewViper()

	if filePath != "" {
		data, err := os.ReadFile(filePath) //nolint:gosec // G304: path comes from the --config flag
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to read config file").
				WithDetail("path", filePath)
		}
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewReader([]byte(substituteEnvVars(string(data))))); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse YAML").
				WithDetail("path", filePath)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewViper returns a viper instance holding the defaults and bound to the
// FAKES_* environment.
func NewViper() *viper.Viper {
	v := viper.New()
	d := NewDefault()
	v.SetDefault("locale", d.Locale)
	v.SetDefault("count", d.Count)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("converter", d.Converter)
	v.SetDefault("header", d.Header)
	v.SetDefault("output", d.Output)
	v.SetDefault("columns", []string{})
	v.SetDefault("compression.algorithm", d.Compression.Algorithm)
	v.SetDefault("compression.level", d.Compression.Level)
	v.SetDefault("compression.concurrency", d.Compression.Concurrency)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.development", d.Logging.Development)
	v.SetDefault("logging.encoding", d.Logging.Encoding)
	v.SetDefault("observability.tracing", d.Observability.Tracing)
	v.SetDefault("observability.metrics", d.Observability.Metrics)
	v.SetDefault("history.path", d.History.Path)
	v.SetDefault("history.keep", d.History.Keep)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Save saves a configuration to a YAML file
func Save(filePath string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to marshal YAML")
	}

	if err := os.WriteFile(filePath, data, 0o644); err != nil { //nolint:gosec
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to write config file").
			WithDetail("path", filePath)
	}

	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	var b strings.Builder
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		b.WriteString(content[:start])
		b.WriteString(os.Getenv(content[start+2 : end]))
		content = content[end+1:]
	}
	b.WriteString(content)
	return b.String()
}
