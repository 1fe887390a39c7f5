// Package config holds the command line configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"range-remapper/internal/mapping"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the configuration of the range-remapper command. Every field can
// also be set by a flag, which wins over the file.
type Config struct {
	// LogLevel is a logrus level name, e.g. "info" or "debug".
	LogLevel string `toml:"log_level" yaml:"log_level"`
	// LogFormat is "text" or "json".
	LogFormat string `toml:"log_format" yaml:"log_format"`
	// Workers bounds concurrent interval mapping. Zero maps sequentially.
	Workers int `toml:"workers" yaml:"workers"`
	// Normalize merges overlapping intervals between stages.
	Normalize bool `toml:"normalize" yaml:"normalize"`
	// Reorder runs stages in category order instead of declared order.
	Reorder bool `toml:"reorder" yaml:"reorder"`
	// Format forces the definition format instead of using the file
	// extension.
	Format string `toml:"format" yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:  logrus.InfoLevel.String(),
		LogFormat: LogFormatText,
	}
}

// Load reads a configuration file over the defaults. TOML is used for .toml
// files, YAML for everything else.
func Load(path string) (*Config, error) {
	c := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.DecodeFile(path, c)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}

			return nil, fmt.Errorf("failed to load config %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}

		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		// An empty document keeps the defaults.
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return c, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}

	if c.Format != "" {
		if _, err := mapping.ParseFormat(c.Format); err != nil {
			return err
		}
	}

	return nil
}

// DefinitionFormat returns the forced definition format, if any.
func (c *Config) DefinitionFormat() (mapping.Format, bool) {
	if c.Format == "" {
		return 0, false
	}

	f, err := mapping.ParseFormat(c.Format)
	if err != nil {
		return 0, false
	}

	return f, true
}

// Logger builds a logger writing to w. The configuration must be valid.
func (c *Config) Logger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)

	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		l.SetLevel(lvl)
	}

	if c.LogFormat == LogFormatJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return l
}
