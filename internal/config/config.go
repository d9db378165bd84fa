// Package config assembles run settings from defaults, an optional YAML
// file and WORDFREQ_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"wordfreq/internal/analysis"
	"wordfreq/internal/export"
	"wordfreq/internal/frequency"
	"wordfreq/internal/loader"
	"wordfreq/internal/pipeline"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "WORDFREQ_"

// Config holds every setting of a run.
type Config struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Append      bool   `yaml:"append"`
	Encoding    string `yaml:"encoding"`
	Locale      string `yaml:"locale"`
	Comparer    string `yaml:"comparer"`
	Quoting     string `yaml:"quoting"`
	ColumnOrder string `yaml:"column_order"`
	Top         int    `yaml:"top"`
	Print       bool   `yaml:"print"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Encoding:    loader.DefaultEncoding,
		Locale:      "invariant",
		Comparer:    "exact",
		Quoting:     export.QuoteMinimal.String(),
		ColumnOrder: export.Alphabetical.String(),
		LogLevel:    "info",
	}
}

// Load returns Default overlaid with the YAML file at path (if non-empty)
// and then with the environment read through getenv.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if getenv != nil {
		if err := cfg.ApplyEnv(getenv); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides fields for which getenv returns a non-empty value.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	str := func(name string, dst *string) {
		if v := getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
	str("INPUT", &c.Input)
	str("OUTPUT", &c.Output)
	str("ENCODING", &c.Encoding)
	str("LOCALE", &c.Locale)
	str("COMPARER", &c.Comparer)
	str("QUOTING", &c.Quoting)
	str("COLUMN_ORDER", &c.ColumnOrder)
	str("LOG_LEVEL", &c.LogLevel)

	if v := getenv(EnvPrefix + "APPEND"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sAPPEND: %w", EnvPrefix, err)
		}
		c.Append = b
	}
	if v := getenv(EnvPrefix + "TOP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sTOP: %w", EnvPrefix, err)
		}
		c.Top = n
	}
	return nil
}

// Validate checks every field that has a fixed set of values.
func (c Config) Validate() error {
	var errs []error
	if _, err := loader.LookupEncoding(c.Encoding); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Normalizer(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.FrequencyComparer(); err != nil {
		errs = append(errs, err)
	}
	if _, err := export.ParseQuoting(c.Quoting); err != nil {
		errs = append(errs, err)
	}
	if _, err := export.ParseColumnOrder(c.ColumnOrder); err != nil {
		errs = append(errs, err)
	}
	if c.Top < 0 {
		errs = append(errs, fmt.Errorf("top must be >= 0, got %d", c.Top))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level: %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

// Normalizer resolves Locale to a Normalizer.
func (c Config) Normalizer() (analysis.Normalizer, error) {
	return analysis.NewRegistry().Get(c.Locale)
}

// FrequencyComparer resolves Comparer: "exact" (or empty) compares bytes,
// anything else is a language tag selecting a collator.
func (c Config) FrequencyComparer() (frequency.Comparer, error) {
	if c.Comparer == "" || c.Comparer == "exact" {
		return frequency.ExactComparer{}, nil
	}
	tag, err := language.Parse(c.Comparer)
	if err != nil {
		return nil, fmt.Errorf("unknown comparer: %q", c.Comparer)
	}
	return frequency.NewCollatorComparer(tag), nil
}

// PipelineOptions converts the configuration into session options.
func (c Config) PipelineOptions() (pipeline.Options, error) {
	norm, err := c.Normalizer()
	if err != nil {
		return pipeline.Options{}, err
	}
	cmp, err := c.FrequencyComparer()
	if err != nil {
		return pipeline.Options{}, err
	}
	quoting, err := export.ParseQuoting(c.Quoting)
	if err != nil {
		return pipeline.Options{}, err
	}
	order, err := export.ParseColumnOrder(c.ColumnOrder)
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Encoding:   c.Encoding,
		Normalizer: norm,
		Comparer:   cmp,
		Top:        c.Top,
		Export: export.Options{
			Append:  c.Append,
			Quoting: quoting,
			Order:   order,
		},
	}, nil
}
