// Package config loads and validates application configuration from YAML files
// with environment-variable overrides. It provides typed structs for every
// stage of the alignment pipeline (Indexer, Signature, Align) and for the
// ambient concerns (Logging, Metrics).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Indexer   IndexerConfig   `yaml:"indexer"`
	Signature SignatureConfig `yaml:"signature"`
	Align     AlignConfig     `yaml:"align"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// IndexerConfig controls how recurring units are collected from a corpus.
type IndexerConfig struct {
	MinFragmentLength int      `yaml:"minFragmentLength"`
	Stopwords         []string `yaml:"stopwords"`
}

// SignatureConfig selects the revisit filter used while walking levels 2
// and 3 of a node's neighbourhood ("raw" or "visited").
type SignatureConfig struct {
	RevisitFilter string `yaml:"revisitFilter"`
}

// AlignConfig controls how the two corpus pipelines are scheduled.
type AlignConfig struct {
	Parallel bool `yaml:"parallel"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls Prometheus metric collection. Runs are batch jobs,
// so metrics are written to a textfile rather than scraped.
type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile"`
}

// DefaultStopwords are the articles and short function words dropped from
// word-mode location lists.
var DefaultStopwords = []string{"the", "a", "an", "if", "for", "of", "to", "at"}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides. It returns a Config populated with defaults for any missing
// values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a Config with the defaults used when no file is given.
func Default() *Config {
	return &Config{
		Indexer: IndexerConfig{
			MinFragmentLength: 3,
			Stopwords:         append([]string(nil), DefaultStopwords...),
		},
		Signature: SignatureConfig{
			RevisitFilter: "raw",
		},
		Align: AlignConfig{
			Parallel: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// Validate rejects values no pipeline stage can run with. The revisit
// filter name is lower-cased in place.
func (c *Config) Validate() error {
	if c.Indexer.MinFragmentLength < 1 {
		return fmt.Errorf("indexer.minFragmentLength must be positive, got %d", c.Indexer.MinFragmentLength)
	}
	c.Signature.RevisitFilter = strings.ToLower(strings.TrimSpace(c.Signature.RevisitFilter))
	switch c.Signature.RevisitFilter {
	case "":
		c.Signature.RevisitFilter = "raw"
	case "raw", "visited":
	default:
		return fmt.Errorf("signature.revisitFilter must be raw or visited, got %q", c.Signature.RevisitFilter)
	}
	if c.Metrics.Enabled && c.Metrics.Textfile == "" {
		return fmt.Errorf("metrics.textfile is required when metrics are enabled")
	}
	return nil
}

// applyEnvOverrides reads ALIGN_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ALIGN_MIN_FRAGMENT_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Indexer.MinFragmentLength = n
		}
	}
	if v := os.Getenv("ALIGN_STOPWORDS"); v != "" {
		cfg.Indexer.Stopwords = strings.Split(v, ",")
	}
	if v := os.Getenv("ALIGN_REVISIT_FILTER"); v != "" {
		cfg.Signature.RevisitFilter = v
	}
	if v := os.Getenv("ALIGN_PARALLEL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Align.Parallel = b
		}
	}
	if v := os.Getenv("ALIGN_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ALIGN_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("ALIGN_METRICS_TEXTFILE"); v != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Textfile = v
	}
}
