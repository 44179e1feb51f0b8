// Package config holds the converter settings. Values come from Default,
// then an optional YAML file, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/andybalholm/cascadia"
	"gopkg.in/yaml.v3"

	"github.com/greyhillman/IncrementalReadingConverter/core/normalize"
)

// Output formats.
const (
	FormatCard     = "card"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatPDF      = "pdf"
)

// Header styles.
const (
	HeadersPlain  = "plain"
	HeadersMarked = "marked"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatCard, FormatMarkdown, FormatJSON, FormatPDF}

// HeaderStyles lists the accepted header styles.
var HeaderStyles = []string{HeadersPlain, HeadersMarked}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the top-level converter configuration.
type Config struct {
	Format        string      `yaml:"format"`
	Selector      string      `yaml:"selector"`
	Headers       string      `yaml:"headers"`
	HTMLBreaks    bool        `yaml:"html_breaks"`
	FlattenImages bool        `yaml:"flatten_images"`
	OutputDir     string      `yaml:"output_dir"`
	Fetch         FetchConfig `yaml:"fetch"`
	Crawl         CrawlConfig `yaml:"crawl"`
	Rules         RulesConfig `yaml:"rules"`
}

// FetchConfig controls HTTP fetching.
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// CrawlConfig controls page discovery and batch conversion.
type CrawlConfig struct {
	MaxPages int `yaml:"max_pages"`
	Workers  int `yaml:"workers"`
}

// RulesConfig adds tags to the default normalization tables.
type RulesConfig struct {
	Drop        []string `yaml:"drop"`
	Transparent []string `yaml:"transparent"`
	Wrap        []string `yaml:"wrap"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:  FormatCard,
		Headers: HeadersPlain,
		Fetch: FetchConfig{
			Timeout: 30 * time.Second,
		},
		Crawl: CrawlConfig{
			MaxPages: 100,
			Workers:  4,
		},
	}
}

// LoadFile reads a YAML configuration file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("%w: format %q (want one of %v)", ErrInvalid, c.Format, Formats)
	}
	if !slices.Contains(HeaderStyles, c.Headers) {
		return fmt.Errorf("%w: headers %q (want one of %v)", ErrInvalid, c.Headers, HeaderStyles)
	}
	if c.Selector != "" {
		if _, err := cascadia.Compile(c.Selector); err != nil {
			return fmt.Errorf("%w: selector %q: %v", ErrInvalid, c.Selector, err)
		}
	}
	if c.Fetch.Timeout < 0 {
		return fmt.Errorf("%w: negative fetch timeout", ErrInvalid)
	}
	if c.Crawl.MaxPages < 1 {
		return fmt.Errorf("%w: max_pages must be at least 1", ErrInvalid)
	}
	if c.Crawl.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalid)
	}
	return nil
}

// NormalizeRules returns the default rules extended with the configured
// tags.
func (c *Config) NormalizeRules() normalize.Rules {
	return normalize.DefaultRules().Extend(c.Rules.Drop, c.Rules.Transparent, c.Rules.Wrap)
}
