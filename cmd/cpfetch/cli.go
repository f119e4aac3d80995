package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/cpfetch"
	"github.com/fwojciec/cpfetch/yaml"
)

// CLI defines the command-line interface structure for Kong.
//
// Settings left unset fall back to the config file, then to the built-in
// defaults of each service.
type CLI struct {
	Format       string        `short:"f" help:"Output format: json or markdown (default json)"`
	Timeout      time.Duration `short:"t" help:"Page navigation timeout (default 20s)"`
	ReadyTimeout time.Duration `name:"ready-timeout" help:"How long to wait for the statement to render (default 10s)"`
	APIURL       string        `name:"api-url" help:"Codeforces API base URL"`
	UserAgent    string        `name:"user-agent" help:"User agent for page requests"`
	Browser      string        `help:"Path to the Chrome or Chromium binary"`
	Static       bool          `help:"Fetch the page over plain HTTP instead of a headless browser"`
	Copy         int           `short:"c" help:"Print the input of sample test N (1-based) instead of the problem"`
	Verbose      bool          `short:"v" help:"Log each step to stderr"`
	Config       string        `env:"CPFETCH_CONFIG" help:"YAML config file"`
	URL          string        `arg:"" required:"" help:"Problem URL, e.g. https://codeforces.com/problemset/problem/4/A"`
}

// Resolve merges the config file (if any) under the flags and validates
// the result. Explicit flags win.
func (c *CLI) Resolve() (*yaml.Config, error) {
	cfg := &yaml.Config{}
	if c.Config != "" {
		fc, err := yaml.Load(c.Config)
		if err != nil {
			return nil, err
		}
		cfg = fc
	}

	if c.Format != "" {
		cfg.Format = c.Format
	}
	if c.Timeout != 0 {
		cfg.Timeout = c.Timeout
	}
	if c.ReadyTimeout != 0 {
		cfg.ReadyTimeout = c.ReadyTimeout
	}
	if c.APIURL != "" {
		cfg.APIURL = c.APIURL
	}
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}
	if c.Browser != "" {
		cfg.Browser = c.Browser
	}
	if c.Static {
		cfg.Static = true
	}
	if c.Copy < 0 {
		return nil, cpfetch.Errorf(cpfetch.EINVALID, "--copy must be a positive test number")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Format == "" {
		cfg.Format = FormatJSON
	}
	return cfg, nil
}

// Output formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Extractor cpfetch.ProblemExtractor
	Presenter cpfetch.Presenter
}

// FetchCmd extracts one problem and writes it to stdout.
type FetchCmd struct {
	URL    string
	Format string

	// Copy selects a sample test (1-based) to print instead of the problem.
	Copy int

	// Static reports that the page is fetched without a browser.
	Static bool
}
