package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cpfetch"
	"github.com/fwojciec/cpfetch/goquery"
	"github.com/fwojciec/cpfetch/htmltomarkdown"
	cfhttp "github.com/fwojciec/cpfetch/http"
	"github.com/fwojciec/cpfetch/pipeline"
	"github.com/fwojciec/cpfetch/rod"
	cfslog "github.com/fwojciec/cpfetch/slog"
	"github.com/fwojciec/cpfetch/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Extractor replaces the wired pipeline when set. Used by tests.
	Extractor cpfetch.ProblemExtractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cpfetch"),
		kong.Description("Extract a Codeforces problem (statement, limits, samples) as JSON or Markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := cli.Resolve()
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", cpfetch.ErrorMessage(err))
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Extractor: m.Extractor,
		Presenter: NewConsole(stdout),
	}
	if deps.Extractor == nil {
		deps.Extractor = newExtractor(cfg, logger)
	}

	cmd := &FetchCmd{
		URL:    cli.URL,
		Format: cfg.Format,
		Copy:   cli.Copy,
		Static: cfg.Static,
	}

	return cmd.Run(deps)
}

// newExtractor wires the extraction pipeline from cfg. Every service is
// wrapped in its logging decorator.
func newExtractor(cfg *yaml.Config, logger *slog.Logger) cpfetch.ProblemExtractor {
	var fetcher cpfetch.PageFetcher
	if cfg.Static {
		var opts []cfhttp.PageOption
		if cfg.Timeout > 0 {
			opts = append(opts, cfhttp.WithPageTimeout(cfg.Timeout))
		}
		if cfg.UserAgent != "" {
			opts = append(opts, cfhttp.WithPageUserAgent(cfg.UserAgent))
		}
		fetcher = cfhttp.NewPageFetcher(opts...)
	} else {
		var opts []rod.Option
		if cfg.Timeout > 0 {
			opts = append(opts, rod.WithNavigationTimeout(cfg.Timeout))
		}
		if cfg.ReadyTimeout > 0 {
			opts = append(opts, rod.WithReadyTimeout(cfg.ReadyTimeout))
		}
		if cfg.UserAgent != "" {
			opts = append(opts, rod.WithUserAgent(cfg.UserAgent))
		}
		if cfg.Browser != "" {
			opts = append(opts, rod.WithBrowserBin(cfg.Browser))
		}
		fetcher = rod.NewFetcher(opts...)
	}

	var metaOpts []cfhttp.Option
	if cfg.APIURL != "" {
		metaOpts = append(metaOpts, cfhttp.WithBaseURL(cfg.APIURL))
	}
	if cfg.RateLimit > 0 {
		metaOpts = append(metaOpts, cfhttp.WithRateLimit(cfg.RateLimit))
	}

	content := goquery.NewExtractor()
	content.Converter = htmltomarkdown.NewConverter()

	return cfslog.NewLoggingProblemExtractor(&pipeline.Extractor{
		Metadata: cfslog.NewLoggingMetadataClient(cfhttp.NewMetadataClient(metaOpts...), logger),
		Fetcher:  cfslog.NewLoggingFetcher(fetcher, logger),
		Content:  cfslog.NewLoggingContentExtractor(content, logger),
		Logger:   logger,
	}, logger)
}
