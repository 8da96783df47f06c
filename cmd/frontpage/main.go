package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/frontpage"
	"github.com/fwojciec/frontpage/feed"
	"github.com/fwojciec/frontpage/fs"
	"github.com/fwojciec/frontpage/goquery"
	"github.com/fwojciec/frontpage/htmltomarkdown"
	fphttp "github.com/fwojciec/frontpage/http"
	"github.com/fwojciec/frontpage/readability"
	"github.com/fwojciec/frontpage/rod"
	"github.com/fwojciec/frontpage/scrape"
	fpslog "github.com/fwojciec/frontpage/slog"
	"github.com/fwojciec/frontpage/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// hostRPS paces requests per host so repeated runs stay polite.
const hostRPS = 1.0

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("frontpage"),
		kong.Description("Read news front pages from the terminal"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'frontpage --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Wire command-specific dependencies based on command
	if cmd == "fetch" {
		fetcher, err := newFetcher(cli.Fetch.JS, cli.Fetch.Insecure, cli.Fetch.Timeout, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		logger := newLogger(cli.Fetch.Verbose, stderr)
		if err := wireFetch(&cli.Fetch, deps, fetcher, logger); err != nil {
			return err
		}
	}

	if cmd == "read" {
		fetcher, err := newFetcher(false, false, cli.Read.Timeout, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		logger := newLogger(cli.Read.Verbose, stderr)
		deps.Fetcher = fpslog.NewLoggingFetcher(fetcher, logger)
		deps.Converter = htmltomarkdown.NewConverter()

		switch cli.Read.Engine {
		case "readability":
			deps.Extractor = readability.NewExtractor()
		default:
			deps.Extractor = trafilatura.NewExtractor()
		}

		if cli.Read.Save != "" {
			deps.Articles = fs.NewArticleWriter(cli.Read.Save)
		}
	}

	return kongCtx.Run(deps)
}

// wireFetch builds one headline source per requested site.
func wireFetch(cmd *FetchCmd, deps *Dependencies, fetcher frontpage.Fetcher, logger *slog.Logger) error {
	registry := newSelectorRegistry()
	limiter := scrape.NewHostLimiter(hostRPS)

	var snapshots frontpage.SnapshotStore
	if cmd.SnapshotDir != "" {
		snapshots = fs.NewSnapshotStore(cmd.SnapshotDir)
	}

	var retryDelays []time.Duration
	if cmd.Retry {
		retryDelays = scrape.DefaultRetryDelays()
	}

	for _, name := range cmd.Sites {
		cfg, ok := frontpage.SourceFor(frontpage.Site(name))
		if !ok {
			return frontpage.Errorf(frontpage.EINVALID, "unknown site %q; run 'frontpage sites' to see built-in sites", name)
		}

		loggingFetcher := fpslog.NewLoggingFetcher(fetcher, logger)

		var source frontpage.HeadlineSource
		if cmd.RSS {
			source = &feed.Source{
				Fetcher: loggingFetcher,
				Config:  cfg,
			}
		} else {
			source = &scrape.Pipeline{
				Fetcher:     loggingFetcher,
				Extractor:   goquery.NewExtractor(registry.Selectors(cfg.Site)...),
				Source:      cfg,
				Limiter:     limiter,
				Snapshots:   snapshots,
				RetryDelays: retryDelays,
			}
		}

		deps.Sources = append(deps.Sources, scrape.NamedSource{
			Site:   cfg.Site,
			Source: fpslog.NewLoggingSource(source, cfg.Site, logger),
		})
	}

	return nil
}

// newFetcher creates the page fetcher: plain HTTP by default, headless
// Chrome when js is set.
func newFetcher(js, insecure bool, timeout time.Duration, stderr io.Writer) (frontpage.Fetcher, error) {
	if js {
		fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --js")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return fetcher, nil
	}

	opts := []fphttp.Option{fphttp.WithTimeout(timeout)}
	if insecure {
		opts = append(opts, fphttp.WithInsecureTLS())
	}
	return fphttp.NewFetcher(opts...), nil
}

// newSelectorRegistry registers the built-in site selectors over the
// generic headline fallback.
func newSelectorRegistry() frontpage.SelectorRegistry {
	registry := goquery.NewRegistry(goquery.NewHeadlineSelector())
	registry.Register(frontpage.SiteHackerNews, goquery.NewHackerNewsSelector())
	registry.Register(frontpage.SiteYahooNews, goquery.NewYahooSelector())
	registry.Register(frontpage.SiteLobsters, goquery.NewLobstersSelector())
	return registry
}

// newLogger returns a stderr text logger when verbose is set, otherwise a
// logger that discards everything.
func newLogger(verbose bool, stderr io.Writer) *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(stderr, nil))
	}
	return slog.New(slog.DiscardHandler)
}
