package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/frontpage"
	"github.com/fwojciec/frontpage/fs"
	"github.com/fwojciec/frontpage/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Sources are the headline sources for the fetch command, one per
	// requested site, in flag order.
	Sources []scrape.NamedSource

	// Read command collaborators.
	Fetcher   frontpage.Fetcher
	Extractor frontpage.ArticleExtractor
	Converter frontpage.Converter
	Articles  *fs.ArticleWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch FetchCmd `cmd:"" help:"Fetch headlines from one or more news sites"`
	Read  ReadCmd  `cmd:"" help:"Fetch an article and render it as Markdown"`
	Sites SitesCmd `cmd:"" help:"List built-in sites"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Sites       []string      `short:"s" name:"site" default:"yahoo" help:"Site to fetch (repeatable): hackernews, yahoo, lobsters"`
	Limit       int           `short:"n" default:"20" help:"Maximum items per site"`
	Timeout     time.Duration `default:"10s" help:"Fetch timeout"`
	Format      string        `short:"f" default:"text" enum:"text,json,markdown" help:"Output format: text, json, markdown"`
	Insecure    bool          `help:"Skip TLS certificate verification (explicit opt-in, off by default)"`
	JS          bool          `name:"js" help:"Render pages with headless Chrome"`
	RSS         bool          `name:"rss" help:"Read the site's RSS feed instead of scraping the homepage"`
	Retry       bool          `help:"Retry failed fetches with backoff"`
	SnapshotDir string        `placeholder:"DIR" help:"Save pages that defeat every selector under DIR"`
	Verbose     bool          `short:"v" help:"Log fetch and extraction progress to stderr"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	URL     string        `arg:"" help:"Article URL"`
	Engine  string        `default:"trafilatura" enum:"trafilatura,readability" help:"Extraction engine: trafilatura, readability"`
	Timeout time.Duration `default:"10s" help:"Fetch timeout"`
	Save    string        `placeholder:"DIR" help:"Also save the article as a Markdown file under DIR"`
	Verbose bool          `short:"v" help:"Log fetch progress to stderr"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}
