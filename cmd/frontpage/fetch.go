package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/frontpage"
	"github.com/fwojciec/frontpage/scrape"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	type siteOutput struct {
		Site  frontpage.Site       `json:"site"`
		Items []frontpage.NewsItem `json:"items"`
	}

	outputs := make([]siteOutput, 0, len(deps.Sources))

	// Sites fetch concurrently and fail independently: one stale or
	// unreachable site must not hide the headlines of the others.
	var firstErr error
	for _, res := range scrape.FetchAll(deps.Ctx, deps.Sources, c.Limit) {
		if res.Err != nil {
			reportFetchError(deps.Stderr, res.Site, res.Err)
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}
		outputs = append(outputs, siteOutput{Site: res.Site, Items: res.Items})
	}

	switch c.Format {
	case "json":
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(outputs); err != nil {
			return err
		}
	case "markdown":
		for _, out := range outputs {
			fmt.Fprintf(deps.Stdout, "## %s\n\n", out.Site)
			for _, item := range out.Items {
				fmt.Fprintf(deps.Stdout, "- [%s](%s)%s\n", item.Title, item.URL, markdownMeta(item))
			}
			fmt.Fprintln(deps.Stdout)
		}
	default:
		for _, out := range outputs {
			if len(deps.Sources) > 1 {
				fmt.Fprintf(deps.Stdout, "=== %s ===\n\n", out.Site)
			}
			fmt.Fprintln(deps.Stdout, frontpage.FormatItems(out.Items))
			fmt.Fprintln(deps.Stdout)
		}
	}

	return firstErr
}

// markdownMeta renders an item's optional fields as a markdown suffix.
func markdownMeta(item frontpage.NewsItem) string {
	meta := ""
	if item.Author != "" {
		meta += " · " + item.Author
	}
	if item.TimeIndicator != "" {
		meta += " · " + item.TimeIndicator
	}
	if item.Score > 0 {
		meta += fmt.Sprintf(" · %d points", item.Score)
	}
	return meta
}

// reportFetchError prints a classified error with a hint tailored to its
// kind, so "site unreachable" and "selectors are stale" read differently.
func reportFetchError(stderr io.Writer, site frontpage.Site, err error) {
	fmt.Fprintf(stderr, "%s: %s\n", site, frontpage.ErrorMessage(err))

	switch frontpage.ErrorCode(err) {
	case frontpage.ECONNECTION:
		fmt.Fprintln(stderr, "Hint: check your network connection; the site may be down or refusing requests")
	case frontpage.ETIMEOUT:
		fmt.Fprintln(stderr, "Hint: the site is slow to respond; raise --timeout or try again later")
	case frontpage.EPARSE:
		fmt.Fprintln(stderr, "Hint: the response was not parsable markup; the site may be serving an error page")
	case frontpage.ESTRUCTURE:
		fmt.Fprintln(stderr, "Hint: the page layout may have changed; try --rss, or pass --snapshot-dir to capture the page for inspection")
	}
}
