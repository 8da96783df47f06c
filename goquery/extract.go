package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/frontpage"
)

// ListConfig describes how to read one headline list layout: a container
// selector matching candidate rows plus selectors for the fields inside
// each row. Only Container and Link are required.
type ListConfig struct {
	// Container matches one candidate item row.
	Container string

	// Link matches the headline anchor within the container.
	Link string

	// Author, Time and Score match optional metadata within the container.
	Author string
	Time   string
	Score  string

	// AuthorDefault is applied when Author matches nothing.
	AuthorDefault string

	// URLFilter, when set, rejects resolved URLs the site does not serve
	// as stories (category hubs, video carousels).
	URLFilter func(u *url.URL) bool
}

// ExtractListItems extracts items from HTML using the provided config.
// Candidates are visited in document order and items are deduplicated by
// URL, keeping the first occurrence. Candidates with no usable title or
// link are skipped. Extraction stops once limit items are collected.
func ExtractListItems(html string, baseURL string, limit int, cfg ListConfig) ([]frontpage.NewsItem, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var items []frontpage.NewsItem

	doc.Find(cfg.Container).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(items) >= limit {
			return false
		}

		link := sel.Find(cfg.Link).First()
		if link.Length() == 0 {
			return true
		}

		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		resolved := resolveItemURL(base, href)
		if title == "" || resolved == "" {
			return true
		}

		if cfg.URLFilter != nil {
			u, err := url.Parse(resolved)
			if err != nil || !cfg.URLFilter(u) {
				return true
			}
		}

		if _, ok := seen[resolved]; ok {
			return true
		}

		item := frontpage.NewsItem{
			Title:  title,
			URL:    resolved,
			Author: cfg.AuthorDefault,
		}
		if cfg.Author != "" {
			if author := strings.TrimSpace(sel.Find(cfg.Author).First().Text()); author != "" {
				item.Author = author
			}
		}
		if cfg.Time != "" {
			item.TimeIndicator = strings.TrimSpace(sel.Find(cfg.Time).First().Text())
		}
		if cfg.Score != "" {
			item.Score = parseScore(sel.Find(cfg.Score).First().Text())
		}

		if err := item.Validate(); err != nil {
			return true
		}

		seen[resolved] = struct{}{}
		items = append(items, item)
		return true
	})

	return items, nil
}

// parseBase parses and checks the URL relative links resolve against.
func parseBase(baseURL string) (*url.URL, error) {
	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return nil, frontpage.Errorf(frontpage.EINVALID, "invalid base URL %q", baseURL)
	}
	return base, nil
}

// parseDocument parses markup into a goquery document. The parser is
// lenient, so a failure here means the payload is not HTML at all.
func parseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, frontpage.Errorf(frontpage.EPARSE, "parse HTML: %s", err)
	}
	return doc, nil
}

// resolveItemURL resolves an item href against the page URL. Returns an
// empty string for unparsable hrefs, non-HTTP schemes, and links pointing
// back at the page itself (navigation self-links). Fragments are stripped
// so duplicates collapse to one URL.
func resolveItemURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || isNonHTTPLink(href) {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = "" // Strip fragment for deduplication

	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// parseScore extracts the leading integer from score text like "123 points".
// Returns 0 for missing or malformed scores; a score never fails an item.
func parseScore(text string) int {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
