package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/frontpage"
)

var _ frontpage.ItemSelector = (*HackerNewsSelector)(nil)

// HackerNewsSelector extracts stories from the Hacker News front page.
// Each story spans two table rows: a tr.athing carrying the title link and
// a sibling row whose td.subtext carries score, submitter and age. The
// two-row shape doesn't fit ListConfig, so this selector walks the table
// directly.
type HackerNewsSelector struct{}

// NewHackerNewsSelector creates a new HackerNewsSelector.
func NewHackerNewsSelector() *HackerNewsSelector {
	return &HackerNewsSelector{}
}

// Name returns the selector's identifier.
func (s *HackerNewsSelector) Name() string {
	return "hackernews-front"
}

// ExtractItems parses HTML and returns the stories it recognizes, in page
// order, deduplicated by URL. Story links are resolved against baseURL
// because self-posts use relative item?id= hrefs.
func (s *HackerNewsSelector) ExtractItems(html string, baseURL string, limit int) ([]frontpage.NewsItem, error) {
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

	doc.Find("tr.athing").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if len(items) >= limit {
			return false
		}

		link := row.Find("span.titleline > a").First()
		if link.Length() == 0 {
			return true
		}

		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		resolved := resolveItemURL(base, href)
		if title == "" || resolved == "" {
			return true
		}
		if _, ok := seen[resolved]; ok {
			return true
		}

		item := frontpage.NewsItem{
			Title:  title,
			URL:    resolved,
			Author: frontpage.AuthorUnknown,
		}

		subtext := row.Next().Find("td.subtext").First()
		if subtext.Length() > 0 {
			if author := strings.TrimSpace(subtext.Find("a.hnuser").First().Text()); author != "" {
				item.Author = author
			}
			item.TimeIndicator = strings.TrimSpace(subtext.Find("span.age a").First().Text())
			item.Score = parseScore(subtext.Find("span.score").First().Text())
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
