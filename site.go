package frontpage

// Site identifies a supported news site.
type Site string

// Built-in sites.
const (
	SiteUnknown    Site = ""
	SiteHackerNews Site = "hackernews"
	SiteYahooNews  Site = "yahoo"
	SiteLobsters   Site = "lobsters"
)

// SourceConfig describes how a site's headlines are obtained.
type SourceConfig struct {
	Site    Site   `json:"site"`
	HomeURL string `json:"homeUrl"`

	// FeedURL is the site's syndication feed, used by the feed-backed
	// source as an alternative to scraping the homepage.
	FeedURL string `json:"feedUrl"`

	// AuthorDefault is applied to items with no author on the page.
	AuthorDefault string `json:"authorDefault"`

	// RankByScore reorders the final list by score, descending.
	// The sort is stable, so page order still breaks ties.
	RankByScore bool `json:"rankByScore"`
}

// Validate returns an error if the config cannot drive a fetch.
func (c *SourceConfig) Validate() error {
	if c.Site == SiteUnknown {
		return Errorf(EINVALID, "source site required")
	}
	if c.HomeURL == "" {
		return Errorf(EINVALID, "source home URL required")
	}
	return nil
}

// DefaultSources returns the built-in site configurations.
func DefaultSources() []SourceConfig {
	return []SourceConfig{
		{
			Site:          SiteHackerNews,
			HomeURL:       "https://news.ycombinator.com/",
			FeedURL:       "https://news.ycombinator.com/rss",
			AuthorDefault: AuthorUnknown,
			RankByScore:   true,
		},
		{
			Site:          SiteYahooNews,
			HomeURL:       "https://news.yahoo.com/",
			FeedURL:       "https://news.yahoo.com/rss",
			AuthorDefault: "Yahoo News",
		},
		{
			Site:          SiteLobsters,
			HomeURL:       "https://lobste.rs/",
			FeedURL:       "https://lobste.rs/rss",
			AuthorDefault: AuthorUnknown,
		},
	}
}

// SourceFor returns the built-in configuration for a site.
func SourceFor(site Site) (SourceConfig, bool) {
	for _, src := range DefaultSources() {
		if src.Site == site {
			return src, true
		}
	}
	return SourceConfig{}, false
}
