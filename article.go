package frontpage

// Article holds the readable content extracted from a story page.
type Article struct {
	// Title is the article title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ArticleExtractor extracts main content from article pages, removing
// boilerplate.
type ArticleExtractor interface {
	Extract(html string) (*Article, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an ArticleExtractor).
	Convert(html string) (string, error)
}
