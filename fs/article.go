package fs

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/frontpage"
)

// ArticleWriter saves converted articles as markdown files.
type ArticleWriter struct {
	dir string
}

// NewArticleWriter creates a writer that saves articles under dir.
func NewArticleWriter(dir string) *ArticleWriter {
	return &ArticleWriter{dir: dir}
}

// Save writes the article's markdown to a file named after its source URL
// and returns the path.
func (w *ArticleWriter) Save(sourceURL, title, markdown string) (string, error) {
	name, err := ArticleFilename(sourceURL)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, name)
	content := FormatArticle(sourceURL, title, markdown, time.Now())
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// ArticleFilename derives a flat markdown file name from an article URL.
// Example: https://news.example.com/stories/first → news.example.com-stories-first.md
func ArticleFilename(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", frontpage.Errorf(frontpage.EINVALID, "invalid article URL %q", rawURL)
	}

	slug := u.Host + strings.ReplaceAll(strings.TrimSuffix(u.Path, "/"), "/", "-")
	if slug == "" {
		slug = "article"
	}
	return slug + ".md", nil
}

// FormatArticle formats an article with YAML frontmatter.
func FormatArticle(sourceURL, title, markdown string, fetched time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(sourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(title)
	b.WriteString("\nfetched: ")
	b.WriteString(fetched.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)
	return b.String()
}
