package frontpage

import (
	"fmt"
	"strings"
)

// FormatItems formats items for terminal display.
// Each item becomes a numbered block with the URL on its own line; the
// metadata line is omitted when the item carries no metadata.
// Items are separated by blank lines.
func FormatItems(items []NewsItem) string {
	if len(items) == 0 {
		return ""
	}

	parts := make([]string, 0, len(items))
	for i, item := range items {
		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s\n   %s", i+1, item.Title, item.URL)

		meta := make([]string, 0, 3)
		if item.Author != "" {
			meta = append(meta, item.Author)
		}
		if item.TimeIndicator != "" {
			meta = append(meta, item.TimeIndicator)
		}
		if item.Score > 0 {
			meta = append(meta, fmt.Sprintf("%d points", item.Score))
		}
		if len(meta) > 0 {
			b.WriteString("\n   " + strings.Join(meta, " | "))
		}

		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}
