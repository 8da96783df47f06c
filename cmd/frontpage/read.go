package main

import (
	"fmt"

	"github.com/fwojciec/frontpage"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	res, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", frontpage.ErrorMessage(err))
		return err
	}

	article, err := deps.Extractor.Extract(res.HTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", frontpage.ErrorMessage(err))
		return err
	}

	markdown, err := deps.Converter.Convert(article.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", frontpage.ErrorMessage(err))
		return err
	}

	if article.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", article.Title)
	}
	fmt.Fprintln(deps.Stdout, markdown)

	if deps.Articles != nil {
		path, err := deps.Articles.Save(res.FinalURL, article.Title, markdown)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error saving article: %s\n", frontpage.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved to %s\n", path)
	}

	return nil
}
