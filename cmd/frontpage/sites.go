package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/frontpage"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SITE\tHOME\tFEED")
	for _, src := range frontpage.DefaultSources() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", src.Site, src.HomeURL, src.FeedURL)
	}
	return w.Flush()
}
