package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown formats markdown for the terminal. On any rendering error
// it falls back to the raw text.
func renderMarkdown(md string) string {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		return md
	}
	return out
}

// printMarkdown renders markdown to stdout.
func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}
