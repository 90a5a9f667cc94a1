package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders assistant answers for the terminal using one of glamour's
// standard styles ("dark", "light", "notty", ...). On any renderer error the
// source text is returned unchanged.
func Markdown(md, style string, width int) string {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
