package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// descriptionRenderer renders task descriptions as markdown for the detail
// preview and recreates the renderer when wrap width changes.
type descriptionRenderer struct {
	width    int
	renderer *glamour.TermRenderer
}

// render converts a description into ANSI-styled terminal text with the
// requested wrap width. Plain text passes through unchanged on any failure.
func (r *descriptionRenderer) render(description string, width int) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return ""
	}

	wrapWidth := width
	if wrapWidth < 24 {
		wrapWidth = 24
	}

	if r.renderer == nil || r.width != wrapWidth {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(wrapWidth),
		)
		if err != nil {
			return description
		}
		r.renderer = renderer
		r.width = wrapWidth
	}

	rendered, err := r.renderer.Render(description)
	if err != nil {
		return description
	}
	return strings.TrimRight(rendered, "\n")
}
