package service

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown summaries with glamour, word-wrapped
// to the info panel width.
type GlamourRenderer struct {
	renderer *glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer wrapping at the given width.
func NewGlamourRenderer(width int) (*GlamourRenderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &GlamourRenderer{renderer: r}, nil
}

// Render implements MarkdownRenderer.
func (g *GlamourRenderer) Render(text string) (string, error) {
	out, err := g.renderer.Render(text)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
