package tui

import (
	"fmt"
	"strings"

	"github.com/mkarren/lanes/internal/cards"
	"github.com/mkarren/lanes/internal/model"
	"github.com/mkarren/lanes/internal/prefs"
	"github.com/mkarren/lanes/internal/service"
)

// InfoPanel is what the surface shows for the focused card.
type InfoPanel struct {
	Title string
	Body  string
	Meta  string
}

// SelectionCoordinator turns a focus change into the info panel and
// backdrop updates that go with it. Dependencies are passed in at
// construction; every side effect reports its error to the caller.
type SelectionCoordinator struct {
	markdown   service.MarkdownRenderer
	backdrop   service.Backdrop
	ratingMode prefs.RatingMode
}

// NewSelectionCoordinator creates a coordinator with the given
// renderer and backdrop sink. Either may be nil, disabling that output.
func NewSelectionCoordinator(md service.MarkdownRenderer, bd service.Backdrop, ratingMode prefs.RatingMode) *SelectionCoordinator {
	return &SelectionCoordinator{markdown: md, backdrop: bd, ratingMode: ratingMode}
}

// Select publishes the panel for a newly focused card. A nil card or a
// grid button clears the panel and leaves the backdrop alone.
func (sc *SelectionCoordinator) Select(card *cards.Card) (InfoPanel, error) {
	if card == nil || card.Item == nil {
		return InfoPanel{}, nil
	}

	item := card.Item
	panel := InfoPanel{
		Title: item.Name,
		Meta:  sc.metaLine(item),
	}

	if item.Summary != "" {
		if sc.markdown != nil {
			body, err := sc.markdown.Render(item.Summary)
			if err != nil {
				return panel, fmt.Errorf("render summary: %w", err)
			}
			panel.Body = body
		} else {
			panel.Body = item.Summary
		}
	}

	if sc.backdrop != nil {
		if err := sc.backdrop.SetBackground(item); err != nil {
			return panel, fmt.Errorf("set backdrop: %w", err)
		}
	}

	return panel, nil
}

// metaLine builds the one-line summary under the title: year, runtime,
// rating per the configured rating mode, favorite marker.
func (sc *SelectionCoordinator) metaLine(item *model.Item) string {
	var parts []string

	if item.Subtitle != "" {
		parts = append(parts, item.Subtitle)
	}
	if item.ProductionYear > 0 {
		parts = append(parts, fmt.Sprintf("%d", item.ProductionYear))
	}
	if mins := item.RunTimeTicks / (10_000_000 * 60); mins > 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}
	if item.CommunityRating > 0 {
		switch sc.ratingMode {
		case prefs.RatingTomatoes:
			parts = append(parts, fmt.Sprintf("%.0f%%", item.CommunityRating*10))
		case prefs.RatingStars:
			parts = append(parts, fmt.Sprintf("%.1f*", item.CommunityRating))
		}
	}
	if item.Favorite() {
		parts = append(parts, "favorite")
	}

	return strings.Join(parts, " | ")
}
