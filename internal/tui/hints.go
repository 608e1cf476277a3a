package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "open")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders the contextual hints for the bottom bar in
// horizontal format: "j/k:rows h/l:cards enter:open".
func (a App) renderHints() string {
	hints := a.getContextualHints()
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() []Hint {
	if a.search.Active {
		return []Hint{
			{Key: "type", Desc: "search"},
			{Key: "up/down", Desc: "choose"},
			{Key: "enter", Desc: "jump"},
			{Key: "esc", Desc: "cancel"},
		}
	}

	hints := []Hint{
		{Key: "j/k", Desc: "rows"},
		{Key: "h/l", Desc: "cards"},
		{Key: "enter", Desc: "open"},
		{Key: "/", Desc: "search"},
		{Key: "r", Desc: "refresh"},
	}

	if card := a.sel.Card(); card != nil && card.Item != nil {
		if a.streamURL != nil {
			hints = append(hints, Hint{Key: "Y", Desc: "yank url"})
		}
		hints = append(hints, Hint{Key: "d", Desc: "remove"})
	}

	hints = append(hints, Hint{Key: "q", Desc: "quit"})
	return hints
}
