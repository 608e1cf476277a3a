package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mkarren/lanes/internal/cards"
	"github.com/mkarren/lanes/internal/rows"
	"github.com/mkarren/lanes/internal/search"
	"github.com/mkarren/lanes/internal/tui/layout"
)

// SelectionState holds the focused card together with the row that
// owns it. The pair is always replaced wholesale so the two fields can
// never disagree about which row the card came from.
type SelectionState struct {
	card *cards.Card
	row  *rows.Adapter

	rowIndex  int
	cardIndex int
}

// Set replaces the selection with a new card/row pair.
func (s *SelectionState) Set(card *cards.Card, row *rows.Adapter, rowIndex, cardIndex int) {
	*s = SelectionState{card: card, row: row, rowIndex: rowIndex, cardIndex: cardIndex}
}

// Clear empties the selection.
func (s *SelectionState) Clear() {
	*s = SelectionState{}
}

func (s SelectionState) Card() *cards.Card  { return s.card }
func (s SelectionState) Row() *rows.Adapter { return s.row }
func (s SelectionState) RowIndex() int      { return s.rowIndex }
func (s SelectionState) CardIndex() int     { return s.cardIndex }
func (s SelectionState) Empty() bool        { return s.card == nil }

// SearchState holds state for the fuzzy search overlay.
type SearchState struct {
	Active  bool
	Input   textinput.Model
	Results []search.Result
	Cursor  int
}

// NewSearchState creates a new SearchState with initialized input.
func NewSearchState(cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Placeholder = "Search..."
	input.CharLimit = cfg.Overlay.SearchCharLimit
	return SearchState{Input: input}
}

// Reset clears the search state.
func (s *SearchState) Reset() {
	s.Active = false
	s.Input.Reset()
	s.Results = nil
	s.Cursor = 0
}

// Current returns the highlighted result, or nil when there is none.
func (s *SearchState) Current() *search.Result {
	if len(s.Results) == 0 || s.Cursor < 0 || s.Cursor >= len(s.Results) {
		return nil
	}
	return &s.Results[s.Cursor]
}
