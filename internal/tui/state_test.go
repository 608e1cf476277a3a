package tui

import (
	"testing"

	"github.com/mkarren/lanes/internal/cards"
	"github.com/mkarren/lanes/internal/rows"
	"github.com/mkarren/lanes/internal/search"
	"github.com/mkarren/lanes/internal/tui/layout"
)

func TestSelectionState_SetReplacesWholesale(t *testing.T) {
	var s SelectionState

	firstCard := &cards.Card{Item: movieItem()}
	firstRow := rows.NewAdapter(rows.Definition{Header: "First"})
	s.Set(firstCard, firstRow, 0, 3)

	secondCard := &cards.Card{Item: movieItem()}
	secondRow := rows.NewAdapter(rows.Definition{Header: "Second"})
	s.Set(secondCard, secondRow, 1, 0)

	if s.Card() != secondCard || s.Row() != secondRow {
		t.Error("card and row must both come from the latest Set")
	}
	if s.RowIndex() != 1 || s.CardIndex() != 0 {
		t.Errorf("indexes must follow the pair, got row %d card %d", s.RowIndex(), s.CardIndex())
	}
}

func TestSelectionState_Clear(t *testing.T) {
	var s SelectionState
	s.Set(&cards.Card{Item: movieItem()}, rows.NewAdapter(rows.Definition{}), 2, 4)

	s.Clear()

	if !s.Empty() {
		t.Error("cleared selection must be empty")
	}
	if s.Row() != nil || s.RowIndex() != 0 || s.CardIndex() != 0 {
		t.Error("clear must reset every field")
	}
}

func TestSelectionState_AccessorsOnReturnedValue(t *testing.T) {
	card := &cards.Card{Item: movieItem()}
	row := rows.NewAdapter(rows.Definition{Header: "First"})

	// Selections are handed out by value; the accessors must work on a
	// non-addressable copy straight off a function return.
	get := func() SelectionState {
		var s SelectionState
		s.Set(card, row, 2, 3)
		return s
	}

	if get().Card() != card || get().Row() != row {
		t.Error("accessors must read the pair off a returned value")
	}
	if get().RowIndex() != 2 || get().CardIndex() != 3 {
		t.Errorf("indexes off a returned value, got row %d card %d", get().RowIndex(), get().CardIndex())
	}
	if get().Empty() {
		t.Error("a set selection is not empty")
	}
}

func TestSelectionState_EmptyByDefault(t *testing.T) {
	var s SelectionState
	if !s.Empty() {
		t.Error("zero value must be empty")
	}
}

func TestSearchState_Reset(t *testing.T) {
	s := NewSearchState(layout.DefaultConfig())
	s.Active = true
	s.Input.SetValue("alien")
	s.Results = []search.Result{{Row: 1, Index: 2}}
	s.Cursor = 1

	s.Reset()

	if s.Active || s.Input.Value() != "" || s.Results != nil || s.Cursor != 0 {
		t.Errorf("reset must clear everything, got %+v", s)
	}
}

func TestSearchState_Current(t *testing.T) {
	s := NewSearchState(layout.DefaultConfig())

	if s.Current() != nil {
		t.Error("no results means no current")
	}

	s.Results = []search.Result{{Row: 0, Index: 1}, {Row: 2, Index: 0}}
	s.Cursor = 1
	if cur := s.Current(); cur == nil || cur.Row != 2 {
		t.Errorf("expected the second result, got %+v", cur)
	}

	s.Cursor = 5
	if s.Current() != nil {
		t.Error("out-of-range cursor means no current")
	}
}
