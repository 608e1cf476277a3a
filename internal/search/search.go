package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/mkarren/lanes/internal/cards"
	"github.com/mkarren/lanes/internal/rows"
)

// Result represents a fuzzy search match.
type Result struct {
	Card           *cards.Card
	Row            int
	Index          int
	MatchedIndexes []int
	Score          int
}

// entry locates one card in the row set.
type entry struct {
	card  *cards.Card
	row   int
	index int
}

// cardNames implements fuzzy.Source for an entry slice.
type cardNames []entry

func (cn cardNames) String(i int) string {
	return cn[i].card.Name()
}

func (cn cardNames) Len() int {
	return len(cn)
}

// FuzzySearchRows searches all loaded cards by name using fuzzy
// matching. Button rows are skipped. Returns results sorted by match
// score (best first).
func FuzzySearchRows(c *rows.Coordinator, query string) []Result {
	if query == "" {
		return nil
	}

	var entries cardNames
	for r, a := range c.Rows() {
		if a.Static() {
			continue
		}
		for i, card := range a.Cards() {
			if card.Item == nil {
				continue
			}
			entries = append(entries, entry{card: card, row: r, index: i})
		}
	}

	matches := fuzzy.FindFrom(query, entries)

	results := make([]Result, len(matches))
	for i, m := range matches {
		e := entries[m.Index]
		results[i] = Result{
			Card:           e.card,
			Row:            e.row,
			Index:          e.index,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
