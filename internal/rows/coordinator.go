package rows

import (
	"github.com/google/uuid"

	"github.com/mkarren/lanes/internal/cards"
	"github.com/mkarren/lanes/internal/model"
	"github.com/mkarren/lanes/internal/signal"
)

// viewsHeader titles the trailing grid-button row.
const viewsHeader = "Views"

// RowRequest pairs a fetch with the row that asked for it, so the
// result can be routed back to the right adapter.
type RowRequest struct {
	Row int
	Req FetchRequest
}

// Params configures a Coordinator.
type Params struct {
	Folder *model.Item
	Defs   []Definition
	Bus    *signal.Bus
}

// Coordinator assembles and drives the row set of one browse surface:
// the configured item rows plus, for library folders, a trailing row
// of navigation buttons keyed off the folder's collection type.
type Coordinator struct {
	folder   *model.Item
	adapters []*Adapter

	firstLoad bool
}

// NewCoordinator builds the adapters for the given definitions,
// registers their invalidation triggers, and appends the trailing
// button row when the folder calls for one.
func NewCoordinator(p Params) *Coordinator {
	c := &Coordinator{folder: p.Folder, firstLoad: true}
	for _, def := range p.Defs {
		a := NewAdapter(def)
		if p.Bus != nil {
			a.RegisterTriggers(p.Bus)
		}
		c.adapters = append(c.adapters, a)
	}
	if p.Folder != nil {
		if buttons := ButtonsFor(primaryKind(p.Folder.CollectionType)); len(buttons) > 0 {
			c.adapters = append(c.adapters, NewStaticAdapter(viewsHeader, buttons))
		}
	}
	return c
}

// primaryKind maps a folder's collection type to the item kind its
// button row is composed for.
func primaryKind(ct model.CollectionType) model.ItemKind {
	switch ct {
	case model.CollectionMovies:
		return model.KindMovie
	case model.CollectionTVShows:
		return model.KindSeries
	case model.CollectionMusic:
		return model.KindMusicAlbum
	default:
		return model.KindFolder
	}
}

// ButtonsFor returns the grid buttons shown after the item rows for a
// folder whose primary contents are of the given kind.
func ButtonsFor(kind model.ItemKind) []model.GridButton {
	switch kind {
	case model.KindMovie, model.KindSeries:
		return []model.GridButton{
			{ID: model.ButtonAllItems, Label: "All Items"},
			{ID: model.ButtonRandom, Label: "Random"},
		}
	case model.KindMusicAlbum:
		return []model.GridButton{
			{ID: model.ButtonAlbums, Label: "Albums"},
			{ID: model.ButtonAlbumArtists, Label: "Album Artists"},
			{ID: model.ButtonArtists, Label: "Artists"},
		}
	default:
		return []model.GridButton{
			{ID: model.ButtonAllItems, Label: "All Items"},
		}
	}
}

func (c *Coordinator) Folder() *model.Item { return c.folder }
func (c *Coordinator) Rows() []*Adapter    { return c.adapters }
func (c *Coordinator) NumRows() int        { return len(c.adapters) }

// Row returns the adapter at index i, or nil when out of range.
func (c *Coordinator) Row(i int) *Adapter {
	if i < 0 || i >= len(c.adapters) {
		return nil
	}
	return c.adapters[i]
}

// InitialRequests starts retrieval on every row that has not loaded
// yet and returns the fetches to run.
func (c *Coordinator) InitialRequests() []RowRequest {
	var reqs []RowRequest
	for i, a := range c.adapters {
		if req, ok := a.StartRetrieve(); ok {
			reqs = append(reqs, RowRequest{Row: i, Req: req})
		}
	}
	return reqs
}

// RetrievePass re-starts every row flagged stale since the last pass.
// Rows still loading or up to date are left alone.
func (c *Coordinator) RetrievePass() []RowRequest {
	var reqs []RowRequest
	for i, a := range c.adapters {
		if a.Status() != StatusNeedsRetrieve {
			continue
		}
		if req, ok := a.StartRetrieve(); ok {
			reqs = append(reqs, RowRequest{Row: i, Req: req})
		}
	}
	return reqs
}

// LookaheadRequest returns the next-page fetch for a row when focus has
// moved close enough to its loaded tail.
func (c *Coordinator) LookaheadRequest(row, index int) (RowRequest, bool) {
	a := c.Row(row)
	if a == nil || !a.NeedsLookahead(index) {
		return RowRequest{}, false
	}
	req, ok := a.StartLoadMore()
	if !ok {
		return RowRequest{}, false
	}
	return RowRequest{Row: row, Req: req}, true
}

// ReconcileDeletion removes the selected card's item from its owning
// row when it matches the most recently recorded deletion. Returns
// true when a card was removed; the caller must then move selection.
func (c *Coordinator) ReconcileDeletion(d *signal.Deletions, selected *cards.Card, owningRow *Adapter) bool {
	if d == nil || selected == nil || owningRow == nil || selected.Item == nil {
		return false
	}
	id, ok := d.Last()
	if !ok || id != selected.Item.ID {
		return false
	}
	removed := owningRow.RemoveByID(id)
	d.Clear()
	return removed
}

// ConsumeFirstLoad reports whether this is the surface's first resume
// and clears the flag. Later resumes should run the delayed retrieval
// pass; the first one should not.
func (c *Coordinator) ConsumeFirstLoad() bool {
	was := c.firstLoad
	c.firstLoad = false
	return was
}

// RemoveFromAll drops the item from every row that carries it and
// returns how many rows were touched.
func (c *Coordinator) RemoveFromAll(id uuid.UUID) int {
	n := 0
	for _, a := range c.adapters {
		if a.RemoveByID(id) {
			n++
		}
	}
	return n
}

// Close releases all bus subscriptions held by the rows.
func (c *Coordinator) Close() {
	for _, a := range c.adapters {
		a.Unsubscribe()
	}
}
