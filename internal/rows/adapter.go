package rows

import (
	"github.com/google/uuid"

	"github.com/mkarren/lanes/internal/cards"
	"github.com/mkarren/lanes/internal/model"
	"github.com/mkarren/lanes/internal/service"
	"github.com/mkarren/lanes/internal/signal"
)

// Status is the retrieval state of a row adapter.
type Status int

const (
	StatusNotStarted Status = iota
	StatusLoading
	StatusLoaded
	StatusNeedsRetrieve
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusNeedsRetrieve:
		return "needs-retrieve"
	default:
		return "unknown"
	}
}

// FetchRequest is a page fetch an adapter wants executed. The caller
// runs the query and feeds the result back through ApplyPage or
// FailRetrieve.
type FetchRequest struct {
	Query  service.Query
	Offset int
	Limit  int
}

// Adapter owns the cards of one browse row: their retrieval state,
// pagination cursor, and invalidation triggers. All methods must be
// called from the owning update loop; the adapter does no locking.
type Adapter struct {
	def    Definition
	cards  []*cards.Card
	status Status

	total       int
	fetched     int
	fullyLoaded bool
	static      bool
	lastErr     error

	unsubs []signal.UnsubscribeFunc
}

// NewAdapter builds an empty adapter for one row definition.
func NewAdapter(def Definition) *Adapter {
	return &Adapter{def: def, status: StatusNotStarted}
}

// NewStaticAdapter builds a pre-populated adapter holding grid buttons.
// It never retrieves and never pages.
func NewStaticAdapter(header string, buttons []model.GridButton) *Adapter {
	a := &Adapter{
		def:         Definition{Header: header},
		status:      StatusLoaded,
		static:      true,
		fullyLoaded: true,
	}
	for i := range buttons {
		a.cards = append(a.cards, &cards.Card{Button: &buttons[i]})
	}
	a.total = len(a.cards)
	a.fetched = len(a.cards)
	return a
}

func (a *Adapter) Definition() Definition { return a.def }
func (a *Adapter) Header() string         { return a.def.Header }
func (a *Adapter) Status() Status         { return a.status }
func (a *Adapter) Static() bool           { return a.static }
func (a *Adapter) Len() int               { return len(a.cards) }
func (a *Adapter) Err() error             { return a.lastErr }

// TotalCount is the server-reported total for the row's query, known
// only after the first page has been applied.
func (a *Adapter) TotalCount() int { return a.total }

// Cards returns the backing slice. Callers must not mutate it.
func (a *Adapter) Cards() []*cards.Card { return a.cards }

// Card returns the card at index i, or nil when out of range.
func (a *Adapter) Card(i int) *cards.Card {
	if i < 0 || i >= len(a.cards) {
		return nil
	}
	return a.cards[i]
}

// IndexOf returns the position of the item with the given id, or -1.
func (a *Adapter) IndexOf(id uuid.UUID) int {
	for i, c := range a.cards {
		if c.Item != nil && c.Item.ID == id {
			return i
		}
	}
	return -1
}

// Heights returns the height profile cards in this row resolve against.
func (a *Adapter) Heights() cards.HeightProfile { return a.def.heights() }

// StartRetrieve transitions the adapter into Loading from NotStarted or
// NeedsRetrieve and returns the first-page fetch. The second return is
// false when no retrieval should run in the current state.
func (a *Adapter) StartRetrieve() (FetchRequest, bool) {
	if a.static {
		return FetchRequest{}, false
	}
	if a.status != StatusNotStarted && a.status != StatusNeedsRetrieve {
		return FetchRequest{}, false
	}
	a.cards = nil
	a.fetched = 0
	a.total = 0
	a.fullyLoaded = false
	a.lastErr = nil
	a.status = StatusLoading
	return FetchRequest{Query: a.def.Query, Offset: 0, Limit: a.def.chunk()}, true
}

// StartLoadMore requests the next page of an already loaded row.
func (a *Adapter) StartLoadMore() (FetchRequest, bool) {
	if a.static || a.status != StatusLoaded || a.fullyLoaded {
		return FetchRequest{}, false
	}
	a.status = StatusLoading
	return FetchRequest{Query: a.def.Query, Offset: a.fetched, Limit: a.def.chunk()}, true
}

// ApplyPage appends a fetched page and settles the adapter back into
// Loaded. A short or empty page marks the row fully loaded.
func (a *Adapter) ApplyPage(page model.ItemPage) {
	for i := range page.Items {
		a.cards = append(a.cards, a.cardFor(&page.Items[i]))
	}
	a.fetched += len(page.Items)
	a.total = page.TotalCount
	if len(page.Items) == 0 || (page.TotalCount > 0 && a.fetched >= page.TotalCount) {
		a.fullyLoaded = true
	}
	a.status = StatusLoaded
	a.lastErr = nil
}

// FailRetrieve records a fetch failure. The row keeps whatever it had
// and stays retrievable later.
func (a *Adapter) FailRetrieve(err error) {
	a.lastErr = err
	a.status = StatusLoaded
}

// NeedsLookahead reports whether focusing index should kick off the
// next page fetch. True within half a chunk of the loaded tail.
func (a *Adapter) NeedsLookahead(index int) bool {
	if a.static || a.status != StatusLoaded || a.fullyLoaded {
		return false
	}
	look := a.def.chunk() / 2
	if look < 1 {
		look = 1
	}
	return index >= len(a.cards)-look
}

// MarkNeedsRetrieve flags the row stale. The next retrieval pass will
// reload it from offset zero.
func (a *Adapter) MarkNeedsRetrieve() {
	if a.static || a.status == StatusNotStarted {
		return
	}
	a.status = StatusNeedsRetrieve
}

// RegisterTriggers subscribes the adapter's invalidation triggers on
// the bus. Unsubscribe releases them.
func (a *Adapter) RegisterTriggers(bus *signal.Bus) {
	for _, t := range a.def.Triggers {
		a.unsubs = append(a.unsubs, bus.Subscribe(t, func(signal.Trigger) {
			a.MarkNeedsRetrieve()
		}))
	}
}

// Unsubscribe releases all bus subscriptions held by the adapter.
func (a *Adapter) Unsubscribe() {
	for _, u := range a.unsubs {
		u()
	}
	a.unsubs = nil
}

// RemoveByID drops the card for the given item id, if present.
func (a *Adapter) RemoveByID(id uuid.UUID) bool {
	i := a.IndexOf(id)
	if i < 0 {
		return false
	}
	a.cards = append(a.cards[:i], a.cards[i+1:]...)
	a.fetched--
	if a.total > 0 {
		a.total--
	}
	return true
}

// ReplaceItem swaps in a freshly fetched copy of an item already in
// the row, keeping its position.
func (a *Adapter) ReplaceItem(item *model.Item) bool {
	i := a.IndexOf(item.ID)
	if i < 0 {
		return false
	}
	a.cards[i] = a.cardFor(item)
	return true
}

func (a *Adapter) cardFor(item *model.Item) *cards.Card {
	return &cards.Card{
		Item:               item,
		PreferParentThumb:  a.def.PreferParentThumb,
		PreferSeriesPoster: a.def.PreferSeriesPoster,
		StaticHeight:       a.def.StaticHeight,
	}
}
