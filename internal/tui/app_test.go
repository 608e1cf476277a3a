package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/mkarren/lanes/internal/model"
	"github.com/mkarren/lanes/internal/rows"
	"github.com/mkarren/lanes/internal/service"
	"github.com/mkarren/lanes/internal/signal"
)

// fakeURLs yields no URLs by default, keeping image commands out of
// tests that do not care about them.
type fakeURLs struct{ base string }

func (f fakeURLs) ImageURL(id uuid.UUID, kind model.ImageKind, tag string, w, h int) string {
	if f.base == "" {
		return ""
	}
	return f.base + "/" + tag
}

func (f fakeURLs) FallbackImageURL(uuid.UUID, int, int) string {
	if f.base == "" {
		return ""
	}
	return f.base + "/fallback"
}

type fakeImages struct{}

func (fakeImages) LoadImage(context.Context, string) ([]byte, error) { return nil, nil }

func appFixture(t *testing.T) (App, *fakeBackdrop) {
	t.Helper()

	bus := signal.NewBus()
	coord := rows.NewCoordinator(rows.Params{
		Defs: []rows.Definition{
			{Header: "Latest Movies", Kind: rows.QueryLatestItems},
			{Header: "Favorites"},
		},
		Bus: bus,
	})

	bd := &fakeBackdrop{}
	app := NewApp(AppParams{
		Coordinator: coord,
		Items:       &fakeItems{},
		ImageURLs:   fakeURLs{},
		Images:      fakeImages{},
		Navigator:   &fakeNavigator{},
		Launcher:    &fakeLauncher{},
		Backdrop:    bd,
		Markdown:    fakeMarkdown{},
		Deletions:   signal.NewDeletions(),
		Bus:         bus,
	})

	// Bumps every row's generation to 1.
	_ = app.Init()
	return app, bd
}

func pageOf(names ...string) model.ItemPage {
	items := make([]model.Item, len(names))
	for i, n := range names {
		items[i] = model.Item{ID: uuid.New(), Kind: model.KindMovie, Name: n}
	}
	return model.ItemPage{Items: items, TotalCount: len(items)}
}

// loadedApp delivers a page to each row: 3 cards in row 0, 2 in row 1.
func loadedApp(t *testing.T) App {
	t.Helper()
	app, _ := appFixture(t)

	updated, _ := app.Update(pageFetchedMsg{row: 0, gen: 1, page: pageOf("Heat", "Ronin", "Thief")})
	app = updated.(App)
	updated, _ = app.Update(pageFetchedMsg{row: 1, gen: 1, page: pageOf("Alien", "Aliens")})
	return updated.(App)
}

func press(t *testing.T, app App, r rune) App {
	t.Helper()
	updated, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(App)
}

func TestApp_FirstPageClaimsSelection(t *testing.T) {
	app, _ := appFixture(t)

	if !app.Selection().Empty() {
		t.Fatal("selection must start empty")
	}

	// Row 1 finishes first; whichever row loads first gets the focus.
	updated, _ := app.Update(pageFetchedMsg{row: 1, gen: 1, page: pageOf("Alien", "Aliens")})
	app = updated.(App)

	sel := app.Selection()
	if sel.Empty() {
		t.Fatal("first loaded page must claim the selection")
	}
	if sel.RowIndex() != 1 || sel.CardIndex() != 0 {
		t.Errorf("expected selection at (1, 0), got (%d, %d)", sel.RowIndex(), sel.CardIndex())
	}
	if got := sel.Card().Item.Name; got != "Alien" {
		t.Errorf("expected Alien selected, got %q", got)
	}
	if app.Info().Title != "Alien" {
		t.Errorf("info panel title = %q, want Alien", app.Info().Title)
	}
}

func TestApp_StalePageIsDropped(t *testing.T) {
	app, _ := appFixture(t)

	// gen 0 predates Init's generation bump.
	updated, _ := app.Update(pageFetchedMsg{row: 0, gen: 0, page: pageOf("Heat")})
	app = updated.(App)

	if !app.Selection().Empty() {
		t.Error("stale page must not claim the selection")
	}
}

func TestApp_Navigation_JK(t *testing.T) {
	app := loadedApp(t)

	if app.Selection().RowIndex() != 0 {
		t.Fatalf("expected focus on row 0, got %d", app.Selection().RowIndex())
	}

	app = press(t, app, 'j')
	if app.Selection().RowIndex() != 1 {
		t.Errorf("after j, expected row 1, got %d", app.Selection().RowIndex())
	}

	app = press(t, app, 'k')
	if app.Selection().RowIndex() != 0 {
		t.Errorf("after k, expected row 0, got %d", app.Selection().RowIndex())
	}

	// k at the top stays put.
	app = press(t, app, 'k')
	if app.Selection().RowIndex() != 0 {
		t.Errorf("k at top should stay on row 0, got %d", app.Selection().RowIndex())
	}
}

func TestApp_Navigation_JK_AtBounds(t *testing.T) {
	app := loadedApp(t)

	app = press(t, app, 'j')
	app = press(t, app, 'j')
	if app.Selection().RowIndex() != 1 {
		t.Errorf("j at bottom should stay on row 1, got %d", app.Selection().RowIndex())
	}
}

func TestApp_Navigation_HL(t *testing.T) {
	app := loadedApp(t)

	app = press(t, app, 'l')
	if app.Selection().CardIndex() != 1 {
		t.Errorf("after l, expected card 1, got %d", app.Selection().CardIndex())
	}

	app = press(t, app, 'h')
	if app.Selection().CardIndex() != 0 {
		t.Errorf("after h, expected card 0, got %d", app.Selection().CardIndex())
	}

	app = press(t, app, 'h')
	if app.Selection().CardIndex() != 0 {
		t.Errorf("h at row start should stay on card 0, got %d", app.Selection().CardIndex())
	}
}

func TestApp_ColumnMemoryPerRow(t *testing.T) {
	app := loadedApp(t)

	// Move to the second card of row 0, visit row 1, come back.
	app = press(t, app, 'l')
	app = press(t, app, 'j')
	if app.Selection().CardIndex() != 0 {
		t.Fatalf("row 1 starts at card 0, got %d", app.Selection().CardIndex())
	}

	app = press(t, app, 'k')
	if app.Selection().CardIndex() != 1 {
		t.Errorf("returning to row 0 must restore card 1, got %d", app.Selection().CardIndex())
	}
}

func TestApp_TopAndBottomKeys(t *testing.T) {
	app := loadedApp(t)

	app = press(t, app, 'G')
	if app.Selection().RowIndex() != 1 {
		t.Errorf("after G, expected last row, got %d", app.Selection().RowIndex())
	}

	// A single g is only half the sequence.
	app = press(t, app, 'g')
	if app.Selection().RowIndex() != 1 {
		t.Errorf("single g must not move, got row %d", app.Selection().RowIndex())
	}

	app = press(t, app, 'g')
	if app.Selection().RowIndex() != 0 {
		t.Errorf("after gg, expected row 0, got %d", app.Selection().RowIndex())
	}
}

func TestApp_DeleteMovesSelection(t *testing.T) {
	app := loadedApp(t)

	deleted := app.Selection().Card().Item.ID
	app = press(t, app, 'd')

	sel := app.Selection()
	if sel.Empty() {
		t.Fatal("selection must move, not clear")
	}
	if sel.Card().Item.ID == deleted {
		t.Error("selection still points at the deleted item")
	}
	if got := sel.Card().Item.Name; got != "Ronin" {
		t.Errorf("expected next card Ronin selected, got %q", got)
	}
	if sel.Row().Len() != 2 {
		t.Errorf("row should have 2 cards left, got %d", sel.Row().Len())
	}
}

func TestApp_RandomNavigatesByKind(t *testing.T) {
	tests := []struct {
		name string
		kind model.ItemKind
		want service.DestinationKind
	}{
		{"album opens the track list", model.KindMusicAlbum, service.DestItemList},
		{"movie opens details", model.KindMovie, service.DestItemDetails},
		{"series opens details", model.KindSeries, service.DestItemDetails},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := signal.NewBus()
			coord := rows.NewCoordinator(rows.Params{
				Defs: []rows.Definition{{Header: "Latest Movies"}},
				Bus:  bus,
			})
			nav := &fakeNavigator{}
			launcher := &fakeLauncher{}
			app := NewApp(AppParams{
				Coordinator: coord,
				Items:       &fakeItems{},
				ImageURLs:   fakeURLs{},
				Images:      fakeImages{},
				Navigator:   nav,
				Launcher:    launcher,
				Backdrop:    &fakeBackdrop{},
				Markdown:    fakeMarkdown{},
				Deletions:   signal.NewDeletions(),
				Bus:         bus,
			})

			item := model.Item{ID: uuid.New(), Kind: tt.kind, Name: "Pick"}
			updated, _ := app.Update(randomItemMsg{item: item})
			_ = updated.(App)

			if len(launcher.launched) != 0 {
				t.Error("random picks navigate, they do not launch")
			}
			if len(nav.dests) != 1 {
				t.Fatalf("expected 1 navigation, got %d", len(nav.dests))
			}
			dest := nav.dests[0]
			if dest.Kind != tt.want {
				t.Errorf("destination kind = %v, want %v", dest.Kind, tt.want)
			}
			if dest.ItemID != item.ID {
				t.Error("destination must carry the picked item's id")
			}
		})
	}
}

func TestApp_DeletingLastCardClearsBackdrop(t *testing.T) {
	app, bd := appFixture(t)

	updated, _ := app.Update(pageFetchedMsg{row: 0, gen: 1, page: pageOf("Heat")})
	app = updated.(App)

	app = press(t, app, 'd')

	if !app.Selection().Empty() {
		t.Fatal("deleting the only card must empty the selection")
	}
	if bd.cleared != 1 {
		t.Errorf("emptied selection must clear the backdrop, got %d clears", bd.cleared)
	}
}

func TestApp_ImageSettleClearsPending(t *testing.T) {
	bus := signal.NewBus()
	coord := rows.NewCoordinator(rows.Params{
		Defs: []rows.Definition{{Header: "Latest Movies"}},
		Bus:  bus,
	})
	app := NewApp(AppParams{
		Coordinator: coord,
		Items:       &fakeItems{},
		ImageURLs:   fakeURLs{base: "http://img"},
		Images:      fakeImages{},
		Navigator:   &fakeNavigator{},
		Launcher:    &fakeLauncher{},
		Backdrop:    &fakeBackdrop{},
		Markdown:    fakeMarkdown{},
		Deletions:   signal.NewDeletions(),
		Bus:         bus,
	})
	_ = app.Init()

	updated, cmd := app.Update(pageFetchedMsg{row: 0, gen: 1, page: pageOf("Heat")})
	app = updated.(App)
	if cmd == nil {
		t.Fatal("a fetched page with an image must start load and settle commands")
	}

	card := coord.Row(0).Card(0)
	url := card.Slot.CurrentURL()
	if url == "" || !card.Slot.Pending() {
		t.Fatalf("slot must be pending on %q while its load is in flight", url)
	}

	updated, _ = app.Update(imageSettleMsg{row: 0, index: 0, url: url})
	app = updated.(App)
	if card.Slot.Pending() {
		t.Error("the settle pass must drop the slot back to the placeholder")
	}
	if card.Slot.Displayed() {
		t.Error("a settled slot has no image yet")
	}

	// A late result for the current url still lands.
	updated, _ = app.Update(imageLoadedMsg{row: 0, index: 0, url: url, tint: "#101010"})
	_ = updated.(App)
	if !card.Slot.Displayed() {
		t.Error("a late load for the current url must still apply")
	}
}

func TestApp_BlurClearsBackdrop(t *testing.T) {
	app, bd := appFixture(t)

	updated, _ := app.Update(tea.BlurMsg{})
	_ = updated.(App)

	if bd.cleared != 1 {
		t.Errorf("expected 1 backdrop clear, got %d", bd.cleared)
	}
}

func TestApp_FirstResumeSkipsRetrievePass(t *testing.T) {
	app, _ := appFixture(t)

	// The initial load already ran; the first resume schedules nothing.
	updated, cmd := app.Update(tea.FocusMsg{})
	app = updated.(App)
	if cmd != nil {
		t.Error("first resume must not schedule a retrieve pass")
	}

	_, cmd = app.Update(tea.FocusMsg{})
	if cmd == nil {
		t.Error("later resumes must schedule the delayed retrieve pass")
	}
}
