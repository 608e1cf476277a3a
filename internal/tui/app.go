package tui

import (
	"context"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/mkarren/lanes/internal/cards"
	"github.com/mkarren/lanes/internal/model"
	"github.com/mkarren/lanes/internal/prefs"
	"github.com/mkarren/lanes/internal/rows"
	"github.com/mkarren/lanes/internal/search"
	"github.com/mkarren/lanes/internal/service"
	"github.com/mkarren/lanes/internal/signal"
	"github.com/mkarren/lanes/internal/tui/layout"
)

// resumeRetrieveDelay is how long after a resume the stale-row
// retrieval pass waits before running.
const resumeRetrieveDelay = 1500 * time.Millisecond

// noticeDuration is how long transient notices stay visible.
const noticeDuration = 3 * time.Second

// imageSettleDelay is how long a slot stays cleared before a still
// unfinished load falls back to the placeholder.
const imageSettleDelay = 500 * time.Millisecond

// App is the main bubbletea model for the browse surface.
type App struct {
	coordinator *rows.Coordinator
	items       service.ItemService
	urls        service.ImageURLBuilder
	images      service.ImageLoader
	backdrop    service.Backdrop
	keyHook     service.KeyProcessor
	nav         service.Navigator
	selCoord    *SelectionCoordinator
	router      *ClickRouter
	deletions   *signal.Deletions
	bus         *signal.Bus
	streamURL   func(uuid.UUID) string

	watchedMode prefs.WatchedIndicatorMode
	layoutMode  cards.LayoutMode
	imageType   model.ImageType

	keys   KeyMap
	styles Styles
	cfg    layout.LayoutConfig

	sel    SelectionState
	search SearchState
	info   InfoPanel
	notice string

	// rowCursor is the focused row; colCursors remembers the focused
	// card per row so vertical moves restore position.
	rowCursor  int
	colCursors []int

	// rowGens invalidate in-flight page fetches after a restart;
	// resumeGen does the same for delayed resume ticks.
	rowGens   []int
	resumeGen int
	active    bool

	lastKeyWasG bool

	width  int
	height int
}

// AppParams holds parameters for creating a new App. Every dependency
// comes in here; the app reaches for nothing ambient.
type AppParams struct {
	Coordinator *rows.Coordinator
	Items       service.ItemService
	ImageURLs   service.ImageURLBuilder
	Images      service.ImageLoader
	Navigator   service.Navigator
	Launcher    service.Launcher
	Backdrop    service.Backdrop
	Markdown    service.MarkdownRenderer
	KeyHook     service.KeyProcessor // optional
	Deletions   *signal.Deletions
	Bus         *signal.Bus
	StreamURL   func(uuid.UUID) string // optional, enables yank

	WatchedMode prefs.WatchedIndicatorMode
	RatingMode  prefs.RatingMode
	LayoutMode  cards.LayoutMode
	ImageType   model.ImageType

	Keys   *KeyMap // optional, uses default if nil
	Styles *Styles // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	cfg := layout.DefaultConfig()
	n := params.Coordinator.NumRows()

	return App{
		coordinator: params.Coordinator,
		items:       params.Items,
		urls:        params.ImageURLs,
		images:      params.Images,
		backdrop:    params.Backdrop,
		keyHook:     params.KeyHook,
		nav:         params.Navigator,
		selCoord:    NewSelectionCoordinator(params.Markdown, params.Backdrop, params.RatingMode),
		router:      NewClickRouter(params.Items, params.Navigator, params.Launcher),
		deletions:   params.Deletions,
		bus:         params.Bus,
		streamURL:   params.StreamURL,
		watchedMode: params.WatchedMode,
		layoutMode:  params.LayoutMode,
		imageType:   params.ImageType,
		keys:        keys,
		styles:      styles,
		cfg:         cfg,
		search:      NewSearchState(cfg),
		colCursors:  make([]int, n),
		rowGens:     make([]int, n),
		active:      true,
		width:       80,
		height:      24,
	}
}

// Selection returns the current selection state.
func (a App) Selection() SelectionState { return a.sel }

// Info returns the current info panel contents.
func (a App) Info() InfoPanel { return a.info }

// Init implements tea.Model. It kicks off the initial retrieval of
// every row.
func (a App) Init() tea.Cmd {
	return a.startRequests(a.coordinator.InitialRequests())
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.FocusMsg:
		return a.handleResume()

	case tea.BlurMsg:
		a.active = false
		if a.backdrop != nil {
			if err := a.backdrop.ClearBackgrounds(); err != nil {
				log.Printf("clear backdrop: %v", err)
			}
		}
		return a, nil

	case resumeTickMsg:
		if !a.active || msg.gen != a.resumeGen {
			return a, nil
		}
		return a, a.startRequests(a.coordinator.RetrievePass())

	case pageFetchedMsg:
		return a.handlePageFetched(msg)

	case pageFailedMsg:
		if msg.row < len(a.rowGens) && msg.gen == a.rowGens[msg.row] {
			if row := a.coordinator.Row(msg.row); row != nil {
				row.FailRetrieve(msg.err)
			}
			log.Printf("row %d fetch: %v", msg.row, msg.err)
		}
		return a, nil

	case imageSettleMsg:
		if card := a.cardAt(msg.row, msg.index); card != nil {
			card.Slot.Settle(msg.url)
		}
		return a, nil

	case imageLoadedMsg:
		if card := a.cardAt(msg.row, msg.index); card != nil {
			if card.Slot.Complete(msg.url) {
				card.Tint = msg.tint
			}
		}
		return a, nil

	case imageFailedMsg:
		if card := a.cardAt(msg.row, msg.index); card != nil {
			card.Slot.Fail(msg.url)
		}
		return a, nil

	case randomItemMsg:
		if msg.err != nil {
			log.Printf("random item: %v", msg.err)
			return a.setNotice("No item found")
		}
		// Albums open as a track list; everything else as details.
		dest := service.ItemDetails(msg.item.ID)
		if msg.item.Kind == model.KindMusicAlbum {
			dest = service.ItemList(msg.item.ID)
		}
		if err := a.nav.Navigate(dest); err != nil {
			log.Printf("random item: %v", err)
		}
		return a, nil

	case noticeExpiredMsg:
		a.notice = ""
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

// handleResume applies the resume protocol: reconcile a pending
// deletion against the selection immediately, then schedule the
// delayed stale-row pass. The first resume after construction skips
// the pass; the initial load already ran.
func (a App) handleResume() (tea.Model, tea.Cmd) {
	a.active = true

	if a.coordinator.ReconcileDeletion(a.deletions, a.sel.Card(), a.sel.Row()) {
		a.clampCursor(a.sel.RowIndex())
		a.reselect()
	}

	if a.coordinator.ConsumeFirstLoad() {
		return a, nil
	}

	a.resumeGen++
	gen := a.resumeGen
	return a, tea.Tick(resumeRetrieveDelay, func(time.Time) tea.Msg {
		return resumeTickMsg{gen: gen}
	})
}

func (a App) handlePageFetched(msg pageFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.row >= len(a.rowGens) || msg.gen != a.rowGens[msg.row] {
		return a, nil
	}
	row := a.coordinator.Row(msg.row)
	if row == nil {
		return a, nil
	}

	first := row.Len()
	row.ApplyPage(msg.page)

	var cmds []tea.Cmd
	for i := first; i < row.Len(); i++ {
		if cmd := a.loadImageCmd(msg.row, i); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	// First content to arrive claims the selection.
	if a.sel.Empty() && row.Len() > 0 {
		a.rowCursor = msg.row
		a.colCursors[msg.row] = 0
		a.reselect()
	}

	a.clampCursor(msg.row)
	return a, tea.Batch(cmds...)
}

// loadImageCmd resolves the card's image and starts its fetch. Returns
// nil when the slot already holds that URL.
func (a *App) loadImageCmd(rowIdx, cardIdx int) tea.Cmd {
	row := a.coordinator.Row(rowIdx)
	card := a.cardAt(rowIdx, cardIdx)
	if row == nil || card == nil || card.Item == nil {
		return nil
	}

	policy := cards.Classify(card, cards.Options{ImageType: a.imageType})
	w, h := cards.ResolveDimensions(policy, card.StaticHeight, row.Heights(), a.layoutMode, a.imageType)
	handle := cards.ResolveImage(card, a.imageType, a.urls, w, h)
	if handle.URL == "" || !card.Slot.Begin(handle.URL) {
		return nil
	}

	tint := ""
	if handle.BlurHash != "" {
		if t, ok := cards.TintFromBlurHash(handle.BlurHash); ok {
			tint = t
		}
	}

	url := handle.URL
	loader := a.images
	load := func() tea.Msg {
		if _, err := loader.LoadImage(context.Background(), url); err != nil {
			return imageFailedMsg{row: rowIdx, index: cardIdx, url: url, err: err}
		}
		return imageLoadedMsg{row: rowIdx, index: cardIdx, url: url, tint: tint}
	}
	settle := tea.Tick(imageSettleDelay, func(time.Time) tea.Msg {
		return imageSettleMsg{row: rowIdx, index: cardIdx, url: url}
	})
	return tea.Batch(load, settle)
}

// startRequests turns coordinator fetch requests into commands, bumping
// each row's generation so stale in-flight pages get dropped.
func (a *App) startRequests(reqs []rows.RowRequest) tea.Cmd {
	if len(reqs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(reqs))
	for _, rr := range reqs {
		a.rowGens[rr.Row]++
		cmds = append(cmds, a.fetchCmd(rr))
	}
	return tea.Batch(cmds...)
}

func (a *App) fetchCmd(rr rows.RowRequest) tea.Cmd {
	gen := a.rowGens[rr.Row]
	items := a.items
	return func() tea.Msg {
		page, err := items.FetchPage(context.Background(), rr.Req.Query, rr.Req.Offset, rr.Req.Limit)
		if err != nil {
			return pageFailedMsg{row: rr.Row, gen: gen, err: err}
		}
		return pageFetchedMsg{row: rr.Row, gen: gen, page: page}
	}
}

func (a *App) cardAt(rowIdx, cardIdx int) *cards.Card {
	row := a.coordinator.Row(rowIdx)
	if row == nil {
		return nil
	}
	return row.Card(cardIdx)
}

// reselect re-derives the selection and info panel from the cursors.
func (a *App) reselect() {
	row := a.coordinator.Row(a.rowCursor)
	if row == nil || row.Len() == 0 {
		a.sel.Clear()
		a.info = InfoPanel{}
		if a.backdrop != nil {
			if err := a.backdrop.ClearBackgrounds(); err != nil {
				log.Printf("clear backdrop: %v", err)
			}
		}
		return
	}

	idx := a.colCursors[a.rowCursor]
	card := row.Card(idx)
	a.sel.Set(card, row, a.rowCursor, idx)

	panel, err := a.selCoord.Select(card)
	if err != nil {
		log.Printf("select: %v", err)
	}
	a.info = panel
}

func (a *App) clampCursor(rowIdx int) {
	row := a.coordinator.Row(rowIdx)
	if row == nil {
		return
	}
	if a.colCursors[rowIdx] >= row.Len() {
		a.colCursors[rowIdx] = row.Len() - 1
	}
	if a.colCursors[rowIdx] < 0 {
		a.colCursors[rowIdx] = 0
	}
}

func (a App) setNotice(text string) (tea.Model, tea.Cmd) {
	a.notice = text
	return a, tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.search.Active {
		return a.handleSearchKey(msg)
	}

	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.rowCursor = 0
			a.lastKeyWasG = false
			a.reselect()
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if a.rowCursor < a.coordinator.NumRows()-1 {
			a.rowCursor++
			a.reselect()
		}
		return a, nil

	case key.Matches(msg, a.keys.Up):
		if a.rowCursor > 0 {
			a.rowCursor--
			a.reselect()
		}
		return a, nil

	case key.Matches(msg, a.keys.Bottom):
		if n := a.coordinator.NumRows(); n > 0 {
			a.rowCursor = n - 1
			a.reselect()
		}
		return a, nil

	case key.Matches(msg, a.keys.Right):
		return a.moveInRow(1)

	case key.Matches(msg, a.keys.Left):
		return a.moveInRow(-1)

	case key.Matches(msg, a.keys.RowStart):
		a.colCursors[a.rowCursor] = 0
		a.reselect()
		return a, nil

	case key.Matches(msg, a.keys.RowEnd):
		if row := a.coordinator.Row(a.rowCursor); row != nil && row.Len() > 0 {
			a.colCursors[a.rowCursor] = row.Len() - 1
			a.reselect()
		}
		return a, nil

	case key.Matches(msg, a.keys.Open):
		cmd, err := a.router.Click(a.sel.Card(), a.coordinator.Folder())
		if err != nil {
			log.Printf("click: %v", err)
			return a.setNotice("Not available")
		}
		return a, cmd

	case key.Matches(msg, a.keys.YankURL):
		return a.yankStreamURL()

	case key.Matches(msg, a.keys.Delete):
		return a.deleteSelected()

	case key.Matches(msg, a.keys.Refresh):
		a.bus.Publish(signal.TriggerLibraryUpdated)
		return a, a.startRequests(a.coordinator.RetrievePass())

	case key.Matches(msg, a.keys.Search):
		a.search.Active = true
		a.search.Input.Focus()
		return a, nil
	}

	// Unhandled keys go to the host hook.
	if a.keyHook != nil {
		var item *model.Item
		if card := a.sel.Card(); card != nil {
			item = card.Item
		}
		if a.keyHook.HandleKey(msg.String(), item) {
			return a, nil
		}
	}

	return a, nil
}

// moveInRow shifts the focused card and fires the pagination lookahead
// when focus nears the loaded tail.
func (a App) moveInRow(delta int) (tea.Model, tea.Cmd) {
	row := a.coordinator.Row(a.rowCursor)
	if row == nil || row.Len() == 0 {
		return a, nil
	}

	idx := a.colCursors[a.rowCursor] + delta
	if idx < 0 || idx >= row.Len() {
		return a, nil
	}
	a.colCursors[a.rowCursor] = idx
	a.reselect()

	if rr, ok := a.coordinator.LookaheadRequest(a.rowCursor, idx); ok {
		a.rowGens[rr.Row]++
		return a, a.fetchCmd(rr)
	}
	return a, nil
}

func (a App) yankStreamURL() (tea.Model, tea.Cmd) {
	card := a.sel.Card()
	if card == nil || card.Item == nil || a.streamURL == nil {
		return a, nil
	}
	if err := clipboard.WriteAll(a.streamURL(card.Item.ID)); err != nil {
		log.Printf("yank stream url: %v", err)
		return a.setNotice("Clipboard unavailable")
	}
	return a.setNotice("Stream URL copied")
}

// deleteSelected records the deletion and reconciles it right away,
// removing the card from its owning row and moving the selection.
func (a App) deleteSelected() (tea.Model, tea.Cmd) {
	card := a.sel.Card()
	if card == nil || card.Item == nil {
		return a, nil
	}

	a.deletions.Set(card.Item.ID)
	if a.coordinator.ReconcileDeletion(a.deletions, card, a.sel.Row()) {
		a.clampCursor(a.rowCursor)
		a.reselect()
	}
	return a, nil
}

func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.search.Reset()
		return a, nil

	case "enter":
		result := a.search.Current()
		a.search.Reset()
		if result != nil {
			a.rowCursor = result.Row
			a.colCursors[result.Row] = result.Index
			a.reselect()
		}
		return a, nil

	case "down", "ctrl+n":
		if a.search.Cursor < len(a.search.Results)-1 {
			a.search.Cursor++
		}
		return a, nil

	case "up", "ctrl+p":
		if a.search.Cursor > 0 {
			a.search.Cursor--
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.search.Input, cmd = a.search.Input.Update(msg)
	a.search.Results = search.FuzzySearchRows(a.coordinator, a.search.Input.Value())
	a.search.Cursor = 0
	return a, cmd
}
