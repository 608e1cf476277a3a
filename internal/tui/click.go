package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarren/lanes/internal/cards"
	"github.com/mkarren/lanes/internal/model"
	"github.com/mkarren/lanes/internal/service"
)

// ErrUnsupportedButton marks grid buttons with no wired destination.
var ErrUnsupportedButton = errors.New("button not supported here")

// ClickRouter routes card activation: items go to the launcher, grid
// buttons map to navigation destinations relative to the browsed
// folder.
type ClickRouter struct {
	items    service.ItemService
	nav      service.Navigator
	launcher service.Launcher
}

// NewClickRouter creates a router over the given services.
func NewClickRouter(items service.ItemService, nav service.Navigator, launcher service.Launcher) *ClickRouter {
	return &ClickRouter{items: items, nav: nav, launcher: launcher}
}

// Click activates a card within the given folder. The returned command
// is non-nil only for buttons that need an async fetch (random).
func (r *ClickRouter) Click(card *cards.Card, folder *model.Item) (tea.Cmd, error) {
	if card == nil {
		return nil, nil
	}
	if card.Item != nil {
		return nil, r.launcher.Launch(card.Item)
	}
	if card.Button == nil {
		return nil, nil
	}
	return r.clickButton(card.Button, folder)
}

func (r *ClickRouter) clickButton(button *model.GridButton, folder *model.Item) (tea.Cmd, error) {
	if folder == nil {
		return nil, fmt.Errorf("%w: no folder context", ErrUnsupportedButton)
	}

	switch button.ID {
	case model.ButtonAllItems:
		return nil, r.nav.Navigate(service.LibraryBrowse(folder.ID, ""))

	case model.ButtonRandom:
		folderID := folder.ID
		kind := randomKind(folder.CollectionType)
		return func() tea.Msg {
			item, err := r.items.RandomItem(context.Background(), folderID, kind)
			return randomItemMsg{item: item, err: err}
		}, nil

	case model.ButtonAlbums:
		return nil, r.nav.Navigate(service.LibraryBrowse(folder.ID, model.KindMusicAlbum.String()))

	case model.ButtonAlbumArtists:
		return nil, r.nav.Navigate(service.LibraryBrowse(folder.ID, "AlbumArtist"))

	case model.ButtonArtists:
		return nil, r.nav.Navigate(service.LibraryBrowse(folder.ID, model.KindMusicArtist.String()))

	case model.ButtonFavoriteSongs:
		return nil, r.nav.Navigate(service.MusicFavorites(folder.ID))

	case model.ButtonSchedule:
		return nil, r.nav.Navigate(service.LiveTv(service.DestLiveTvSchedule))

	case model.ButtonSeriesRecordings:
		return nil, r.nav.Navigate(service.LiveTv(service.DestLiveTvSeriesRecordings))

	case model.ButtonLiveTvGuide:
		return nil, r.nav.Navigate(service.LiveTv(service.DestLiveTvGuide))

	case model.ButtonLiveTvRecordings:
		return nil, r.nav.Navigate(service.LiveTv(service.DestLiveTvRecordings))

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedButton, button.Label)
	}
}

// randomKind picks the item kind the random button draws from.
func randomKind(ct model.CollectionType) model.ItemKind {
	switch ct {
	case model.CollectionTVShows:
		return model.KindSeries
	default:
		return model.KindMovie
	}
}
