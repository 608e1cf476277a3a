package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkarren/lanes/internal/model"
)

// Query describes one item page request. Row definitions hold a Query;
// the item service interprets it.
type Query struct {
	ParentID   uuid.UUID
	Kinds      []model.ItemKind
	Filters    []string
	SortBy     string
	SortOrder  string
	SearchTerm string
}

// ItemService fetches pages of browsable items.
type ItemService interface {
	FetchPage(ctx context.Context, q Query, offset, limit int) (model.ItemPage, error)
	RandomItem(ctx context.Context, parentID uuid.UUID, kind model.ItemKind) (model.Item, error)
}

// ImageURLBuilder builds fetchable URLs for server-side images.
type ImageURLBuilder interface {
	ImageURL(itemID uuid.UUID, kind model.ImageKind, tag string, width, height int) string
	// FallbackImageURL synthesizes a primary-image URL from dimensions
	// alone, for items that report no usable image tag.
	FallbackImageURL(itemID uuid.UUID, width, height int) string
}

// ImageLoader fetches image bytes. Loads run off the owner loop; results
// are delivered back as messages.
type ImageLoader interface {
	LoadImage(ctx context.Context, url string) ([]byte, error)
}

// DestinationKind enumerates the navigation targets the browse surface
// can ask for. Destinations are opaque to this module.
type DestinationKind int

const (
	DestLibraryBrowse DestinationKind = iota
	DestItemList
	DestItemDetails
	DestMusicFavorites
	DestLiveTvGuide
	DestLiveTvSchedule
	DestLiveTvRecordings
	DestLiveTvSeriesRecordings
)

// Destination is an opaque navigation token.
type Destination struct {
	Kind   DestinationKind
	ItemID uuid.UUID
	// KindFilter narrows a library browse to one item kind
	// (e.g. album-artist sub-browse).
	KindFilter string
}

// LibraryBrowse targets a library folder, optionally narrowed to a kind.
func LibraryBrowse(folderID uuid.UUID, kindFilter string) Destination {
	return Destination{Kind: DestLibraryBrowse, ItemID: folderID, KindFilter: kindFilter}
}

// ItemList targets the flat list view of an item (albums, playlists).
func ItemList(itemID uuid.UUID) Destination {
	return Destination{Kind: DestItemList, ItemID: itemID}
}

// ItemDetails targets the detail view of an item.
func ItemDetails(itemID uuid.UUID) Destination {
	return Destination{Kind: DestItemDetails, ItemID: itemID}
}

// MusicFavorites targets the favorite-songs view of a music library.
func MusicFavorites(folderID uuid.UUID) Destination {
	return Destination{Kind: DestMusicFavorites, ItemID: folderID}
}

// LiveTv returns the fixed live-TV destinations.
func LiveTv(kind DestinationKind) Destination {
	return Destination{Kind: kind}
}

// Navigator performs navigation to a destination.
type Navigator interface {
	Navigate(dest Destination) error
}

// Launcher launches a normal (non-button) item: playback, drill-down,
// whatever the host decides.
type Launcher interface {
	Launch(item *model.Item) error
}

// Backdrop synchronizes full-surface background imagery with the
// current selection.
type Backdrop interface {
	SetBackground(item *model.Item) error
	ClearBackgrounds() error
}

// MarkdownRenderer renders item summaries for the info panel.
type MarkdownRenderer interface {
	Render(text string) (string, error)
}

// KeyProcessor receives key events the browse surface does not handle
// itself. Reports whether the key was consumed.
type KeyProcessor interface {
	HandleKey(key string, item *model.Item) bool
}
