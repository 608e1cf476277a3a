package rows

import (
	"github.com/mkarren/lanes/internal/cards"
	"github.com/mkarren/lanes/internal/model"
	"github.com/mkarren/lanes/internal/service"
	"github.com/mkarren/lanes/internal/signal"
)

// QueryKind tags a row with the item query it is built from. Closed
// enumeration; each kind maps to one adapter configuration.
type QueryKind int

const (
	QueryDefault QueryKind = iota
	QueryNextUp
	QueryLatestItems
	QueryViews
	QuerySimilarSeries
	QuerySimilarMovies
	QueryLiveTvChannel
	QueryLiveTvProgram
	QueryLiveTvRecording
	QueryPremieres
	QuerySeriesTimer
	QuerySpecials
)

// defaultChunkSize is used when a definition does not set its own.
const defaultChunkSize = 20

// liveTvChannelChunkSize: channel rows page in larger steps.
const liveTvChannelChunkSize = 40

// Definition describes one browse row. Created when the surface is
// configured and immutable thereafter; consumed exactly once to build
// one adapter.
type Definition struct {
	Header string
	Kind   QueryKind
	Query  service.Query

	ChunkSize int

	StaticHeight       bool
	PreferParentThumb  bool
	PreferSeriesPoster bool
	ImageType          model.ImageType

	// Heights overrides the default per-row height profile. Zero value
	// means cards.DefaultHeightProfile.
	Heights cards.HeightProfile

	// Triggers are the events that invalidate this row's cached
	// contents and force re-retrieval.
	Triggers []signal.Trigger
}

// chunk returns the effective page size for this definition.
func (d Definition) chunk() int {
	if d.ChunkSize > 0 {
		return d.ChunkSize
	}
	if d.Kind == QueryLiveTvChannel {
		return liveTvChannelChunkSize
	}
	return defaultChunkSize
}

// heights returns the effective height profile for this definition.
func (d Definition) heights() cards.HeightProfile {
	if d.Heights == (cards.HeightProfile{}) {
		return cards.DefaultHeightProfile
	}
	return d.Heights
}

// DefaultDefinitions builds the standard row set for a library folder,
// keyed off its collection type.
func DefaultDefinitions(folder *model.Item) []Definition {
	parent := folder.ID

	switch folder.CollectionType {
	case model.CollectionMovies:
		return []Definition{
			{
				Header:   "Latest Movies",
				Kind:     QueryLatestItems,
				Query:    service.Query{ParentID: parent, Kinds: []model.ItemKind{model.KindMovie}, SortBy: "DateCreated", SortOrder: "Descending"},
				Triggers: []signal.Trigger{signal.TriggerLibraryUpdated, signal.TriggerMoviePlayback},
			},
			{
				Header:   "Favorites",
				Kind:     QueryDefault,
				Query:    service.Query{ParentID: parent, Kinds: []model.ItemKind{model.KindMovie}, Filters: []string{"IsFavorite"}},
				Triggers: []signal.Trigger{signal.TriggerFavoriteUpdate},
			},
		}

	case model.CollectionTVShows:
		return []Definition{
			{
				Header:            "Next Up",
				Kind:              QueryNextUp,
				Query:             service.Query{ParentID: parent},
				PreferParentThumb: true,
				Heights:           cards.HeightProfile{Landscape: 130, Portrait: 150, Static: 122},
				StaticHeight:      true,
				Triggers:          []signal.Trigger{signal.TriggerTvPlayback, signal.TriggerLibraryUpdated},
			},
			{
				Header:   "Latest Shows",
				Kind:     QueryLatestItems,
				Query:    service.Query{ParentID: parent, Kinds: []model.ItemKind{model.KindSeries}, SortBy: "DateCreated", SortOrder: "Descending"},
				Triggers: []signal.Trigger{signal.TriggerLibraryUpdated},
			},
		}

	case model.CollectionMusic:
		return []Definition{
			{
				Header:   "Latest Albums",
				Kind:     QueryLatestItems,
				Query:    service.Query{ParentID: parent, Kinds: []model.ItemKind{model.KindMusicAlbum}, SortBy: "DateCreated", SortOrder: "Descending"},
				Triggers: []signal.Trigger{signal.TriggerLibraryUpdated, signal.TriggerMusicPlayback},
			},
			{
				Header:   "Favorites",
				Kind:     QueryDefault,
				Query:    service.Query{ParentID: parent, Kinds: []model.ItemKind{model.KindMusicAlbum}, Filters: []string{"IsFavorite"}},
				Triggers: []signal.Trigger{signal.TriggerFavoriteUpdate},
			},
		}

	case model.CollectionLiveTV:
		return []Definition{
			{
				Header:   "Channels",
				Kind:     QueryLiveTvChannel,
				Query:    service.Query{ParentID: parent, Kinds: []model.ItemKind{model.KindLiveTvChannel}},
				Triggers: []signal.Trigger{signal.TriggerGuideUpdated},
			},
			{
				Header:   "On Now",
				Kind:     QueryLiveTvProgram,
				Query:    service.Query{ParentID: parent, Kinds: []model.ItemKind{model.KindLiveTvProgram}},
				Triggers: []signal.Trigger{signal.TriggerGuideUpdated},
			},
		}

	default:
		return []Definition{
			{
				Header:   "Library",
				Kind:     QueryDefault,
				Query:    service.Query{ParentID: parent, SortBy: "SortName"},
				Triggers: []signal.Trigger{signal.TriggerLibraryUpdated},
			},
		}
	}
}
