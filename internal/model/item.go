package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemKind identifies what kind of entity an Item represents.
// It is a closed set; every value has a classification rule in the
// cards package.
type ItemKind int

const (
	KindMovie ItemKind = iota
	KindVideo
	KindSeries
	KindSeason
	KindEpisode
	KindAudio
	KindMusicAlbum
	KindMusicArtist
	KindPerson
	KindCollectionFolder
	KindUserView
	KindFolder
	KindGenre
	KindMusicGenre
	KindPhoto
	KindPhotoAlbum
	KindPlaylist
	KindLiveTvChannel
	KindLiveTvProgram
	KindLiveTvRecording
	KindChapter
	KindSeriesTimer
)

// String returns the kind name as used by the server API.
func (k ItemKind) String() string {
	switch k {
	case KindMovie:
		return "Movie"
	case KindVideo:
		return "Video"
	case KindSeries:
		return "Series"
	case KindSeason:
		return "Season"
	case KindEpisode:
		return "Episode"
	case KindAudio:
		return "Audio"
	case KindMusicAlbum:
		return "MusicAlbum"
	case KindMusicArtist:
		return "MusicArtist"
	case KindPerson:
		return "Person"
	case KindCollectionFolder:
		return "CollectionFolder"
	case KindUserView:
		return "UserView"
	case KindFolder:
		return "Folder"
	case KindGenre:
		return "Genre"
	case KindMusicGenre:
		return "MusicGenre"
	case KindPhoto:
		return "Photo"
	case KindPhotoAlbum:
		return "PhotoAlbum"
	case KindPlaylist:
		return "Playlist"
	case KindLiveTvChannel:
		return "TvChannel"
	case KindLiveTvProgram:
		return "Program"
	case KindLiveTvRecording:
		return "Recording"
	case KindChapter:
		return "Chapter"
	case KindSeriesTimer:
		return "SeriesTimer"
	default:
		return "Unknown"
	}
}

// KindFromString maps a server kind name back to an ItemKind.
// Unknown names map to KindFolder, which takes the most neutral
// presentation policy.
func KindFromString(s string) ItemKind {
	for k := KindMovie; k <= KindSeriesTimer; k++ {
		if k.String() == s {
			return k
		}
	}
	return KindFolder
}

// CollectionType describes what a library folder contains.
type CollectionType int

const (
	CollectionOther CollectionType = iota
	CollectionMovies
	CollectionTVShows
	CollectionMusic
	CollectionLiveTV
)

// ImageKind identifies one of an item's server-side images.
type ImageKind int

const (
	ImagePrimary ImageKind = iota
	ImageThumb
	ImageBanner
	ImageLogo
	ImageBackdrop
)

// ImageType is the image shape a row requests for its cards.
type ImageType int

const (
	ImageTypePoster ImageType = iota
	ImageTypeBanner
	ImageTypeThumb
)

// UserData carries per-user playback state for an item.
type UserData struct {
	Played                bool
	UnplayedItemCount     *int
	PlaybackPositionTicks int64
	Favorite              bool
}

// Item is the normalized, read-only view of one browsable entity.
// It is derived from the server item record and re-derived on refresh,
// never mutated in place.
type Item struct {
	ID             uuid.UUID
	Kind           ItemKind
	Name           string
	Subtitle       string
	Summary        string
	CollectionType CollectionType

	// PrimaryAspect is the server-reported aspect ratio of the primary
	// image. Zero means unknown.
	PrimaryAspect float64

	ImageTags  map[ImageKind]string
	BlurHashes map[ImageKind]string

	ParentThumbItemID uuid.UUID
	ParentThumbTag    string
	SeriesID          uuid.UUID
	SeriesPrimaryTag  string

	// LocationVirtual marks items with no media behind them (future or
	// missing episodes, guide-only programs).
	LocationVirtual bool
	PremiereDate    *time.Time
	StartDate       *time.Time

	RunTimeTicks    int64
	CommunityRating float32
	ProductionYear  int

	UserData *UserData
}

// HasImage reports whether the item carries a tag for the given image.
func (i *Item) HasImage(kind ImageKind) bool {
	return i.ImageTags[kind] != ""
}

// Favorite reports the user's favorite flag, absent data reading as false.
func (i *Item) Favorite() bool {
	return i.UserData != nil && i.UserData.Favorite
}

// ProgressPercent returns playback progress in whole percent, or 0 when
// the item has no runtime or no recorded position.
func (i *Item) ProgressPercent() int {
	if i.UserData == nil || i.RunTimeTicks <= 0 || i.UserData.PlaybackPositionTicks <= 0 {
		return 0
	}
	return int(float64(i.UserData.PlaybackPositionTicks) * 100.0 / float64(i.RunTimeTicks))
}
