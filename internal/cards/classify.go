package cards

import (
	"time"

	"github.com/mkarren/lanes/internal/model"
	"github.com/mkarren/lanes/internal/prefs"
)

// Aspect ratios used by the presentation policies.
const (
	AspectPoster = 2.0 / 3.0
	Aspect16x9   = 16.0 / 9.0
	Aspect7x9    = 7.0 / 9.0
	AspectBanner = 1000.0 / 185.0
	AspectSquare = 1.0
)

// squareClampThreshold: audio tiles narrower than this are forced square.
const squareClampThreshold = 0.8

// Placeholder identifies the default tile shown when a card has no
// loadable image.
type Placeholder int

const (
	PlaceholderVideo Placeholder = iota
	PlaceholderAudio
	PlaceholderPerson
	PlaceholderFolder
	PlaceholderPhoto
	PlaceholderTV
	PlaceholderChapter
	PlaceholderSeriesTimer
	PlaceholderBlur
)

// Banner marks the corner banner drawn over a card.
type Banner int

const (
	BannerNone Banner = iota
	BannerFuture
	BannerMissing
)

// Policy is the derived set of display decisions for one card. It is
// recomputed on every bind and never persisted.
type Policy struct {
	Placeholder  Placeholder
	Aspect       float64
	ShowWatched  bool
	ShowProgress bool
	Banner       Banner

	// InfoUnder forces the info-under display mode (episodes, programs,
	// series timers).
	InfoUnder bool
	// FitWithin makes the image fit inside the card instead of filling
	// it (channel logos).
	FitWithin bool

	// FixedWidth/FixedHeight pin the card to exact dimensions,
	// bypassing aspect-based sizing (live-TV programs).
	FixedWidth  int
	FixedHeight int

	// HeightScale shrinks the row height profile for this card
	// (episode cards). 1.0 when unset by Classify callers' fixtures.
	HeightScale float64
}

// Options carries the row-level context a classification depends on.
type Options struct {
	ImageType model.ImageType
	// UniformAspect forces square tiles for music rows that mix
	// albums and artists.
	UniformAspect bool
	// HomeScreen shrinks episode cards a further step.
	HomeScreen bool
	// Now anchors future/missing banner decisions; zero means the wall
	// clock.
	Now time.Time
}

// Classify maps a card to its presentation policy. Pure: identical
// (card, options) input always yields an identical policy.
func Classify(c *Card, opts Options) Policy {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	if c.Button != nil {
		return Policy{
			Placeholder: PlaceholderVideo,
			Aspect:      Aspect7x9,
			HeightScale: 1,
		}
	}

	item := c.Item
	requestedFixed := opts.ImageType == model.ImageTypeBanner || opts.ImageType == model.ImageTypeThumb

	p := Policy{
		Placeholder: PlaceholderBlur,
		ShowWatched: true,
		HeightScale: 1,
	}

	switch opts.ImageType {
	case model.ImageTypeBanner:
		p.Aspect = AspectBanner
	case model.ImageTypeThumb:
		p.Aspect = Aspect16x9
	default:
		p.Aspect = naturalAspect(item, c.PreferParentThumb)
	}

	switch item.Kind {
	case model.KindAudio, model.KindMusicAlbum:
		p.Placeholder = PlaceholderAudio
		if opts.UniformAspect || p.Aspect < squareClampThreshold {
			p.Aspect = AspectSquare
		}
		p.ShowWatched = false

	case model.KindMusicArtist:
		p.Placeholder = PlaceholderPerson
		if opts.UniformAspect || p.Aspect < squareClampThreshold {
			p.Aspect = AspectSquare
		}
		p.ShowWatched = false

	case model.KindPerson:
		p.Placeholder = PlaceholderPerson
		if !requestedFixed {
			p.Aspect = Aspect7x9
		}
		p.ShowWatched = false

	case model.KindSeason, model.KindSeries:
		if opts.ImageType == model.ImageTypePoster {
			p.Aspect = AspectPoster
		}

	case model.KindEpisode:
		if c.PreferSeriesPoster {
			p.Aspect = AspectPoster
			p.ShowProgress = true
			break
		}
		p.Aspect = Aspect16x9
		p.ShowProgress = true
		p.InfoUnder = true
		p.HeightScale = 0.9
		if opts.HomeScreen {
			p.HeightScale *= 0.8
		}
		if item.LocationVirtual {
			if item.PremiereDate == nil || item.PremiereDate.After(now) {
				p.Banner = BannerFuture
			} else {
				p.Banner = BannerMissing
			}
		}

	case model.KindCollectionFolder, model.KindUserView:
		// The server reports a bogus aspect of 1 for views; override
		// unconditionally.
		p.Aspect = Aspect16x9
		p.ShowWatched = false

	case model.KindFolder, model.KindGenre, model.KindMusicGenre:
		p.Placeholder = PlaceholderFolder
		if !requestedFixed {
			p.Aspect = Aspect7x9
		}

	case model.KindPhoto:
		p.Placeholder = PlaceholderPhoto
		p.ShowWatched = false

	case model.KindPhotoAlbum, model.KindPlaylist:
		p.ShowWatched = false

	case model.KindMovie, model.KindVideo:
		p.ShowProgress = true
		if opts.ImageType == model.ImageTypePoster {
			p.Aspect = AspectPoster
		}

	case model.KindLiveTvChannel:
		p.Placeholder = PlaceholderTV
		p.ShowWatched = false
		p.FitWithin = true
		if !requestedFixed {
			if item.PrimaryAspect > 0 {
				p.Aspect = item.PrimaryAspect
			} else {
				p.Aspect = AspectSquare
			}
		}

	case model.KindLiveTvProgram:
		p.ShowWatched = false
		p.InfoUnder = true
		p.FixedWidth = 192
		p.FixedHeight = 129
		p.Aspect = float64(p.FixedWidth) / float64(p.FixedHeight)
		if item.LocationVirtual && item.StartDate != nil && item.StartDate.After(now) {
			p.Banner = BannerFuture
		}

	case model.KindLiveTvRecording:
		p.Placeholder = PlaceholderTV
		p.ShowWatched = false
		if !requestedFixed {
			if item.PrimaryAspect > 0 {
				p.Aspect = item.PrimaryAspect
			} else {
				p.Aspect = Aspect7x9
			}
		}

	case model.KindChapter:
		p.Placeholder = PlaceholderChapter
		p.ShowWatched = false
		if !requestedFixed {
			p.Aspect = Aspect16x9
		}

	case model.KindSeriesTimer:
		p.Placeholder = PlaceholderSeriesTimer
		p.ShowWatched = false
		p.InfoUnder = true
		if !requestedFixed {
			p.Aspect = Aspect16x9
		}

	default:
		if opts.ImageType == model.ImageTypePoster {
			p.Aspect = AspectPoster
		}
	}

	return p
}

// naturalAspect derives an item's unforced aspect ratio.
func naturalAspect(item *model.Item, preferParentThumb bool) float64 {
	if preferParentThumb && item.ParentThumbTag != "" {
		return Aspect16x9
	}
	if item.PrimaryAspect > 0 {
		return item.PrimaryAspect
	}
	if item.Kind == model.KindEpisode {
		return Aspect16x9
	}
	return AspectPoster
}

// WatchedBadge computes the watched badge for a card: count 0 means a
// plain watched check, count > 0 an unplayed-count badge. show is false
// when the policy or the user's indicator mode suppresses it.
func WatchedBadge(item *model.Item, p Policy, mode prefs.WatchedIndicatorMode) (count int, show bool) {
	if !p.ShowWatched || item == nil || item.UserData == nil {
		return 0, false
	}
	ud := item.UserData

	if ud.Played {
		if mode != prefs.WatchedNever && (mode != prefs.WatchedEpisodesOnly || item.Kind == model.KindEpisode) {
			return 0, true
		}
		return 0, false
	}

	if ud.UnplayedItemCount != nil && *ud.UnplayedItemCount > 0 && mode != prefs.WatchedNever {
		return *ud.UnplayedItemCount, true
	}

	return 0, false
}
