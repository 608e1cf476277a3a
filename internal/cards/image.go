package cards

import (
	"fmt"

	"github.com/bbrks/go-blurhash"

	"github.com/mkarren/lanes/internal/model"
	"github.com/mkarren/lanes/internal/service"
)

// Source records which rung of the precedence chain produced a handle.
type Source int

const (
	SourceBanner Source = iota
	SourceSeriesPrimary
	SourceParentThumb
	SourceItemThumb
	SourceItemPrimary
	SourceGenerated
)

// Handle is one resolved card image: the URL to load, the blurhash to
// show while loading, and which source won.
type Handle struct {
	URL      string
	BlurHash string
	Source   Source
}

// ResolveImage picks the best available image for a card. Precedence,
// first available wins: explicit banner request, series primary (for
// prefer-series-poster episodes), parent thumb (when preferred or the
// item has no primary), item thumb, item primary, synthesized fallback
// URL. Reordering this chain silently changes which image users see for
// ambiguous items.
func ResolveImage(c *Card, imageType model.ImageType, urls service.ImageURLBuilder, width, height int) Handle {
	item := c.Item
	if item == nil {
		return Handle{}
	}

	if imageType == model.ImageTypeBanner && item.HasImage(model.ImageBanner) {
		return Handle{
			URL:      urls.ImageURL(item.ID, model.ImageBanner, item.ImageTags[model.ImageBanner], width, height),
			BlurHash: item.BlurHashes[model.ImageBanner],
			Source:   SourceBanner,
		}
	}

	if c.PreferSeriesPoster && item.Kind == model.KindEpisode && item.SeriesPrimaryTag != "" {
		return Handle{
			URL:    urls.ImageURL(item.SeriesID, model.ImagePrimary, item.SeriesPrimaryTag, width, height),
			Source: SourceSeriesPrimary,
		}
	}

	if (c.PreferParentThumb || !item.HasImage(model.ImagePrimary)) && item.ParentThumbTag != "" {
		return Handle{
			URL:    urls.ImageURL(item.ParentThumbItemID, model.ImageThumb, item.ParentThumbTag, width, height),
			Source: SourceParentThumb,
		}
	}

	if item.HasImage(model.ImageThumb) {
		return Handle{
			URL:      urls.ImageURL(item.ID, model.ImageThumb, item.ImageTags[model.ImageThumb], width, height),
			BlurHash: item.BlurHashes[model.ImageThumb],
			Source:   SourceItemThumb,
		}
	}

	if item.HasImage(model.ImagePrimary) {
		return Handle{
			URL:      urls.ImageURL(item.ID, model.ImagePrimary, item.ImageTags[model.ImagePrimary], width, height),
			BlurHash: item.BlurHashes[model.ImagePrimary],
			Source:   SourceItemPrimary,
		}
	}

	return Handle{
		URL:    urls.FallbackImageURL(item.ID, width, height),
		Source: SourceGenerated,
	}
}

// Slot tracks the async image state of one visible card slot. At most
// one URL is current per slot; superseded loads are discarded, not
// queued. All methods run on the owner loop.
type Slot struct {
	current   string
	pending   bool
	displayed bool
}

// Begin marks url as the slot's current load target. It returns false
// when the load should not be dispatched: empty URL, or the slot is
// already showing (or already loading) the same URL.
func (s *Slot) Begin(url string) bool {
	if url == "" || url == s.current {
		return false
	}
	s.current = url
	s.pending = true
	s.displayed = false
	return true
}

// Complete applies a finished load. It returns false when the result
// belongs to a superseded URL and must be discarded.
func (s *Slot) Complete(url string) bool {
	if url != s.current {
		return false
	}
	s.pending = false
	s.displayed = true
	return true
}

// Fail records a failed load for the current URL; the caller shows the
// policy's default placeholder. No retry is scheduled.
func (s *Slot) Fail(url string) bool {
	if url != s.current {
		return false
	}
	s.pending = false
	s.displayed = false
	return true
}

// Settle is the timeout-driven settle pass: if the given URL is still
// current and still pending, the slot falls back to the placeholder
// until the load lands. Returns whether anything changed.
func (s *Slot) Settle(url string) bool {
	if url != s.current || !s.pending {
		return false
	}
	s.pending = false
	return true
}

// Pending reports whether a load is in flight; while true the slot is
// rendered cleared, not with a stale image.
func (s *Slot) Pending() bool {
	return s.pending
}

// Displayed reports whether the current URL's image has been applied.
func (s *Slot) Displayed() bool {
	return s.displayed
}

// CurrentURL returns the slot's current load target.
func (s *Slot) CurrentURL() string {
	return s.current
}

// Reset clears the slot when a card is unbound.
func (s *Slot) Reset() {
	s.current = ""
	s.pending = false
	s.displayed = false
}

// TintFromBlurHash decodes a blurhash into the average color of its
// placeholder image, as a hex string usable for a terminal tint.
func TintFromBlurHash(hash string) (string, bool) {
	if hash == "" {
		return "", false
	}
	img, err := blurhash.Decode(hash, 4, 4, 1)
	if err != nil {
		return "", false
	}

	bounds := img.Bounds()
	var r, g, b, n uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			r += uint64(pr >> 8)
			g += uint64(pg >> 8)
			b += uint64(pb >> 8)
			n++
		}
	}
	if n == 0 {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", r/n, g/n, b/n), true
}
