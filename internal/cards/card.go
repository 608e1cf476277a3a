package cards

import (
	"github.com/google/uuid"

	"github.com/mkarren/lanes/internal/model"
)

// Card is the row-level wrapper around one browsable entity or grid
// button. Exactly one of Item and Button is set.
type Card struct {
	Item   *model.Item
	Button *model.GridButton

	// PreferParentThumb asks the image pipeline to favor the parent's
	// thumb over the item's own images.
	PreferParentThumb bool
	// PreferSeriesPoster makes episodes present with their series
	// poster instead of an episode still.
	PreferSeriesPoster bool
	// StaticHeight pins the card to the row's static height instead of
	// the aspect-dependent one.
	StaticHeight bool

	// Slot tracks the card's async image state. Owned by the browse
	// surface's update loop.
	Slot Slot
	// Tint is the hex color shown in place of the image in terminal
	// rendering, derived from the blurhash once the load settles.
	Tint string
}

// IsButton reports whether the card is a grid button.
func (c *Card) IsButton() bool {
	return c.Button != nil
}

// ID returns the wrapped item's id, or the nil id for buttons.
func (c *Card) ID() uuid.UUID {
	if c.Item == nil {
		return uuid.UUID{}
	}
	return c.Item.ID
}

// Name returns the display name for the card.
func (c *Card) Name() string {
	if c.Button != nil {
		return c.Button.Label
	}
	if c.Item != nil {
		return c.Item.Name
	}
	return ""
}

// Subtitle returns the secondary text line for the card.
func (c *Card) Subtitle() string {
	if c.Item == nil {
		return ""
	}
	return c.Item.Subtitle
}

// Summary returns the long description for the info panel.
func (c *Card) Summary() string {
	if c.Item == nil {
		return ""
	}
	return c.Item.Summary
}
