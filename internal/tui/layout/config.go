package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Surface SurfaceConfig
	Cell    CellConfig
	Overlay OverlayConfig
	Text    TextConfig
}

// SurfaceConfig holds row surface dimension configuration.
type SurfaceConfig struct {
	// HeightReduction is subtracted from terminal height for row content.
	// Accounts for: title bar (2) + info panel (4) + help bar (2).
	HeightReduction int

	// MinHeight is the minimum surface height.
	MinHeight int

	// HeaderLines per row: header text plus spacing.
	HeaderLines int
}

// CellConfig maps card pixel dimensions onto terminal cells.
type CellConfig struct {
	// PixelsPerColumn and PixelsPerRow scale image-space dimensions
	// into character cells. Terminal cells are roughly twice as tall
	// as they are wide.
	PixelsPerColumn int
	PixelsPerRow    int

	// MinColumns and MinRows clamp degenerate cells.
	MinColumns int
	MinRows    int

	// Gap is the spacing between adjacent cards in a row.
	Gap int
}

// OverlayConfig holds search overlay configuration.
type OverlayConfig struct {
	// WidthPercent is the overlay width as percentage of terminal width.
	WidthPercent int

	// MinWidth and MaxWidth clamp the overlay width in characters.
	MinWidth int
	MaxWidth int

	// MaxVisible is the max result lines shown.
	MaxVisible int

	// SearchCharLimit caps the query input length.
	SearchCharLimit int
}

// TextConfig holds text rendering configuration.
type TextConfig struct {
	// Ellipsis marks truncated text.
	Ellipsis string
}

// DefaultConfig returns the standard layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Surface: SurfaceConfig{
			HeightReduction: 8,
			MinHeight:       6,
			HeaderLines:     2,
		},
		Cell: CellConfig{
			PixelsPerColumn: 10,
			PixelsPerRow:    40,
			MinColumns:      6,
			MinRows:         3,
			Gap:             1,
		},
		Overlay: OverlayConfig{
			WidthPercent:    60,
			MinWidth:        40,
			MaxWidth:        100,
			MaxVisible:      10,
			SearchCharLimit: 100,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
