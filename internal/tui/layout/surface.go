package layout

// CellSize is a card footprint in terminal cells.
type CellSize struct {
	Columns int
	Rows    int
}

// CalculateSurfaceHeight computes the content height for the row area.
// Returns at least MinHeight.
func CalculateSurfaceHeight(terminalHeight int, cfg SurfaceConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CellsForCard scales a card's pixel dimensions into terminal cells.
func CellsForCard(pixelWidth, pixelHeight int, cfg CellConfig) CellSize {
	cols := pixelWidth / cfg.PixelsPerColumn
	if cols < cfg.MinColumns {
		cols = cfg.MinColumns
	}
	rows := pixelHeight / cfg.PixelsPerRow
	if rows < cfg.MinRows {
		rows = cfg.MinRows
	}
	return CellSize{Columns: cols, Rows: rows}
}

// VisibleCards computes how many cards of the given footprint fit in
// the available width.
func VisibleCards(surfaceWidth, cardColumns, gap int) int {
	if cardColumns <= 0 {
		return 0
	}
	n := surfaceWidth / (cardColumns + gap)
	if n < 1 {
		n = 1
	}
	return n
}

// CalculateRowOffset calculates the horizontal scroll offset needed to
// keep the selected card visible within the row viewport.
func CalculateRowOffset(selected, total, visible int) int {
	if total <= visible {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - visible/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - visible
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}

// CalculateOverlayWidth computes the search overlay width.
func CalculateOverlayWidth(terminalWidth int, cfg OverlayConfig) int {
	width := terminalWidth * cfg.WidthPercent / 100
	if width < cfg.MinWidth {
		width = cfg.MinWidth
	}
	if width > cfg.MaxWidth {
		width = cfg.MaxWidth
	}
	return width
}
