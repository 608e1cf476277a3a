package layout

import "testing"

func TestCalculateSurfaceHeight(t *testing.T) {
	cfg := DefaultConfig().Surface

	tests := []struct {
		name           string
		terminalHeight int
		want           int
	}{
		{"normal terminal", 24, 16},               // 24 - 8 = 16
		{"large terminal", 50, 42},                // 50 - 8 = 42
		{"small terminal enforces min", 12, 6},    // 12 - 8 = 4, min is 6
		{"exactly at reduction", 8, 6},            // 8 - 8 = 0, min is 6
		{"terminal smaller than reduction", 4, 6}, // negative clamps to min
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSurfaceHeight(tt.terminalHeight, cfg)
			if got != tt.want {
				t.Errorf("CalculateSurfaceHeight(%d) = %d, want %d",
					tt.terminalHeight, got, tt.want)
			}
		})
	}
}

func TestCellsForCard(t *testing.T) {
	cfg := DefaultConfig().Cell

	tests := []struct {
		name     string
		pxWidth  int
		pxHeight int
		want     CellSize
	}{
		{"portrait poster", 100, 150, CellSize{Columns: 10, Rows: 3}},  // 100/10=10, 150/40=3
		{"landscape thumb", 231, 130, CellSize{Columns: 23, Rows: 3}},  // 231/10=23, 130/40=3
		{"program tile", 192, 129, CellSize{Columns: 19, Rows: 3}},     // 192/10=19, 129/40=3
		{"tiny card enforces mins", 30, 40, CellSize{Columns: 6, Rows: 3}},
		{"zero dims enforce mins", 0, 0, CellSize{Columns: 6, Rows: 3}},
		{"tall list cell", 300, 169, CellSize{Columns: 30, Rows: 4}}, // 169/40=4
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CellsForCard(tt.pxWidth, tt.pxHeight, cfg)
			if got != tt.want {
				t.Errorf("CellsForCard(%d, %d) = %+v, want %+v",
					tt.pxWidth, tt.pxHeight, got, tt.want)
			}
		})
	}
}

func TestVisibleCards(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		columns int
		gap     int
		want    int
	}{
		{"wide surface", 80, 10, 1, 7},   // 80/11 = 7
		{"exact fit", 44, 10, 1, 4},      // 44/11 = 4
		{"narrow surface", 8, 10, 1, 1},  // less than one card still shows one
		{"zero columns", 80, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleCards(tt.width, tt.columns, tt.gap)
			if got != tt.want {
				t.Errorf("VisibleCards(%d, %d, %d) = %d, want %d",
					tt.width, tt.columns, tt.gap, got, tt.want)
			}
		})
	}
}

func TestCalculateRowOffset(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		total    int
		visible  int
		want     int
	}{
		{"all cards fit", 3, 5, 10, 0},
		{"selection at start", 0, 20, 5, 0},
		{"selection centered", 10, 20, 5, 8},    // 10 - 5/2 = 8
		{"selection near end clamps", 19, 20, 5, 15}, // max offset 20-5
		{"selection just past center", 3, 20, 5, 1},  // 3 - 2 = 1
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateRowOffset(tt.selected, tt.total, tt.visible)
			if got != tt.want {
				t.Errorf("CalculateRowOffset(%d, %d, %d) = %d, want %d",
					tt.selected, tt.total, tt.visible, got, tt.want)
			}
		})
	}
}

func TestCalculateOverlayWidth(t *testing.T) {
	cfg := DefaultConfig().Overlay

	tests := []struct {
		name          string
		terminalWidth int
		want          int
	}{
		{"normal terminal", 120, 72},        // 120 * 60% = 72
		{"narrow enforces min", 50, 40},     // 50 * 60% = 30, min 40
		{"wide enforces max", 200, 100},     // 200 * 60% = 120, max 100
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateOverlayWidth(tt.terminalWidth, cfg)
			if got != tt.want {
				t.Errorf("CalculateOverlayWidth(%d) = %d, want %d",
					tt.terminalWidth, got, tt.want)
			}
		})
	}
}
