package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	TitleBar     lipgloss.Style
	RowHeader    lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardButton   lipgloss.Style
	CardName     lipgloss.Style
	CardInfo     lipgloss.Style // info text rendered under wide cards
	Badge        lipgloss.Style // watched check / unplayed count
	Favorite     lipgloss.Style
	Banner       lipgloss.Style // future/missing corner banner
	Progress     lipgloss.Style
	ProgressRest lipgloss.Style
	InfoTitle    lipgloss.Style
	InfoBody     lipgloss.Style
	InfoMeta     lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
	HintKey      lipgloss.Style
	HintDesc     lipgloss.Style
	Notice       lipgloss.Style
	SearchMatch  lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	// Industrial color palette
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // inactive borders
	warn := lipgloss.AdaptiveColor{Light: "#8A6A3A", Dark: "#AF875F"}    // banners

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		TitleBar: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		RowHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent),

		CardButton: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Align(lipgloss.Center, lipgloss.Center),

		CardName: lipgloss.NewStyle().
			Foreground(primary),

		CardInfo: lipgloss.NewStyle().
			Foreground(subtle),

		Badge: lipgloss.NewStyle().
			Foreground(accent),

		Favorite: lipgloss.NewStyle().
			Foreground(warn),

		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(warn),

		Progress: lipgloss.NewStyle().
			Foreground(accent),

		ProgressRest: lipgloss.NewStyle().
			Foreground(border),

		InfoTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		InfoBody: lipgloss.NewStyle().
			Foreground(primary),

		InfoMeta: lipgloss.NewStyle().
			Foreground(subtle),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		Notice: lipgloss.NewStyle().
			Foreground(warn),

		SearchMatch: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
	}
}
