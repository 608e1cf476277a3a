package model

// ItemPage is one chunk of a paginated item query result.
type ItemPage struct {
	Items []Item
	// TotalCount is the size of the full result set, not of this page.
	TotalCount int
	Offset     int
}

// GridButtonID identifies one of the fixed library-navigation actions
// rendered as grid buttons on the trailing views row.
type GridButtonID int

const (
	ButtonAllItems GridButtonID = iota
	ButtonRandom
	ButtonAlbums
	ButtonAlbumArtists
	ButtonArtists
	ButtonFavoriteSongs
	ButtonSchedule
	ButtonSeriesRecordings
	ButtonLiveTvGuide
	ButtonLiveTvRecordings
)

// GridButton is a non-item card representing a fixed navigation action.
type GridButton struct {
	ID    GridButtonID
	Label string
}
