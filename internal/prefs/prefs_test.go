package prefs_test

import (
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/mkarren/lanes/internal/prefs"
)

func openStore(t *testing.T) *prefs.Store {
	t.Helper()
	s, err := prefs.Open(filepath.Join(t.TempDir(), "prefs.db"))
	assert.NilError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_Defaults(t *testing.T) {
	s := openStore(t)

	assert.Equal(t, s.WatchedIndicator(), prefs.WatchedAlways)
	assert.Equal(t, s.Rating(), prefs.RatingTomatoes)
}

func TestStore_RoundTrip(t *testing.T) {
	s := openStore(t)

	assert.NilError(t, s.SetWatchedIndicator(prefs.WatchedEpisodesOnly))
	assert.NilError(t, s.SetRating(prefs.RatingStars))

	assert.Equal(t, s.WatchedIndicator(), prefs.WatchedEpisodesOnly)
	assert.Equal(t, s.Rating(), prefs.RatingStars)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := prefs.Open(path)
	assert.NilError(t, err)
	assert.NilError(t, s.SetRating(prefs.RatingNone))
	assert.NilError(t, s.Close())

	s, err = prefs.Open(path)
	assert.NilError(t, err)
	defer s.Close()

	assert.Equal(t, s.Rating(), prefs.RatingNone)
}

func TestStore_OverwriteKeepsLatest(t *testing.T) {
	s := openStore(t)

	assert.NilError(t, s.SetWatchedIndicator(prefs.WatchedNever))
	assert.NilError(t, s.SetWatchedIndicator(prefs.WatchedAlways))

	assert.Equal(t, s.WatchedIndicator(), prefs.WatchedAlways)
}

func TestWatchedIndicatorModeStrings(t *testing.T) {
	assert.Equal(t, prefs.WatchedAlways.String(), "always")
	assert.Equal(t, prefs.WatchedEpisodesOnly.String(), "episodes-only")
	assert.Equal(t, prefs.WatchedNever.String(), "never")
}

func TestParseWatchedIndicator(t *testing.T) {
	tests := []struct {
		in   string
		want prefs.WatchedIndicatorMode
		ok   bool
	}{
		{"always", prefs.WatchedAlways, true},
		{"episodes", prefs.WatchedEpisodesOnly, true},
		{"episodes-only", prefs.WatchedEpisodesOnly, true},
		{"never", prefs.WatchedNever, true},
		{"sometimes", prefs.WatchedAlways, false},
		{"", prefs.WatchedAlways, false},
	}

	for _, tt := range tests {
		got, ok := prefs.ParseWatchedIndicator(tt.in)
		assert.Equal(t, got, tt.want, "input %q", tt.in)
		assert.Equal(t, ok, tt.ok, "input %q", tt.in)
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		in   string
		want prefs.RatingMode
		ok   bool
	}{
		{"tomatoes", prefs.RatingTomatoes, true},
		{"stars", prefs.RatingStars, true},
		{"none", prefs.RatingNone, true},
		{"thumbs", prefs.RatingTomatoes, false},
	}

	for _, tt := range tests {
		got, ok := prefs.ParseRating(tt.in)
		assert.Equal(t, got, tt.want, "input %q", tt.in)
		assert.Equal(t, ok, tt.ok, "input %q", tt.in)
	}
}
