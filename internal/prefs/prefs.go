package prefs

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const currentSchemaVersion = 1

// WatchedIndicatorMode controls when watched badges are shown on cards.
type WatchedIndicatorMode int

const (
	WatchedAlways WatchedIndicatorMode = iota
	WatchedEpisodesOnly
	WatchedNever
)

// String returns the stored representation of the mode.
func (m WatchedIndicatorMode) String() string {
	switch m {
	case WatchedEpisodesOnly:
		return "episodes-only"
	case WatchedNever:
		return "never"
	default:
		return "always"
	}
}

func watchedIndicatorFromString(s string) WatchedIndicatorMode {
	switch s {
	case "episodes-only":
		return WatchedEpisodesOnly
	case "never":
		return WatchedNever
	default:
		return WatchedAlways
	}
}

// ParseWatchedIndicator maps user input to a mode. Accepts the stored
// names plus the short "episodes" form.
func ParseWatchedIndicator(s string) (WatchedIndicatorMode, bool) {
	switch s {
	case "always":
		return WatchedAlways, true
	case "episodes", "episodes-only":
		return WatchedEpisodesOnly, true
	case "never":
		return WatchedNever, true
	default:
		return WatchedAlways, false
	}
}

// RatingMode controls how ratings are displayed in the info row.
type RatingMode int

const (
	RatingTomatoes RatingMode = iota
	RatingStars
	RatingNone
)

// String returns the stored representation of the mode.
func (m RatingMode) String() string {
	switch m {
	case RatingStars:
		return "stars"
	case RatingNone:
		return "none"
	default:
		return "tomatoes"
	}
}

func ratingFromString(s string) RatingMode {
	switch s {
	case "stars":
		return RatingStars
	case "none":
		return RatingNone
	default:
		return RatingTomatoes
	}
}

// ParseRating maps user input to a rating mode.
func ParseRating(s string) (RatingMode, bool) {
	switch s {
	case "tomatoes":
		return RatingTomatoes, true
	case "stars":
		return RatingStars, true
	case "none":
		return RatingNone, true
	default:
		return RatingTomatoes, false
	}
}

// Store persists user preferences in a SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the preference database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs database migrations.
func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *Store) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY NOT NULL,
			value TEXT NOT NULL
		);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// get reads one preference, returning def when the key is absent.
func (s *Store) get(key, def string) string {
	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if err != nil {
		return def
	}
	return value
}

// set writes one preference.
func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO prefs (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// WatchedIndicator returns the watched-indicator display mode.
func (s *Store) WatchedIndicator() WatchedIndicatorMode {
	return watchedIndicatorFromString(s.get("watched_indicator", WatchedAlways.String()))
}

// SetWatchedIndicator stores the watched-indicator display mode.
func (s *Store) SetWatchedIndicator(m WatchedIndicatorMode) error {
	return s.set("watched_indicator", m.String())
}

// Rating returns the rating display mode.
func (s *Store) Rating() RatingMode {
	return ratingFromString(s.get("rating_mode", RatingTomatoes.String()))
}

// SetRating stores the rating display mode.
func (s *Store) SetRating(m RatingMode) error {
	return s.set("rating_mode", m.String())
}

// DefaultPath returns the default database path: ~/.config/lanes/prefs.db
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "lanes", "prefs.db"), nil
}
