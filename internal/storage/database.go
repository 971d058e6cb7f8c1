package storage

import (
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// New opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Foreign keys are disabled by default in SQLite
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS transcripts (
			id TEXT PRIMARY KEY,
			rel_path TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			speaker TEXT NOT NULL DEFAULT '',
			series_id TEXT NOT NULL DEFAULT '',
			recorded_on TEXT NOT NULL DEFAULT '',
			reference TEXT NOT NULL DEFAULT '',
			hash TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS segments (
			id TEXT PRIMARY KEY,
			transcript_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			heading TEXT NOT NULL DEFAULT '',
			text TEXT NOT NULL,
			FOREIGN KEY (transcript_id) REFERENCES transcripts(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_segments_transcript ON segments(transcript_id, position);`,
		`CREATE INDEX IF NOT EXISTS idx_transcripts_series ON transcripts(series_id);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
