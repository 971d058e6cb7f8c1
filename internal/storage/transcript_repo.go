package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_transcript_store.go -package=mocks archive-ai/internal/storage TranscriptStore

import (
	"context"
	"database/sql"
	"fmt"
)

// TranscriptStore defines the interface for transcript storage operations.
type TranscriptStore interface {
	// Upsert inserts a transcript or updates it by rel_path.
	// The record's ID must be set (UUID) before calling this method.
	Upsert(ctx context.Context, rec *TranscriptRecord) error
	// GetByRelPath gets a transcript by its relative path. Returns ErrNotFound if not found.
	GetByRelPath(ctx context.Context, relPath string) (*TranscriptRecord, error)
	// GetByID gets a transcript by its ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*TranscriptRecord, error)
	// ListAll returns all transcripts ordered by series then title.
	ListAll(ctx context.Context) ([]TranscriptRecord, error)
	// Delete removes a transcript and (via cascade) its segments.
	Delete(ctx context.Context, id string) error
}

// TranscriptRepo provides methods for transcript operations.
// It implements the TranscriptStore interface.
type TranscriptRepo struct {
	db *sql.DB
}

// NewTranscriptRepo creates a new TranscriptRepo.
func NewTranscriptRepo(db *sql.DB) *TranscriptRepo {
	return &TranscriptRepo{db: db}
}

// DB returns the underlying database handle for ad-hoc queries.
func (r *TranscriptRepo) DB() *sql.DB {
	return r.db
}

// Upsert inserts a transcript or updates it by rel_path.
func (r *TranscriptRepo) Upsert(ctx context.Context, rec *TranscriptRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transcripts (id, rel_path, title, speaker, series_id, recorded_on, reference, hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(rel_path) DO UPDATE SET
			title = excluded.title,
			speaker = excluded.speaker,
			series_id = excluded.series_id,
			recorded_on = excluded.recorded_on,
			reference = excluded.reference,
			hash = excluded.hash,
			updated_at = CURRENT_TIMESTAMP`,
		rec.ID, rec.RelPath, rec.Title, rec.Speaker, rec.SeriesID, rec.RecordedOn, rec.Reference, rec.Hash,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert transcript: %w", err)
	}
	return nil
}

// GetByRelPath gets a transcript by its relative path. Returns ErrNotFound if not found.
func (r *TranscriptRepo) GetByRelPath(ctx context.Context, relPath string) (*TranscriptRecord, error) {
	return r.get(ctx, "rel_path", relPath)
}

// GetByID gets a transcript by its ID. Returns ErrNotFound if not found.
func (r *TranscriptRepo) GetByID(ctx context.Context, id string) (*TranscriptRecord, error) {
	return r.get(ctx, "id", id)
}

func (r *TranscriptRepo) get(ctx context.Context, column, value string) (*TranscriptRecord, error) {
	var rec TranscriptRecord
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT id, rel_path, title, speaker, series_id, recorded_on, reference, hash, updated_at
		 FROM transcripts WHERE %s = ?`, column),
		value,
	).Scan(&rec.ID, &rec.RelPath, &rec.Title, &rec.Speaker, &rec.SeriesID, &rec.RecordedOn, &rec.Reference, &rec.Hash, &rec.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}
	return &rec, nil
}

// ListAll returns all transcripts ordered by series then title.
func (r *TranscriptRepo) ListAll(ctx context.Context) ([]TranscriptRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, rel_path, title, speaker, series_id, recorded_on, reference, hash, updated_at
		 FROM transcripts ORDER BY series_id, title`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query transcripts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []TranscriptRecord
	for rows.Next() {
		var rec TranscriptRecord
		if err := rows.Scan(&rec.ID, &rec.RelPath, &rec.Title, &rec.Speaker, &rec.SeriesID, &rec.RecordedOn, &rec.Reference, &rec.Hash, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transcript: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return records, nil
}

// Delete removes a transcript and (via cascade) its segments.
func (r *TranscriptRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM transcripts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete transcript: %w", err)
	}
	return nil
}
