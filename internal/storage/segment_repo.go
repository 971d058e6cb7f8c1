package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_segment_store.go -package=mocks archive-ai/internal/storage SegmentStore

import (
	"context"
	"database/sql"
	"fmt"
)

// SegmentStore defines the interface for segment storage operations.
type SegmentStore interface {
	// Insert inserts a single segment into the database.
	// The segment.ID must be set (UUID) before calling this method.
	Insert(ctx context.Context, segment *SegmentRecord) error
	// DeleteByTranscript deletes all segments for a given transcript ID.
	DeleteByTranscript(ctx context.Context, transcriptID string) error
	// ListIDsByTranscript returns all segment IDs for a given transcript, ordered by position.
	ListIDsByTranscript(ctx context.Context, transcriptID string) ([]string, error)
	// GetByID gets a segment by its ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*SegmentRecord, error)
}

// SegmentRepo provides methods for segment operations.
// It implements the SegmentStore interface.
type SegmentRepo struct {
	db *sql.DB
}

// NewSegmentRepo creates a new SegmentRepo.
func NewSegmentRepo(db *sql.DB) *SegmentRepo {
	return &SegmentRepo{db: db}
}

// DB returns the underlying database handle for ad-hoc queries.
func (r *SegmentRepo) DB() *sql.DB {
	return r.db
}

// Insert inserts a single segment into the database.
func (r *SegmentRepo) Insert(ctx context.Context, segment *SegmentRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO segments (id, transcript_id, position, heading, text) VALUES (?, ?, ?, ?, ?)",
		segment.ID, segment.TranscriptID, segment.Position, segment.Heading, segment.Text,
	)
	if err != nil {
		return fmt.Errorf("failed to insert segment: %w", err)
	}
	return nil
}

// DeleteByTranscript deletes all segments for a given transcript ID.
// Used when re-indexing a transcript to remove old segments before inserting new ones.
func (r *SegmentRepo) DeleteByTranscript(ctx context.Context, transcriptID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM segments WHERE transcript_id = ?", transcriptID)
	if err != nil {
		return fmt.Errorf("failed to delete segments by transcript: %w", err)
	}
	return nil
}

// ListIDsByTranscript returns all segment IDs for a given transcript, ordered by position.
// Returns an empty slice if no segments exist (not an error).
// Used to get Qdrant point IDs for deletion before re-indexing.
func (r *SegmentRepo) ListIDsByTranscript(ctx context.Context, transcriptID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id FROM segments WHERE transcript_id = ? ORDER BY position",
		transcriptID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query segment IDs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan segment ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ids, nil
}

// GetByID gets a segment by its ID. Returns ErrNotFound if not found.
func (r *SegmentRepo) GetByID(ctx context.Context, id string) (*SegmentRecord, error) {
	var segment SegmentRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT id, transcript_id, position, heading, text FROM segments WHERE id = ?",
		id,
	).Scan(&segment.ID, &segment.TranscriptID, &segment.Position, &segment.Heading, &segment.Text)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get segment: %w", err)
	}
	return &segment, nil
}
