package storage

import "time"

// TranscriptRecord represents an indexed transcript in the database.
type TranscriptRecord struct {
	ID         string // UUID
	RelPath    string // Relative path from the transcripts root
	Title      string
	Speaker    string
	SeriesID   string // Empty when the transcript is not part of a series
	RecordedOn string // Display date, free-form (e.g. "2023-04-16")
	Reference  string // Reference tag (e.g. catalog number or scripture reference)
	Hash       string // SHA256 hex string of file content
	UpdatedAt  time.Time
}

// SegmentRecord represents one retrievable passage of a transcript.
// The segment ID doubles as the Qdrant point ID.
type SegmentRecord struct {
	ID           string // UUID (same as Qdrant point ID)
	TranscriptID string // UUID (foreign key to transcripts.id)
	Position     int    // Ordinal position within the transcript (starts at 0)
	Heading      string // Heading hierarchy, e.g. "# Part 1 > ## Questions"
	Text         string
}
