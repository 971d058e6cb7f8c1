package retrieval

import (
	"context"

	"archive-ai/internal/vectorstore"
)

// Embedder turns text into fixed-length vectors.
// This interface is defined from the engine's perspective (consumer-first).
type Embedder interface {
	// EmbedTexts generates embeddings for the given texts, one vector per input.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Completer is a short-form auxiliary language model call used for query
// classification and expansion.
type Completer interface {
	// Complete sends a system instruction and a user message, returning plain text.
	Complete(ctx context.Context, system, user string) (string, error)
}

// Passage is one retrieved unit of transcript text with score and metadata.
// Passages are created per query from vector search results and discarded
// after the request.
type Passage struct {
	ID           string
	TranscriptID string
	SeriesID     string // Empty when the transcript is not part of a series
	Position     int    // Ordinal position within its transcript
	Text         string
	Score        float32
	Title        string
	Speaker      string
	Date         string
	Reference    string
}

// SourceCitation is one entry per unique transcript appearing in the final
// passage set. First-seen metadata wins.
type SourceCitation struct {
	TranscriptID string `json:"transcript_id"`
	Title        string `json:"title"`
	Speaker      string `json:"speaker,omitempty"`
	Date         string `json:"date,omitempty"`
	Reference    string `json:"reference,omitempty"`
}

// ContextResult is the engine's entire externally visible output: the
// assembled context block, the deduplicated citation list, and the resolved
// scope. NoContent marks the distinguished empty outcome; it is a normal
// result, not an error.
type ContextResult struct {
	Context   string
	Sources   []SourceCitation
	Scope     Scope
	NoContent bool
}

// passageFromResult converts a vector search result into a Passage.
func passageFromResult(result vectorstore.SearchResult) Passage {
	p := Passage{
		ID:    result.PointID,
		Score: result.Score,
	}
	p.TranscriptID, _ = result.Meta["transcript_id"].(string)
	p.SeriesID, _ = result.Meta["series_id"].(string)
	p.Text, _ = result.Meta["text"].(string)
	p.Title, _ = result.Meta["title"].(string)
	p.Speaker, _ = result.Meta["speaker"].(string)
	p.Date, _ = result.Meta["date"].(string)
	p.Reference, _ = result.Meta["reference"].(string)

	// Qdrant integers come back as int64, JSON round-trips as float64
	switch v := result.Meta["position"].(type) {
	case int64:
		p.Position = int(v)
	case float64:
		p.Position = int(v)
	case int:
		p.Position = v
	}

	return p
}
