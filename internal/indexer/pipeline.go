package indexer

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"archive-ai/internal/contextutil"
	"archive-ai/internal/storage"
	"archive-ai/internal/vectorstore"
)

// Embedder turns segment texts into vectors for indexing.
// This interface is defined from the pipeline's perspective (consumer-first).
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Pipeline orchestrates indexing of transcript files into SQLite and Qdrant.
type Pipeline struct {
	scanner        *Scanner
	transcriptRepo storage.TranscriptStore
	segmentRepo    storage.SegmentStore
	embedder       Embedder
	vectorStore    vectorstore.VectorStore
	collection     string
	chunker        *TranscriptChunker
	logger         *slog.Logger
}

// NewPipeline creates a new indexing pipeline.
func NewPipeline(
	scanner *Scanner,
	transcriptRepo storage.TranscriptStore,
	segmentRepo storage.SegmentStore,
	embedder Embedder,
	vectorStore vectorstore.VectorStore,
	collection string,
) *Pipeline {
	return &Pipeline{
		scanner:        scanner,
		transcriptRepo: transcriptRepo,
		segmentRepo:    segmentRepo,
		embedder:       embedder,
		vectorStore:    vectorStore,
		collection:     collection,
		chunker:        NewTranscriptChunker(),
		logger:         slog.Default(),
	}
}

// IndexTranscript indexes a single transcript file. It skips unchanged files
// (via content hash), segments the body, generates embeddings, and stores
// segments in both SQLite and Qdrant.
func (p *Pipeline) IndexTranscript(ctx context.Context, file ScannedFile) error {
	logger := contextutil.LoggerFromContext(ctx)

	content, err := os.ReadFile(file.AbsPath)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", file.AbsPath, err)
	}

	hash := fmt.Sprintf("%x", sha256.Sum256(content))

	existing, err := p.transcriptRepo.GetByRelPath(ctx, file.RelPath)
	if err != nil && err != storage.ErrNotFound {
		return fmt.Errorf("failed to check existing transcript: %w", err)
	}
	if existing != nil && existing.Hash == hash {
		logger.DebugContext(ctx, "skipping unchanged transcript", "rel_path", file.RelPath)
		return nil
	}

	meta, body := parseFrontMatter(content)
	firstHeading, segments := p.chunker.ChunkTranscript(body)

	title := meta.Title
	if title == "" {
		title = firstHeading
	}
	if title == "" {
		title = titleFromFilename(file.RelPath)
	}

	// Transcripts are laid out one directory per series, so the directory
	// name stands in when the front matter omits the series.
	seriesID := meta.SeriesID
	if seriesID == "" {
		if dir := filepath.ToSlash(filepath.Dir(file.RelPath)); dir != "." && dir != "" {
			seriesID = strings.SplitN(dir, "/", 2)[0]
		}
	}

	if len(segments) == 0 {
		logger.WarnContext(ctx, "no segments generated", "rel_path", file.RelPath)
		return nil
	}

	var transcriptID string
	if existing != nil {
		transcriptID = existing.ID
	} else {
		transcriptID = uuid.New().String()
	}

	record := &storage.TranscriptRecord{
		ID:         transcriptID,
		RelPath:    file.RelPath,
		Title:      title,
		Speaker:    meta.Speaker,
		SeriesID:   seriesID,
		RecordedOn: meta.Date,
		Reference:  meta.Reference,
		Hash:       hash,
	}
	if err := p.transcriptRepo.Upsert(ctx, record); err != nil {
		return fmt.Errorf("failed to upsert transcript: %w", err)
	}

	// Remove the previous version's segments before writing the new ones
	if existing != nil {
		oldIDs, err := p.segmentRepo.ListIDsByTranscript(ctx, transcriptID)
		if err != nil {
			return fmt.Errorf("failed to list old segment IDs: %w", err)
		}
		if len(oldIDs) > 0 {
			if err := p.vectorStore.Delete(ctx, p.collection, oldIDs); err != nil {
				logger.WarnContext(ctx, "failed to delete old points from vector store", "error", err, "count", len(oldIDs))
			}
			if err := p.segmentRepo.DeleteByTranscript(ctx, transcriptID); err != nil {
				return fmt.Errorf("failed to delete old segments: %w", err)
			}
		}
	}

	texts := make([]string, len(segments))
	for i, segment := range segments {
		texts[i] = segment.Text
	}
	embeddings, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}
	if len(embeddings) != len(segments) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(segments), len(embeddings))
	}

	points := make([]vectorstore.Point, len(segments))
	for i, segment := range segments {
		segmentID := uuid.New().String()

		if err := p.segmentRepo.Insert(ctx, &storage.SegmentRecord{
			ID:           segmentID,
			TranscriptID: transcriptID,
			Position:     segment.Position,
			Heading:      segment.Heading,
			Text:         segment.Text,
		}); err != nil {
			return fmt.Errorf("failed to insert segment: %w", err)
		}

		points[i] = vectorstore.Point{
			ID:  segmentID,
			Vec: embeddings[i],
			Meta: map[string]any{
				"transcript_id": transcriptID,
				"series_id":     seriesID,
				"position":      segment.Position,
				"title":         title,
				"speaker":       meta.Speaker,
				"date":          meta.Date,
				"reference":     meta.Reference,
				"text":          segment.Text,
			},
		}
	}

	if err := p.vectorStore.Upsert(ctx, p.collection, points); err != nil {
		return fmt.Errorf("failed to upsert vectors: %w", err)
	}

	logger.InfoContext(ctx, "indexed transcript",
		"rel_path", file.RelPath,
		"segments", len(segments),
		"title", title,
		"series_id", seriesID)
	return nil
}

// IndexAll scans the archive root and indexes every transcript file.
// Failures on individual files are logged and do not stop the run.
func (p *Pipeline) IndexAll(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)

	files, err := p.scanner.Scan(ctx)
	if err != nil {
		return fmt.Errorf("failed to scan transcripts: %w", err)
	}

	logger.InfoContext(ctx, "starting indexing", "total_files", len(files))

	var successCount, errorCount int
	for _, file := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := p.IndexTranscript(ctx, file); err != nil {
			errorCount++
			logger.ErrorContext(ctx, "failed to index transcript", "rel_path", file.RelPath, "error", err)
			continue
		}
		successCount++
	}

	logger.InfoContext(ctx, "indexing completed", "total_files", len(files), "success", successCount, "errors", errorCount)

	if errorCount > 0 {
		return fmt.Errorf("indexing completed with %d errors", errorCount)
	}
	return nil
}
