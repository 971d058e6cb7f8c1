package indexer

import (
	"context"
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"archive-ai/internal/storage"
)

// TokensPerRune approximates token counting (4 chars per token).
const TokensPerRune = 4.0

// ArchiveStats describes the current state of the indexed archive.
type ArchiveStats struct {
	// Transcripts is the number of indexed transcripts.
	Transcripts int `json:"transcripts"`
	// Series is the number of distinct series among indexed transcripts.
	Series int `json:"series"`
	// Segments is the number of retrievable passages in the index.
	Segments int `json:"segments"`
	// TranscriptsWithoutSegments counts transcripts that produced no passages.
	TranscriptsWithoutSegments int `json:"transcripts_without_segments"`
	// SegmentTokenStats summarizes estimated token counts per passage.
	SegmentTokenStats SegmentTokenStats `json:"segment_token_stats"`
}

// SegmentTokenStats contains statistics about token counts in segments.
type SegmentTokenStats struct {
	Min  int     `json:"min"`
	Max  int     `json:"max"`
	Mean float64 `json:"mean"`
	P95  int     `json:"p95"`
}

// Stats computes archive statistics from the database.
func (p *Pipeline) Stats(ctx context.Context) (*ArchiveStats, error) {
	transcriptRepo, ok := p.transcriptRepo.(*storage.TranscriptRepo)
	if !ok {
		return nil, fmt.Errorf("transcriptRepo is not *storage.TranscriptRepo, cannot query stats")
	}
	db := transcriptRepo.DB()
	if db == nil {
		return nil, fmt.Errorf("transcriptRepo.DB() returned nil")
	}

	stats := &ArchiveStats{}

	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transcripts").Scan(&stats.Transcripts); err != nil {
		return nil, fmt.Errorf("failed to count transcripts: %w", err)
	}
	if err := db.QueryRowContext(ctx,
		"SELECT COUNT(DISTINCT series_id) FROM transcripts WHERE series_id != ''").Scan(&stats.Series); err != nil {
		return nil, fmt.Errorf("failed to count series: %w", err)
	}
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transcripts
		 WHERE id NOT IN (SELECT DISTINCT transcript_id FROM segments)`).Scan(&stats.TranscriptsWithoutSegments); err != nil {
		return nil, fmt.Errorf("failed to count transcripts without segments: %w", err)
	}

	rows, err := db.QueryContext(ctx, "SELECT text FROM segments")
	if err != nil {
		return nil, fmt.Errorf("failed to query segments: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tokenCounts []int
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan segment text: %w", err)
		}
		tokens := int(math.Round(float64(utf8.RuneCountInString(text)) / TokensPerRune))
		if tokens < 1 {
			tokens = 1
		}
		tokenCounts = append(tokenCounts, tokens)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	stats.Segments = len(tokenCounts)
	stats.SegmentTokenStats = computeTokenStats(tokenCounts)
	return stats, nil
}

// computeTokenStats computes min, max, mean, and p95 from token counts.
func computeTokenStats(tokenCounts []int) SegmentTokenStats {
	if len(tokenCounts) == 0 {
		return SegmentTokenStats{}
	}

	sorted := make([]int, len(tokenCounts))
	copy(sorted, tokenCounts)
	sort.Ints(sorted)

	sum := 0
	for _, count := range tokenCounts {
		sum += count
	}
	mean := float64(sum) / float64(len(tokenCounts))

	p95Index := int(math.Ceil(float64(len(sorted)) * 0.95))
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}

	return SegmentTokenStats{
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		Mean: math.Round(mean*100) / 100,
		P95:  sorted[p95Index],
	}
}
