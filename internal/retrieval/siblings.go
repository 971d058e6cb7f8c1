package retrieval

import (
	"context"
	"sync"

	"archive-ai/internal/contextutil"
)

// collectSeriesIDs walks the quality set in score order and records the
// series ID of each new transcript encountered, until maxSources distinct
// transcripts have been seen. Transcripts without a series contribute
// nothing. The returned order is deterministic (first appearance).
func collectSeriesIDs(quality []Passage, maxSources int) []string {
	seenSources := make(map[string]struct{})
	seenSeries := make(map[string]struct{})
	var seriesIDs []string

	for _, p := range quality {
		if len(seenSources) >= maxSources {
			break
		}
		if _, ok := seenSources[p.TranscriptID]; ok {
			continue
		}
		seenSources[p.TranscriptID] = struct{}{}

		if p.SeriesID == "" {
			continue
		}
		if _, ok := seenSeries[p.SeriesID]; ok {
			continue
		}
		seenSeries[p.SeriesID] = struct{}{}
		seriesIDs = append(seriesIDs, p.SeriesID)
	}

	return seriesIDs
}

// expandSiblings pulls in passages from other transcripts in the series
// represented among the top quality matches. Similarity alone misses
// related material from the same series that phrases things differently;
// one series-filtered query per grouping recovers it without a second
// full-corpus pass.
//
// Each series query runs concurrently against the shared query embedding.
// This step is best-effort: a failed series query is logged and skipped,
// and partial results are fine.
func (e *engine) expandSiblings(ctx context.Context, queryVector []float32, quality []Passage, profile BudgetProfile) []Passage {
	logger := contextutil.LoggerFromContext(ctx)

	seriesIDs := collectSeriesIDs(quality, profile.MaxSourcesForGrouping)
	if len(seriesIDs) == 0 {
		return nil
	}

	primarySources := make(map[string]struct{}, len(quality))
	for _, p := range quality {
		primarySources[p.TranscriptID] = struct{}{}
	}

	// Each goroutine writes only its own slot; merge order follows the
	// deterministic series order.
	perSeries := make([][]Passage, len(seriesIDs))
	var wg sync.WaitGroup
	for i, seriesID := range seriesIDs {
		wg.Add(1)
		go func(i int, seriesID string) {
			defer wg.Done()

			filters := map[string]any{"series_id": seriesID}
			results, err := e.store.Search(ctx, e.collection, queryVector, profile.TopK, filters)
			if err != nil {
				logger.WarnContext(ctx, "sibling query failed, skipping series", "series_id", seriesID, "error", err)
				return
			}

			perSource := make(map[string]int)
			var kept []Passage
			for _, result := range results {
				p := passageFromResult(result)
				if _, ok := primarySources[p.TranscriptID]; ok {
					continue
				}
				if perSource[p.TranscriptID] >= maxSiblingsPerSource {
					continue
				}
				kept = append(kept, p)
				perSource[p.TranscriptID]++
			}
			perSeries[i] = kept
		}(i, seriesID)
	}
	wg.Wait()

	var siblings []Passage
	for _, kept := range perSeries {
		siblings = append(siblings, kept...)
	}

	logger.DebugContext(ctx, "sibling expansion completed",
		"series_count", len(seriesIDs),
		"sibling_passages", len(siblings),
	)
	return siblings
}
