package retrieval

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_engine.go -package=mocks archive-ai/internal/retrieval Engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"archive-ai/internal/contextutil"
	"archive-ai/internal/vectorstore"
)

// Engine produces a bounded, deduplicated context payload for a query.
// It retrieves the most relevant transcript passages, expands the selection
// with related material from the same series, and serializes the result with
// source citations. It does not generate the final prose answer.
type Engine interface {
	// BuildContext runs the retrieval pipeline for the query.
	// A ContextResult with NoContent set is a normal outcome, not an error;
	// errors are reserved for embedding and primary retrieval failures.
	BuildContext(ctx context.Context, query string) (ContextResult, error)
}

// engine implements the Engine interface.
type engine struct {
	completer  Completer
	embedder   Embedder
	store      vectorstore.VectorStore
	collection string
	logger     *slog.Logger
}

// NewEngine creates a new retrieval engine. All provider clients are
// injected so tests can substitute doubles.
func NewEngine(completer Completer, embedder Embedder, store vectorstore.VectorStore, collection string) Engine {
	return &engine{
		completer:  completer,
		embedder:   embedder,
		store:      store,
		collection: collection,
		logger:     slog.Default(),
	}
}

// BuildContext runs the full pipeline: classify and expand concurrently,
// embed, primary retrieval, adaptive cutoff, sibling expansion, budget
// allocation, assembly.
func (e *engine) BuildContext(ctx context.Context, query string) (ContextResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return ContextResult{}, fmt.Errorf("query must not be empty")
	}

	logger.InfoContext(ctx, "context build started", "query", query)

	// Classification and expansion have no data dependency on each other.
	// Both degrade rather than fail: medium scope, original query text.
	var (
		wg       sync.WaitGroup
		decision scopeDecision
		expanded expansion
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		decision = e.classifyScope(ctx, query)
	}()
	go func() {
		defer wg.Done()
		expanded = e.expandQuery(ctx, query)
	}()
	wg.Wait()

	if decision.Fallback {
		logger.WarnContext(ctx, "scope classification degraded to default", "scope", decision.Scope)
	}
	if expanded.Fallback {
		logger.WarnContext(ctx, "query expansion degraded to original query")
	}

	profile, err := ProfileFor(decision.Scope)
	if err != nil {
		return ContextResult{}, err
	}

	logger.DebugContext(ctx, "query prepared",
		"scope", decision.Scope,
		"top_k", profile.TopK,
		"expanded_length", len(expanded.Text),
	)

	if err := ctx.Err(); err != nil {
		return ContextResult{}, err
	}

	// Embedding and the primary query are the only required inputs; either
	// failure is fatal to the request.
	embeddings, err := e.embedder.EmbedTexts(ctx, []string{expanded.Text})
	if err != nil {
		logger.ErrorContext(ctx, "failed to embed query", "error", err)
		return ContextResult{}, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(embeddings) == 0 {
		return ContextResult{}, fmt.Errorf("no embedding returned for query")
	}
	queryVector := embeddings[0]

	results, err := e.store.Search(ctx, e.collection, queryVector, profile.TopK, nil)
	if err != nil {
		logger.ErrorContext(ctx, "primary vector query failed", "error", err)
		return ContextResult{}, fmt.Errorf("failed to search vector store: %w", err)
	}

	primary := make([]Passage, 0, len(results))
	for _, result := range results {
		primary = append(primary, passageFromResult(result))
	}
	sort.SliceStable(primary, func(i, j int) bool {
		return primary[i].Score > primary[j].Score
	})

	scores := make([]float32, len(primary))
	for i, p := range primary {
		scores[i] = p.Score
	}
	cut := adaptiveCutoff(scores, profile.MaxContextChunks)
	quality := primary[:cut]

	logger.InfoContext(ctx, "primary retrieval completed",
		"scope", decision.Scope,
		"retrieved", len(primary),
		"quality", len(quality),
	)

	if len(quality) == 0 {
		logger.InfoContext(ctx, "no relevant passages found")
		return ContextResult{Scope: decision.Scope, NoContent: true}, nil
	}

	if err := ctx.Err(); err != nil {
		return ContextResult{}, err
	}

	siblings := e.expandSiblings(ctx, queryVector, quality, profile)

	final := allocateBudget(quality, siblings, profile)
	payload := assembleContext(final, decision.Scope)

	logger.InfoContext(ctx, "context build completed",
		"scope", decision.Scope,
		"passages", len(final),
		"siblings", len(siblings),
		"sources", len(payload.Sources),
		"context_length", len(payload.Context),
	)
	return payload, nil
}
