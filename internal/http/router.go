package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"archive-ai/internal/answer"
	"archive-ai/internal/handlers"
	"archive-ai/internal/indexer"
	"archive-ai/internal/retrieval"
	"archive-ai/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	AnswerService   answer.Service
	Engine          retrieval.Engine
	TranscriptRepo  storage.TranscriptStore
	IndexerPipeline *indexer.Pipeline
	HealthChecker   handlers.CollectionChecker
	VectorInfo      handlers.CollectionInfoProvider
	Collection      string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/ask", handlers.NewAskHandler(deps.AnswerService))
		r.Method(http.MethodPost, "/context", handlers.NewContextHandler(deps.Engine))
		r.Method(http.MethodGet, "/transcripts", handlers.NewTranscriptsHandler(deps.TranscriptRepo))
		r.Method(http.MethodGet, "/stats", handlers.NewStatsHandler(deps.IndexerPipeline, deps.VectorInfo, deps.Collection))
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.HealthChecker, deps.Collection))
	})

	return r
}
