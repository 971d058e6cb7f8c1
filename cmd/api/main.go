package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"archive-ai/internal/answer"
	"archive-ai/internal/config"
	"archive-ai/internal/http"
	"archive-ai/internal/indexer"
	"archive-ai/internal/llm"
	"archive-ai/internal/retrieval"
	"archive-ai/internal/storage"
	"archive-ai/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	transcriptRepo := storage.NewTranscriptRepo(db)
	segmentRepo := storage.NewSegmentRepo(db)

	ctx := context.Background()

	// Initialize Qdrant vector store
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)

	// Validate embedding client vector size (fail-fast)
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
	if _, err := embedder.EmbedText(ctx, "test"); err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	slog.Info("Embedding client validated", "vector_size", cfg.QdrantVectorSize)

	// Create indexing pipeline
	scanner := indexer.NewScanner(cfg.TranscriptsPath)
	pipeline := indexer.NewPipeline(
		scanner,
		transcriptRepo,
		segmentRepo,
		embedder,
		vectorStore,
		cfg.QdrantCollection,
	)

	// Create LLM client (shared by retrieval and answer generation)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)

	// Create retrieval engine and answer service
	engine := retrieval.NewEngine(llmClient, embedder, vectorStore, cfg.QdrantCollection)
	answerService := answer.NewService(engine, llmClient)
	slog.Info("Retrieval engine initialized")

	router := http.NewRouter(&http.Deps{
		AnswerService:   answerService,
		Engine:          engine,
		TranscriptRepo:  transcriptRepo,
		IndexerPipeline: pipeline,
		HealthChecker:   vectorStore,
		VectorInfo:      vectorStore,
		Collection:      cfg.QdrantCollection,
	})

	// Start indexing in background after router is ready
	go func() {
		slog.Info("Starting background indexing of transcripts", "root", cfg.TranscriptsPath)
		if err := pipeline.IndexAll(context.Background()); err != nil {
			slog.Error("Indexing completed with errors", "error", err)
		} else {
			slog.Info("Indexing completed successfully")
		}
	}()

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
