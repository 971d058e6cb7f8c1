package handlers

import (
	"context"
	"net/http"

	"archive-ai/internal/contextutil"
	"archive-ai/internal/indexer"
	"archive-ai/internal/vectorstore"
)

// CollectionInfoProvider reports point count and status for the vector index
// collection. Satisfied by *vectorstore.QdrantStore.
type CollectionInfoProvider interface {
	GetCollectionInfo(ctx context.Context, collection string) (*vectorstore.CollectionInfo, error)
}

// StatsHandler reports indexing statistics for the archive.
type StatsHandler struct {
	pipeline   *indexer.Pipeline
	vectorInfo CollectionInfoProvider
	collection string
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(pipeline *indexer.Pipeline, vectorInfo CollectionInfoProvider, collection string) *StatsHandler {
	return &StatsHandler{
		pipeline:   pipeline,
		vectorInfo: vectorInfo,
		collection: collection,
	}
}

// VectorIndexStats describes the vector index side of the archive.
type VectorIndexStats struct {
	Points int    `json:"points"`
	Status string `json:"status"`
}

// StatsResponse combines database statistics with the vector index state.
type StatsResponse struct {
	*indexer.ArchiveStats
	VectorIndex *VectorIndexStats `json:"vector_index,omitempty"`
}

// ServeHTTP handles GET /api/stats.
// The vector index lookup is best-effort: a failure is logged and the field
// is omitted rather than failing the whole response.
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	stats, err := h.pipeline.Stats(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to compute archive stats", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	resp := StatsResponse{ArchiveStats: stats}
	if info, err := h.vectorInfo.GetCollectionInfo(ctx, h.collection); err != nil {
		logger.WarnContext(ctx, "failed to get vector index info", "collection", h.collection, "error", err)
	} else {
		resp.VectorIndex = &VectorIndexStats{
			Points: info.PointsCount,
			Status: info.Status,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
