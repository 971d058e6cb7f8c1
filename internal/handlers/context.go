package handlers

import (
	"encoding/json"
	"net/http"

	"archive-ai/internal/contextutil"
	"archive-ai/internal/retrieval"
)

// ContextHandler exposes the retrieval stage directly, returning the
// assembled context without generating an answer. Useful for clients that
// bring their own generation step and for inspecting retrieval behavior.
type ContextHandler struct {
	engine retrieval.Engine
}

// NewContextHandler creates a new ContextHandler.
func NewContextHandler(engine retrieval.Engine) *ContextHandler {
	return &ContextHandler{engine: engine}
}

// ContextRequest represents the HTTP request payload for context retrieval.
type ContextRequest struct {
	Query string `json:"query"`
}

// ContextResponse represents the HTTP response payload for context retrieval.
type ContextResponse struct {
	Context   string           `json:"context"`
	Sources   []SourceResponse `json:"sources"`
	Scope     string           `json:"scope"`
	NoContent bool             `json:"no_content,omitempty"`
}

// ServeHTTP handles POST /api/context.
func (h *ContextHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req ContextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Query == "" {
		logger.WarnContext(ctx, "empty query in request")
		writeError(w, http.StatusBadRequest, "Query is required")
		return
	}

	result, err := h.engine.BuildContext(ctx, req.Query)
	if err != nil {
		logger.ErrorContext(ctx, "context request failed", "error", err)
		status, message := statusForError(err)
		writeError(w, status, message)
		return
	}

	sources := make([]SourceResponse, len(result.Sources))
	for i, src := range result.Sources {
		sources[i] = SourceResponse{
			TranscriptID: src.TranscriptID,
			Title:        src.Title,
			Speaker:      src.Speaker,
			Date:         src.Date,
			Reference:    src.Reference,
		}
	}

	writeJSON(w, http.StatusOK, ContextResponse{
		Context:   result.Context,
		Sources:   sources,
		Scope:     string(result.Scope),
		NoContent: result.NoContent,
	})
}
