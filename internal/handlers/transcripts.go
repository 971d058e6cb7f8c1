package handlers

import (
	"net/http"

	"archive-ai/internal/contextutil"
	"archive-ai/internal/storage"
)

// TranscriptsHandler lists the transcripts currently in the archive index.
type TranscriptsHandler struct {
	transcriptRepo storage.TranscriptStore
}

// NewTranscriptsHandler creates a new TranscriptsHandler.
func NewTranscriptsHandler(transcriptRepo storage.TranscriptStore) *TranscriptsHandler {
	return &TranscriptsHandler{transcriptRepo: transcriptRepo}
}

// TranscriptResponse represents one indexed transcript.
type TranscriptResponse struct {
	ID         string `json:"id"`
	RelPath    string `json:"rel_path"`
	Title      string `json:"title"`
	Speaker    string `json:"speaker,omitempty"`
	SeriesID   string `json:"series_id,omitempty"`
	RecordedOn string `json:"recorded_on,omitempty"`
	Reference  string `json:"reference,omitempty"`
}

// TranscriptsResponse represents the transcript listing payload.
type TranscriptsResponse struct {
	Transcripts []TranscriptResponse `json:"transcripts"`
	Count       int                  `json:"count"`
}

// ServeHTTP handles GET /api/transcripts.
func (h *TranscriptsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	records, err := h.transcriptRepo.ListAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list transcripts", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list transcripts")
		return
	}

	transcripts := make([]TranscriptResponse, len(records))
	for i, rec := range records {
		transcripts[i] = TranscriptResponse{
			ID:         rec.ID,
			RelPath:    rec.RelPath,
			Title:      rec.Title,
			Speaker:    rec.Speaker,
			SeriesID:   rec.SeriesID,
			RecordedOn: rec.RecordedOn,
			Reference:  rec.Reference,
		}
	}

	writeJSON(w, http.StatusOK, TranscriptsResponse{
		Transcripts: transcripts,
		Count:       len(transcripts),
	})
}
