package handlers

import (
	"encoding/json"
	"net/http"

	"archive-ai/internal/answer"
	"archive-ai/internal/contextutil"
)

// AskHandler handles HTTP requests for archive questions.
type AskHandler struct {
	answerService answer.Service
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(answerService answer.Service) *AskHandler {
	return &AskHandler{answerService: answerService}
}

// AskRequest represents the HTTP request payload for archive questions.
type AskRequest struct {
	Question string `json:"question"`
}

// SourceResponse identifies one transcript cited in an answer.
type SourceResponse struct {
	TranscriptID string `json:"transcript_id"`
	Title        string `json:"title"`
	Speaker      string `json:"speaker,omitempty"`
	Date         string `json:"date,omitempty"`
	Reference    string `json:"reference,omitempty"`
}

// AskResponse represents the HTTP response payload for archive questions.
type AskResponse struct {
	// The generated answer
	Answer string `json:"answer"`

	// Transcripts the answer draws on, one entry per transcript
	Sources []SourceResponse `json:"sources"`

	// Query scope the retrieval resolved to: "narrow", "medium", or "broad"
	Scope string `json:"scope,omitempty"`

	// Abstained indicates the system declined to answer
	Abstained bool `json:"abstained,omitempty"`

	// AbstainReason explains an abstention (e.g. "no_relevant_content")
	AbstainReason string `json:"abstain_reason,omitempty"`
}

// ServeHTTP handles POST /api/ask.
func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Question == "" {
		logger.WarnContext(ctx, "empty question in request")
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	resp, err := h.answerService.Ask(ctx, answer.AskRequest{Question: req.Question})
	if err != nil {
		logger.ErrorContext(ctx, "ask request failed", "error", err)
		status, message := statusForError(err)
		writeError(w, status, message)
		return
	}

	sources := make([]SourceResponse, len(resp.Sources))
	for i, src := range resp.Sources {
		sources[i] = SourceResponse{
			TranscriptID: src.TranscriptID,
			Title:        src.Title,
			Speaker:      src.Speaker,
			Date:         src.Date,
			Reference:    src.Reference,
		}
	}

	writeJSON(w, http.StatusOK, AskResponse{
		Answer:        resp.Answer,
		Sources:       sources,
		Scope:         resp.Scope,
		Abstained:     resp.Abstained,
		AbstainReason: resp.Reason,
	})
}
