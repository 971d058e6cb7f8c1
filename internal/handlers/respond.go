package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"archive-ai/internal/answer"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}

// statusForError maps service errors to HTTP status codes.
// Validation failures are 400. Vector store failures are 503 since the
// index is a local dependency; LLM and embedding failures are 502.
func statusForError(err error) (int, string) {
	var validationErr *answer.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}
	if errors.Is(err, answer.ErrInvalidInput) {
		return http.StatusBadRequest, "Invalid input"
	}
	if errors.Is(err, answer.ErrNotFound) {
		return http.StatusNotFound, "Not found"
	}
	if errors.Is(err, answer.ErrExternalService) {
		return http.StatusBadGateway, "External service error"
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "query must not be empty") {
		return http.StatusBadRequest, "Query is required"
	}
	if strings.Contains(errMsg, "vector store") ||
		strings.Contains(errMsg, "vectorstore") ||
		strings.Contains(errMsg, "qdrant") ||
		strings.Contains(errMsg, "failed to search") {
		return http.StatusServiceUnavailable, "Vector store unavailable"
	}
	if strings.Contains(errMsg, "embed") || strings.Contains(errMsg, "llm") {
		return http.StatusBadGateway, "External service error"
	}

	return http.StatusInternalServerError, "Internal server error"
}
