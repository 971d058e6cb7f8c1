package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"archive-ai/internal/answer"
	answer_mocks "archive-ai/internal/answer/mocks"
	"archive-ai/internal/retrieval"

	"go.uber.org/mock/gomock"
)

func init() {
	// Suppress handler logging during tests
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func postJSON(t *testing.T, handler http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAskHandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := answer_mocks.NewMockAnswerService(ctrl)
	mockService.EXPECT().
		Ask(gomock.Any(), answer.AskRequest{Question: "what did the speaker say about grace?"}).
		Return(answer.AskResponse{
			Answer: "Grace is described as unearned favor.",
			Sources: []retrieval.SourceCitation{
				{TranscriptID: "t1", Title: "Grace and Law", Speaker: "J. Smith", Date: "2023-04-16"},
			},
			Scope: "narrow",
		}, nil)

	rec := postJSON(t, NewAskHandler(mockService), "/api/ask",
		AskRequest{Question: "what did the speaker say about grace?"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp AskResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Answer != "Grace is described as unearned favor." {
		t.Errorf("answer = %q", resp.Answer)
	}
	if len(resp.Sources) != 1 || resp.Sources[0].Title != "Grace and Law" {
		t.Errorf("sources = %+v", resp.Sources)
	}
	if resp.Scope != "narrow" {
		t.Errorf("scope = %q", resp.Scope)
	}
}

func TestAskHandlerAbstention(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := answer_mocks.NewMockAnswerService(ctrl)
	mockService.EXPECT().
		Ask(gomock.Any(), gomock.Any()).
		Return(answer.AskResponse{
			Answer:    "I could not find anything in the archive relevant to that question.",
			Scope:     "medium",
			Abstained: true,
			Reason:    answer.AbstainReasonNoContent,
		}, nil)

	rec := postJSON(t, NewAskHandler(mockService), "/api/ask",
		AskRequest{Question: "something unrelated"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp AskResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Abstained || resp.AbstainReason != "no_relevant_content" {
		t.Errorf("response = %+v, want abstention", resp)
	}
}

func TestAskHandlerErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "invalid JSON body",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty question",
			body:       `{"question": ""}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "validation error from service",
			body:       `{"question": "   "}`,
			serviceErr: &answer.ValidationError{Field: "question", Message: "cannot be empty"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "vector store unavailable",
			body:       `{"question": "anything"}`,
			serviceErr: errors.New("failed to build retrieval context: failed to search vector store: connection refused"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "embedding service down",
			body:       `{"question": "anything"}`,
			serviceErr: errors.New("failed to build retrieval context: failed to embed query: timeout"),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "LLM failure",
			body:       `{"question": "anything"}`,
			serviceErr: errors.New("failed to get LLM response: model overloaded"),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "external service sentinel",
			body:       `{"question": "anything"}`,
			serviceErr: fmt.Errorf("%w: chat backend returned 500", answer.ErrExternalService),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "unclassified failure",
			body:       `{"question": "anything"}`,
			serviceErr: errors.New("something unexpected"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := answer_mocks.NewMockAnswerService(ctrl)
			if tt.serviceErr != nil {
				mockService.EXPECT().
					Ask(gomock.Any(), gomock.Any()).
					Return(answer.AskResponse{}, tt.serviceErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			NewAskHandler(mockService).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body = %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestAskHandlerMethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/api/ask", nil)
	rec := httptest.NewRecorder()
	NewAskHandler(answer_mocks.NewMockAnswerService(ctrl)).ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
