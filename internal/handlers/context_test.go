package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"archive-ai/internal/retrieval"
	retrieval_mocks "archive-ai/internal/retrieval/mocks"

	"go.uber.org/mock/gomock"
)

func TestContextHandlerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := retrieval_mocks.NewMockEngine(ctrl)
	mockEngine.EXPECT().
		BuildContext(gomock.Any(), "faith and works").
		Return(retrieval.ContextResult{
			Context: "--- Context from transcript archive ---\n\npassage\n\n--- End Context ---",
			Sources: []retrieval.SourceCitation{{TranscriptID: "t1", Title: "Faith Alone"}},
			Scope:   retrieval.ScopeMedium,
		}, nil)

	rec := postJSON(t, NewContextHandler(mockEngine), "/api/context",
		ContextRequest{Query: "faith and works"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp ContextResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Context, "passage") {
		t.Errorf("context = %q", resp.Context)
	}
	if resp.Scope != "medium" {
		t.Errorf("scope = %q", resp.Scope)
	}
	if len(resp.Sources) != 1 || resp.Sources[0].TranscriptID != "t1" {
		t.Errorf("sources = %+v", resp.Sources)
	}
	if resp.NoContent {
		t.Error("unexpected no_content flag")
	}
}

func TestContextHandlerNoContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := retrieval_mocks.NewMockEngine(ctrl)
	mockEngine.EXPECT().
		BuildContext(gomock.Any(), gomock.Any()).
		Return(retrieval.ContextResult{Scope: retrieval.ScopeBroad, NoContent: true}, nil)

	rec := postJSON(t, NewContextHandler(mockEngine), "/api/context",
		ContextRequest{Query: "nothing in the archive matches this"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp ContextResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.NoContent {
		t.Error("expected no_content flag")
	}
	if resp.Scope != "broad" {
		t.Errorf("scope = %q", resp.Scope)
	}
}

func TestContextHandlerErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		engineErr  error
		wantStatus int
	}{
		{
			name:       "empty query",
			body:       `{"query": ""}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "blank query rejected by engine",
			body:       `{"query": "   "}`,
			engineErr:  errors.New("query must not be empty"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "search failure",
			body:       `{"query": "anything"}`,
			engineErr:  errors.New("failed to search vector store: unavailable"),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEngine := retrieval_mocks.NewMockEngine(ctrl)
			if tt.engineErr != nil {
				mockEngine.EXPECT().
					BuildContext(gomock.Any(), gomock.Any()).
					Return(retrieval.ContextResult{}, tt.engineErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/context", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			NewContextHandler(mockEngine).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
