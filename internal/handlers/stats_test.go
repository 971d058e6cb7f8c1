package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"archive-ai/internal/indexer"
	"archive-ai/internal/storage"
	"archive-ai/internal/vectorstore"
)

type fakeInfoProvider struct {
	info *vectorstore.CollectionInfo
	err  error
}

func (f fakeInfoProvider) GetCollectionInfo(ctx context.Context, collection string) (*vectorstore.CollectionInfo, error) {
	return f.info, f.err
}

// newStatsPipeline builds a pipeline backed by an empty SQLite database.
// Only the repositories are needed for stats queries.
func newStatsPipeline(t *testing.T) *indexer.Pipeline {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return indexer.NewPipeline(nil, storage.NewTranscriptRepo(db), storage.NewSegmentRepo(db), nil, nil, "transcripts")
}

func TestStatsHandlerIncludesVectorIndex(t *testing.T) {
	provider := fakeInfoProvider{
		info: &vectorstore.CollectionInfo{VectorSize: 768, PointsCount: 42, Status: "GREEN"},
	}
	handler := NewStatsHandler(newStatsPipeline(t), provider, "transcripts")

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp StatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.VectorIndex == nil {
		t.Fatal("response missing vector_index")
	}
	if resp.VectorIndex.Points != 42 {
		t.Errorf("points = %d, want 42", resp.VectorIndex.Points)
	}
	if resp.VectorIndex.Status != "GREEN" {
		t.Errorf("status = %q, want GREEN", resp.VectorIndex.Status)
	}
}

func TestStatsHandlerVectorIndexLookupFailureIsOmitted(t *testing.T) {
	provider := fakeInfoProvider{err: errors.New("qdrant unreachable")}
	handler := NewStatsHandler(newStatsPipeline(t), provider, "transcripts")

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 despite vector index failure", rec.Code)
	}

	var resp StatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.VectorIndex != nil {
		t.Errorf("vector_index = %+v, want omitted", resp.VectorIndex)
	}
	if resp.ArchiveStats == nil {
		t.Fatal("response missing archive stats")
	}
	if resp.Transcripts != 0 {
		t.Errorf("transcripts = %d, want 0 for empty database", resp.Transcripts)
	}
}

func TestStatsHandlerMethodNotAllowed(t *testing.T) {
	handler := NewStatsHandler(newStatsPipeline(t), fakeInfoProvider{}, "transcripts")

	req := httptest.NewRequest(http.MethodPost, "/api/stats", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
