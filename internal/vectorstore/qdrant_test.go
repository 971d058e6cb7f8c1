package vectorstore

import (
	"net/url"
	"strconv"
	"testing"
)

// TestNewQdrantStore_URLParsing tests URL parsing logic without creating a real client.
func TestNewQdrantStore_URLParsing(t *testing.T) {
	tests := []struct {
		name     string
		urlStr   string
		wantErr  bool
		wantHost string
		wantPort int
	}{
		{
			name:     "valid URL",
			urlStr:   "http://localhost:6333",
			wantErr:  false,
			wantHost: "localhost",
			wantPort: 6334, // gRPC port is HTTP port + 1
		},
		{
			name:     "URL with custom port",
			urlStr:   "http://localhost:9000",
			wantErr:  false,
			wantHost: "localhost",
			wantPort: 9001,
		},
		{
			name:    "invalid URL",
			urlStr:  "://invalid",
			wantErr: true,
		},
		{
			name:     "URL without port",
			urlStr:   "http://localhost",
			wantErr:  false,
			wantHost: "localhost",
			wantPort: 6334, // Default
		},
		{
			name:     "URL without hostname",
			urlStr:   "http://:6333",
			wantErr:  false,
			wantHost: "localhost",
			wantPort: 6334,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsedURL, err := url.Parse(tt.urlStr)
			if tt.wantErr {
				if err == nil {
					t.Error("expected URL parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("url.Parse() error = %v", err)
			}

			host := parsedURL.Hostname()
			if host == "" {
				host = "localhost"
			}
			if host != tt.wantHost {
				t.Errorf("host = %v, want %v", host, tt.wantHost)
			}

			port := 6334
			if parsedURL.Port() != "" {
				httpPort, err := strconv.Atoi(parsedURL.Port())
				if err == nil {
					port = httpPort + 1
				}
			}
			if port != tt.wantPort {
				t.Errorf("port = %v, want %v", port, tt.wantPort)
			}
		})
	}
}

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name           string
		filters        map[string]any
		wantNil        bool
		wantConditions int
	}{
		{
			name:    "no filters",
			filters: nil,
			wantNil: true,
		},
		{
			name:           "series filter",
			filters:        map[string]any{"series_id": "romans-series"},
			wantConditions: 1,
		},
		{
			name:           "transcript filter",
			filters:        map[string]any{"transcript_id": "abc-123"},
			wantConditions: 1,
		},
		{
			name:           "both filters",
			filters:        map[string]any{"series_id": "s1", "transcript_id": "t1"},
			wantConditions: 2,
		},
		{
			name:    "empty series id skipped",
			filters: map[string]any{"series_id": ""},
			wantNil: true,
		},
		{
			name:    "unknown keys ignored",
			filters: map[string]any{"speaker": "anyone"},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := buildFilter(tt.filters)
			if tt.wantNil {
				if filter != nil {
					t.Errorf("buildFilter() = %v, want nil", filter)
				}
				return
			}
			if filter == nil {
				t.Fatal("buildFilter() returned nil")
			}
			if len(filter.Must) != tt.wantConditions {
				t.Errorf("buildFilter() conditions = %d, want %d", len(filter.Must), tt.wantConditions)
			}
		})
	}
}
