package indexer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestScannerScan(t *testing.T) {
	root := t.TempDir()

	mustWrite := func(relPath, content string) {
		t.Helper()
		path := filepath.Join(root, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	mustWrite("standalone.md", "# Standalone")
	mustWrite("luke/part-1.md", "# Part 1")
	mustWrite("luke/part-2.md", "# Part 2")
	mustWrite("luke/notes.txt", "not a transcript")
	mustWrite(".git/config.md", "hidden dir content")

	files, err := NewScanner(root).Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	got := make(map[string]bool, len(files))
	for _, f := range files {
		got[f.RelPath] = true
		if f.AbsPath == "" {
			t.Errorf("missing absolute path for %s", f.RelPath)
		}
	}

	want := []string{"standalone.md", "luke/part-1.md", "luke/part-2.md"}
	if len(got) != len(want) {
		t.Fatalf("got %d files %v, want %d", len(got), got, len(want))
	}
	for _, relPath := range want {
		if !got[relPath] {
			t.Errorf("missing %s", relPath)
		}
	}
}

func TestScannerCancelled(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.md"), []byte("# A"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewScanner(root).Scan(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
