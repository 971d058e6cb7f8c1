package indexer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScannedFile represents a transcript file found while scanning the archive root.
type ScannedFile struct {
	RelPath string // Relative path from the archive root, forward slashes
	AbsPath string
}

// Scanner finds transcript markdown files under the archive root.
type Scanner struct {
	root string
}

// NewScanner creates a scanner rooted at the transcripts directory.
func NewScanner(root string) *Scanner {
	return &Scanner{root: root}
}

// Scan walks the archive root and returns all markdown files. Hidden
// directories are skipped.
func (s *Scanner) Scan(ctx context.Context) ([]ScannedFile, error) {
	var files []ScannedFile

	err := filepath.Walk(s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path %s: %w", path, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != s.root {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != ".md" {
			return nil
		}

		relPath, err := filepath.Rel(s.root, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative path for %s: %w", path, err)
		}

		files = append(files, ScannedFile{
			RelPath: filepath.ToSlash(relPath),
			AbsPath: path,
		})
		return nil
	})
	if err != nil {
		return files, fmt.Errorf("failed to scan transcripts root %s: %w", s.root, err)
	}

	return files, nil
}
