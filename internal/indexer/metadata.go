package indexer

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode"
)

// parseFrontMatter splits a transcript file into its metadata block and body.
// The metadata block is an optional leading section delimited by "---" lines
// holding flat "Key: Value" pairs:
//
//	---
//	Title: The Cost of Discipleship
//	Speaker: J. Smith
//	Series: luke
//	Date: 2023-04-16
//	Reference: Luke 14:25-33
//	---
//
// Unrecognized keys are ignored. Files without a front matter block return
// empty metadata and the full content as body.
func parseFrontMatter(content []byte) (TranscriptMeta, []byte) {
	var meta TranscriptMeta

	trimmed := bytes.TrimLeft(content, "\uFEFF\n\r")
	if !bytes.HasPrefix(trimmed, []byte("---")) {
		return meta, content
	}

	// Consume the opening delimiter line
	nl := bytes.IndexByte(trimmed, '\n')
	if nl == -1 || strings.TrimSpace(string(trimmed[:nl])) != "---" {
		return meta, content
	}

	// Walk lines by raw byte offset so the body slice lands exactly past the
	// closing delimiter regardless of LF or CRLF endings.
	block := trimmed[nl+1:]
	closed := false
	pos := 0
	for pos < len(block) {
		lineEnd := len(block)
		next := len(block)
		if i := bytes.IndexByte(block[pos:], '\n'); i != -1 {
			lineEnd = pos + i
			next = lineEnd + 1
		}
		line := string(block[pos:lineEnd])
		pos = next

		if strings.TrimSpace(line) == "---" {
			closed = true
			break
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "title":
			meta.Title = value
		case "speaker":
			meta.Speaker = value
		case "series":
			meta.SeriesID = value
		case "date":
			meta.Date = value
		case "reference", "ref":
			meta.Reference = value
		}
	}

	if !closed {
		// Unterminated block, treat the whole file as body
		return TranscriptMeta{}, content
	}
	return meta, block[pos:]
}

// titleFromFilename derives a display title from a filename by stripping the
// extension and capitalizing words. Used when neither the front matter nor
// the body provides a title.
func titleFromFilename(filename string) string {
	name := filepath.Base(filename)
	if ext := filepath.Ext(name); ext != "" {
		name = name[:len(name)-len(ext)]
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)

	words := strings.Fields(name)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
