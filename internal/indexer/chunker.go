package indexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	// Transcript passages are long spoken paragraphs, so segments run larger
	// than typical document chunks. Sizes are in runes (~4 runes per token
	// for the embedding model).
	minSegmentSize = 150
	maxSegmentSize = 1400
)

// TranscriptChunker splits transcript markdown into segments using goldmark
// AST parsing. Segments follow the heading hierarchy with size constraints.
type TranscriptChunker struct {
	parser goldmark.Markdown
}

// NewTranscriptChunker creates a new transcript chunker.
func NewTranscriptChunker() *TranscriptChunker {
	return &TranscriptChunker{
		parser: goldmark.New(),
	}
}

// ChunkTranscript parses the transcript body and returns the first top-level
// heading (empty if none) and the segments. The body should already have its
// front matter stripped.
func (c *TranscriptChunker) ChunkTranscript(body []byte) (firstHeading string, segments []Segment) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", nil
	}

	doc := c.parser.Parser().Parse(text.NewReader(body))

	var current *Segment
	var stack []headingInfo
	position := 0

	flush := func() {
		if current != nil && strings.TrimSpace(current.Text) != "" {
			current.Text = strings.TrimSpace(current.Text)
			segments = append(segments, *current)
			position++
		}
		current = nil
	}

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		if heading, ok := node.(*ast.Heading); ok {
			headingText := extractText(heading, body)
			if heading.Level == 1 && firstHeading == "" {
				firstHeading = headingText
			}

			// Pop headings of equal or higher level
			for len(stack) > 0 && stack[len(stack)-1].level >= heading.Level {
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, headingInfo{level: heading.Level, text: headingText})

			flush()
			current = &Segment{Position: position, Heading: headingPath(stack)}
			continue
		}

		blockText := extractText(node, body)
		if blockText == "" {
			continue
		}
		if current == nil {
			// Body text before the first heading
			current = &Segment{Position: position}
		}
		if current.Text != "" {
			current.Text += "\n\n"
		}
		current.Text += blockText
	}
	flush()

	return firstHeading, c.applySizeConstraints(segments)
}

// headingInfo tracks heading level and text for building heading paths.
type headingInfo struct {
	level int
	text  string
}

// headingPath renders the heading stack as "# Part 1 > ## Questions".
func headingPath(stack []headingInfo) string {
	parts := make([]string, len(stack))
	for i, h := range stack {
		parts[i] = fmt.Sprintf("%s %s", strings.Repeat("#", h.level), h.text)
	}
	return strings.Join(parts, " > ")
}

// extractText collects the plain text of a block node and its children.
// Nested blocks (list items, blockquote paragraphs) are joined with newlines.
func extractText(n ast.Node, source []byte) string {
	var b strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch v := node.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.Paragraph, *ast.ListItem:
			if node != n && b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteByte('\n')
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				b.Write(line.Value(source))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

// applySizeConstraints merges undersized segments forward and splits
// oversized ones, then renumbers positions.
func (c *TranscriptChunker) applySizeConstraints(segments []Segment) []Segment {
	if len(segments) == 0 {
		return segments
	}

	var result []Segment
	i := 0
	for i < len(segments) {
		current := segments[i]

		// Merge short segments into the next one while the result stays
		// within bounds. Merging across headings keeps question-and-answer
		// exchanges together.
		for utf8.RuneCountInString(current.Text) < minSegmentSize && i+1 < len(segments) {
			next := segments[i+1]
			merged := current.Text + "\n\n" + next.Text
			if utf8.RuneCountInString(merged) > maxSegmentSize {
				break
			}
			current.Text = merged
			if current.Heading == "" {
				current.Heading = next.Heading
			}
			i++
		}

		if utf8.RuneCountInString(current.Text) > maxSegmentSize {
			result = append(result, splitSegment(current)...)
		} else {
			result = append(result, current)
		}
		i++
	}

	for i := range result {
		result[i].Position = i
	}
	return result
}

// splitSegment splits a segment exceeding maxSegmentSize, preferring
// paragraph boundaries, then line breaks, then sentence ends.
func splitSegment(segment Segment) []Segment {
	runes := []rune(segment.Text)
	if len(runes) <= maxSegmentSize {
		return []Segment{segment}
	}

	var splits []Segment
	start := 0
	for start < len(runes) {
		end := start + maxSegmentSize
		if end >= len(runes) {
			splits = append(splits, Segment{
				Heading: segment.Heading,
				Text:    strings.TrimSpace(string(runes[start:])),
			})
			break
		}

		window := string(runes[start:end])
		split := end
		if p := strings.LastIndex(window, "\n\n"); p != -1 {
			split = start + utf8.RuneCountInString(window[:p+2])
		} else if p := strings.LastIndex(window, "\n"); p != -1 {
			split = start + utf8.RuneCountInString(window[:p+1])
		} else if p := strings.LastIndex(window, ". "); p != -1 {
			split = start + utf8.RuneCountInString(window[:p+2])
		}

		splits = append(splits, Segment{
			Heading: segment.Heading,
			Text:    strings.TrimSpace(string(runes[start:split])),
		})
		start = split
	}

	return splits
}
