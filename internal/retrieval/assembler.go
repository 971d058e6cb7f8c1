package retrieval

import (
	"fmt"
	"strings"
)

// assembleContext serializes the final passage set into one delimited text
// block plus the deduplicated citation list. Citations are one per distinct
// transcript, first occurrence wins for display metadata.
func assembleContext(passages []Passage, scope Scope) ContextResult {
	if len(passages) == 0 {
		return ContextResult{Scope: scope, NoContent: true}
	}

	seen := make(map[string]struct{}, len(passages))
	sources := make([]SourceCitation, 0, len(passages))
	for _, p := range passages {
		if _, ok := seen[p.TranscriptID]; ok {
			continue
		}
		seen[p.TranscriptID] = struct{}{}
		sources = append(sources, SourceCitation{
			TranscriptID: p.TranscriptID,
			Title:        p.Title,
			Speaker:      p.Speaker,
			Date:         p.Date,
			Reference:    p.Reference,
		})
	}

	var builder strings.Builder
	builder.WriteString("--- Context from transcript archive ---\n\n")
	for _, p := range passages {
		builder.WriteString(passageHeader(p))
		builder.WriteString("\n")
		builder.WriteString(p.Text)
		builder.WriteString("\n\n")
	}
	builder.WriteString("--- End Context ---")

	return ContextResult{
		Context: builder.String(),
		Sources: sources,
		Scope:   scope,
	}
}

// passageHeader formats the inline source line preceding each passage.
// Speaker, date, and reference appear only when present.
func passageHeader(p Passage) string {
	header := fmt.Sprintf("[Source: %s", p.Title)
	if p.Speaker != "" {
		header += " - " + p.Speaker
	}
	if p.Date != "" {
		header += ", " + p.Date
	}
	header += "]"
	if p.Reference != "" {
		header += fmt.Sprintf(" (%s)", p.Reference)
	}
	return header
}
