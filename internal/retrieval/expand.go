package retrieval

import (
	"context"
	"strings"
)

const expandSystemPrompt = "You rewrite search queries over an archive of talk transcripts to improve recall. " +
	"Rewrite the query as one dense paragraph that keeps the original terms and adds synonyms, " +
	"closely related concepts, and the technical or traditional vocabulary a speaker would use " +
	"for the same subject. Include adjacent terminology even when it is not a strict synonym. " +
	"Return only the paragraph: no list, no alternatives, no commentary."

// expansion is the tagged result of query expansion.
// Fallback is true when the provider failed and the original query text is
// used for embedding instead.
type expansion struct {
	Text     string
	Fallback bool
}

// expandQuery rewrites the query into a denser paragraph carrying synonyms
// and adjacent-topic vocabulary. Expansion is deliberately aggressive: false
// positives are trimmed later by the adaptive cutoff, while recall lost here
// is unrecoverable. On failure the original query is returned unchanged.
func (e *engine) expandQuery(ctx context.Context, query string) expansion {
	reply, err := e.completer.Complete(ctx, expandSystemPrompt, query)
	if err != nil {
		return expansion{Text: query, Fallback: true}
	}

	expanded := strings.TrimSpace(reply)
	if expanded == "" {
		return expansion{Text: query, Fallback: true}
	}
	return expansion{Text: expanded}
}
