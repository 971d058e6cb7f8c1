package retrieval

import (
	"context"
	"strings"
)

const classifySystemPrompt = "You classify search queries over an archive of talk transcripts by breadth. " +
	"A narrow query targets one specific fact, passage, or event. " +
	"A medium query targets one topic that several talks may touch. " +
	"A broad query surveys a theme across the whole archive. " +
	"Reply with exactly one word: narrow, medium, or broad."

// scopeDecision is the tagged result of scope classification.
// Fallback is true when the provider failed or replied with something
// unparseable and the default scope was used instead.
type scopeDecision struct {
	Scope    Scope
	Fallback bool
}

// classifyScope assigns the query a scope via a single-token auxiliary model
// call. It never fails: provider errors and unparseable replies fall back to
// medium.
func (e *engine) classifyScope(ctx context.Context, query string) scopeDecision {
	reply, err := e.completer.Complete(ctx, classifySystemPrompt, query)
	if err != nil {
		return scopeDecision{Scope: ScopeMedium, Fallback: true}
	}

	scope, ok := parseScopeReply(reply)
	if !ok {
		return scopeDecision{Scope: ScopeMedium, Fallback: true}
	}
	return scopeDecision{Scope: scope}
}

// parseScopeReply extracts a scope from a model reply. The reply should be a
// single token but models pad with whitespace, casing, or punctuation.
func parseScopeReply(reply string) (Scope, bool) {
	normalized := strings.ToLower(strings.TrimSpace(reply))
	normalized = strings.Trim(normalized, ".!\"'")

	switch {
	case strings.HasPrefix(normalized, "narrow"):
		return ScopeNarrow, true
	case strings.HasPrefix(normalized, "medium"):
		return ScopeMedium, true
	case strings.HasPrefix(normalized, "broad"):
		return ScopeBroad, true
	default:
		return "", false
	}
}
