package retrieval

import "fmt"

// Scope is the coarse query-breadth classification driving budget sizing.
// It is derived once per query and never mutated.
type Scope string

const (
	ScopeNarrow Scope = "narrow"
	ScopeMedium Scope = "medium"
	ScopeBroad  Scope = "broad"
)

// BudgetProfile is the immutable set of size limits active for a given scope.
type BudgetProfile struct {
	// TopK is the primary retrieval width.
	TopK int
	// MaxContextChunks is the final ceiling on the passage count.
	MaxContextChunks int
	// MaxChunksPerSource caps how many passages one transcript may contribute,
	// preventing a single long transcript from dominating the context.
	MaxChunksPerSource int
	// SiblingReserve is the number of slots reserved (not guaranteed) for
	// sibling expansion.
	SiblingReserve int
	// MaxSourcesForGrouping is how many top transcripts contribute series IDs
	// for sibling expansion.
	MaxSourcesForGrouping int
}

// maxSiblingsPerSource caps how many passages one transcript may contribute
// to the sibling portion. It is fixed regardless of scope to bound the
// fan-out cost of series queries.
const maxSiblingsPerSource = 3

// budgetProfiles is the single canonical configuration table keyed by scope.
var budgetProfiles = map[Scope]BudgetProfile{
	ScopeNarrow: {
		TopK:                  40,
		MaxContextChunks:      24,
		MaxChunksPerSource:    6,
		SiblingReserve:        4,
		MaxSourcesForGrouping: 2,
	},
	ScopeMedium: {
		TopK:                  80,
		MaxContextChunks:      48,
		MaxChunksPerSource:    8,
		SiblingReserve:        8,
		MaxSourcesForGrouping: 3,
	},
	ScopeBroad: {
		TopK:                  150,
		MaxContextChunks:      100,
		MaxChunksPerSource:    12,
		SiblingReserve:        16,
		MaxSourcesForGrouping: 5,
	},
}

// ProfileFor returns the budget profile for the given scope.
func ProfileFor(scope Scope) (BudgetProfile, error) {
	profile, ok := budgetProfiles[scope]
	if !ok {
		return BudgetProfile{}, fmt.Errorf("unknown scope %q", scope)
	}
	return profile, nil
}
