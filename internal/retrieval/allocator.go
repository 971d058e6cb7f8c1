package retrieval

// allocateBudget merges quality and sibling passages into one ordered,
// bounded set. Slots up to SiblingReserve are held back for siblings but
// only as many as actually exist: a query with no useful siblings gives the
// reserve back to primary passages. One per-source counter is shared between
// both fills so a transcript cannot exceed MaxChunksPerSource in total.
// Deterministic given identical inputs; output never exceeds
// MaxContextChunks.
func allocateBudget(quality, siblings []Passage, profile BudgetProfile) []Passage {
	siblingReserved := len(siblings)
	if siblingReserved > profile.SiblingReserve {
		siblingReserved = profile.SiblingReserve
	}
	mainBudget := profile.MaxContextChunks - siblingReserved

	perSource := make(map[string]int)
	out := make([]Passage, 0, profile.MaxContextChunks)

	for _, p := range quality {
		if len(out) >= mainBudget {
			break
		}
		if perSource[p.TranscriptID] >= profile.MaxChunksPerSource {
			continue
		}
		out = append(out, p)
		perSource[p.TranscriptID]++
	}

	for _, p := range siblings {
		if len(out) >= profile.MaxContextChunks {
			break
		}
		if perSource[p.TranscriptID] >= profile.MaxChunksPerSource {
			continue
		}
		out = append(out, p)
		perSource[p.TranscriptID]++
	}

	return out
}
