package retrieval

// scoreGapThreshold is the minimum absolute score drop that counts as a cliff
// between strong matches and noise.
const scoreGapThreshold = float32(0.03)

// minKeepFloor is the minimum number of passages always retained before the
// cutoff scan starts, regardless of scope.
const minKeepFloor = 8

// adaptiveCutoff finds the natural cliff in a descending score list and
// returns the cut index c: passages [0, c) are retained.
//
// The scan starts past minKeep = max(8, ceil(0.3 * maxContextChunks)) and
// tracks the largest gap of at least scoreGapThreshold. A smooth decay with
// no qualifying gap keeps the full list rather than under-returning. Ties
// between equal maximal gaps resolve to the lowest index because only a
// strictly greater gap moves the cut.
func adaptiveCutoff(scores []float32, maxContextChunks int) int {
	minKeep := minKeepFloor
	if k := (3*maxContextChunks + 9) / 10; k > minKeep { // ceil(0.3 * maxContextChunks)
		minKeep = k
	}

	if len(scores) <= minKeep {
		return len(scores)
	}

	cut := len(scores)
	var largestGap float32
	for i := minKeep; i < len(scores); i++ {
		gap := scores[i-1] - scores[i]
		if gap >= scoreGapThreshold && gap > largestGap {
			largestGap = gap
			cut = i
		}
	}
	return cut
}
