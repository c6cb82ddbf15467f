package lang

// Ratio returns a similarity score in [0, 1] for two strings: 1 for equal
// strings, 0 for completely disjoint ones. The score is
// 2*M / (len(a)+len(b)) where M is the total length of the matching
// blocks found by repeatedly taking the longest common substring and
// recursing into the unmatched flanks (the classic sequence-matcher
// formulation). Comparison is rune-wise, so Sinhala text scores the same
// way English text does.
//
// Design decision: We implement the ratio directly rather than pulling in
// an edit-distance dependency because the matching-blocks score, not
// Levenshtein distance, is the contract: the detection thresholds were
// calibrated against this exact formulation and a different metric would
// shift them.
func Ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	ar := []rune(a)
	br := []rune(b)
	matches := matchTotal(ar, br)
	return 2.0 * float64(matches) / float64(len(ar)+len(br))
}

// NormalizedRatio returns Ratio over the normalized forms of both strings.
// Blank-vs-blank compares equal; blank-vs-text scores zero.
func NormalizedRatio(a, b string) float64 {
	return Ratio(Normalize(a), Normalize(b))
}

// matchTotal sums the lengths of all matching blocks between a and b.
func matchTotal(a, b []rune) int {
	i, j, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchTotal(a[:i], b[:j]) +
		matchTotal(a[i+size:], b[j+size:])
}

// longestMatch finds the longest common substring of a and b, returning
// its start offsets and length. Earlier matches win ties, which keeps the
// block decomposition (and therefore the ratio) deterministic.
func longestMatch(a, b []rune) (bestI, bestJ, bestSize int) {
	// Index b's rune positions so inner iteration only visits candidate
	// alignments instead of the full cross product.
	b2j := make(map[rune][]int)
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	// j2len[j] is the length of the common substring ending at a[i-1],
	// b[j]. Rolling it forward one row at a time keeps memory linear in
	// the number of matching positions.
	j2len := make(map[int]int)
	for i, r := range a {
		next := make(map[int]int)
		for _, j := range b2j[r] {
			k := 1
			if j > 0 {
				k = j2len[j-1] + 1
			}
			next[j] = k
			if k > bestSize {
				bestI, bestJ, bestSize = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}
	return bestI, bestJ, bestSize
}
