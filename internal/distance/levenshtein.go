// Package distance implements the edit-distance metric used to weight lexical graphs.
package distance

// Levenshtein computes the Levenshtein distance between two strings.
// It represents the minimum number of single-character edits (insertions, deletions, or substitutions)
// required to change one string into the other. Every operation costs 1.
// Strings are compared rune by rune with no normalization.
//
// Memory is O(min(len(a), len(b))): the shorter string indexes a single rolling row
// that is rebuilt for every rune of the longer one.
func Levenshtein(a, b string) int {
	runesA := []rune(a)
	runesB := []rune(b)

	// Keep the shorter string on the row axis
	if len(runesA) > len(runesB) {
		runesA, runesB = runesB, runesA
	}

	if len(runesA) == 0 {
		return len(runesB)
	}

	// prevRow[i] is the distance between runesA[:i] and the runes of b seen so far
	prevRow := make([]int, len(runesA)+1)
	currRow := make([]int, len(runesA)+1)
	for i := range prevRow {
		prevRow[i] = i
	}

	for j, runeB := range runesB {
		currRow[0] = j + 1

		for i, runeA := range runesA {
			if runeA == runeB {
				currRow[i+1] = prevRow[i]
				continue
			}

			substitution := prevRow[i]
			deletion := prevRow[i+1]
			insertion := currRow[i]

			currRow[i+1] = 1 + min3(substitution, deletion, insertion)
		}

		prevRow, currRow = currRow, prevRow
	}

	return prevRow[len(runesA)]
}

// Distance is Levenshtein returning a float64, the shape graph edge weights take.
func Distance(a, b string) float64 {
	return float64(Levenshtein(a, b))
}

// min3 is a helper function to find the minimum of three integers
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
