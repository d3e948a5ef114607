// Package phrase reassembles selected keywords into two-word phrases by source adjacency.
package phrase

import (
	"sort"
	"strings"

	"github.com/gcbaptista/go-title-engine/internal/rank"
)

// SelectionSize returns how many top-ranked keywords are selected out of n candidates:
// a divisor-th of them plus one. A divisor below 1 selects every candidate.
func SelectionSize(n, divisor int) int {
	if divisor < 1 {
		return n
	}
	size := n/divisor + 1
	if size > n {
		return n
	}
	return size
}

// Merge scans adjacent pairs of the full token sequence in source order.
//
// When both tokens of a pair are selected they are joined into a phrase and both are marked
// consumed. Otherwise the left token is emitted alone if it is selected and not consumed, and on
// the final pair the right token is emitted alone under the same condition, since it is never
// the left member of a pair.
//
// The result is deduplicated and in the order phrases were first produced.
func Merge(sequence []string, selected []string) []string {
	keywords := make(map[string]struct{}, len(selected))
	for _, word := range selected {
		keywords[word] = struct{}{}
	}
	isKeyword := func(word string) bool {
		_, ok := keywords[word]
		return ok
	}

	consumed := make(map[string]struct{})
	isConsumed := func(word string) bool {
		_, ok := consumed[word]
		return ok
	}

	out := make([]string, 0)
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for i := 0; i+1 < len(sequence); i++ {
		first, second := sequence[i], sequence[i+1]

		if isKeyword(first) && isKeyword(second) {
			add(first + " " + second)
			consumed[first] = struct{}{}
			consumed[second] = struct{}{}
			continue
		}

		if isKeyword(first) && !isConsumed(first) {
			add(first)
		}
		if i+1 == len(sequence)-1 && isKeyword(second) && !isConsumed(second) {
			add(second)
		}
	}

	return out
}

// Scored is a phrase with the score of its first word.
type Scored struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

// Score assigns each phrase the score of its first word and orders the phrases by descending
// score. Phrases with equal scores keep their input order.
func Score(phrases []string, scores rank.ScoreMap) []Scored {
	out := make([]Scored, len(phrases))
	for i, p := range phrases {
		head, _, _ := strings.Cut(p, " ")
		out[i] = Scored{Phrase: p, Score: scores[head]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Phrases returns the phrase texts of scored in order.
func Phrases(scored []Scored) []string {
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.Phrase
	}
	return out
}
