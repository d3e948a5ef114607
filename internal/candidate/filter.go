// Package candidate turns a tagged token stream into the ordered, duplicate-free
// node set used for keyword ranking.
package candidate

import (
	"strings"

	"github.com/gcbaptista/go-title-engine/model"
)

// TagSet is a set of part-of-speech tags.
type TagSet map[string]struct{}

// NewTagSet builds a TagSet from tags.
func NewTagSet(tags ...string) TagSet {
	set := make(TagSet, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

// Has reports whether tag is in the set.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// DefaultTags keeps common nouns, proper nouns and adjectives.
func DefaultTags() TagSet {
	return NewTagSet(model.TagNoun, model.TagProperNoun, model.TagAdjective)
}

// Filter returns the tokens whose tag is in allowed, in their original order.
func Filter(tokens []model.Token, allowed TagSet) []model.Token {
	out := make([]model.Token, 0, len(tokens))
	for _, tok := range tokens {
		if allowed.Has(tok.Tag) {
			out = append(out, tok)
		}
	}
	return out
}

// Normalize strips every period from each token so abbreviations like "U.S." collapse to "US".
// Tokens left empty are dropped.
func Normalize(tokens []model.Token) []model.Token {
	out := make([]model.Token, 0, len(tokens))
	for _, tok := range tokens {
		text := strings.ReplaceAll(tok.Text, ".", "")
		if text == "" {
			continue
		}
		out = append(out, model.Token{Text: text, Tag: tok.Tag})
	}
	return out
}

// Unique keeps the first occurrence of every surface form, preserving order.
// A later token with an already seen text is dropped whatever its tag.
func Unique(tokens []model.Token) []model.Token {
	out := make([]model.Token, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok.Text]; ok {
			continue
		}
		seen[tok.Text] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// Select applies Filter, Normalize and Unique in that order. It is idempotent.
func Select(tokens []model.Token, allowed TagSet) []model.Token {
	return Unique(Normalize(Filter(tokens, allowed)))
}

// Labels returns the surface forms of the selected candidates.
func Labels(tokens []model.Token) []string {
	return model.Texts(tokens)
}
