// Package template fills a fixed part-of-speech skeleton with the best-ranked candidates.
package template

import (
	"strings"

	"github.com/gcbaptista/go-title-engine/model"
)

// Slot is one position of a template. Tags are tried in priority order.
type Slot struct {
	Name string   `json:"name" yaml:"name" mapstructure:"name"`
	Tags []string `json:"tags" yaml:"tags" mapstructure:"tags"`
}

// Template is an ordered list of slots.
type Template struct {
	Slots []Slot `json:"slots" yaml:"slots" mapstructure:"slots"`
}

// Filled records which candidate a slot received.
type Filled struct {
	Slot  string `json:"slot"`
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// DefaultTemplate is subject + verb + descriptor + object.
func DefaultTemplate() Template {
	return Template{Slots: []Slot{
		{Name: "subject", Tags: []string{model.TagProperNoun, model.TagNoun}},
		{Name: "verb", Tags: []string{model.TagVerbBase, model.TagVerbPresent3rd, model.TagVerbPast}},
		{Name: "descriptor", Tags: []string{model.TagAdjective}},
		{Name: "object", Tags: []string{model.TagNoun, model.TagProperNoun}},
	}}
}

// Fill assigns candidates to slots in order. Each slot takes the next unused entry from the
// first of its buckets that still has one; a slot whose buckets are all exhausted is omitted.
// b itself is left untouched, so the same Buckets can be filled any number of times.
func (t Template) Fill(b Buckets) []Filled {
	cur := newCursor(b)
	filled := make([]Filled, 0, len(t.Slots))
	for _, slot := range t.Slots {
		value, tag, ok := cur.next(slot.Tags)
		if !ok {
			continue
		}
		filled = append(filled, Filled{Slot: slot.Name, Tag: tag, Value: value})
	}
	return filled
}

// Synthesize joins the filled slot values with single spaces. It never fails:
// missing slots shorten the title and an empty bucket map yields "".
func (t Template) Synthesize(b Buckets) string {
	filled := t.Fill(b)
	parts := make([]string, 0, len(filled))
	for _, f := range filled {
		parts = append(parts, f.Value)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
