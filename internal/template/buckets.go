package template

import "github.com/gcbaptista/go-title-engine/model"

// Buckets maps a part-of-speech tag to candidate texts in descending importance.
// A Buckets value is never modified after NewBuckets returns.
type Buckets struct {
	byTag map[string][]string
}

// NewBuckets groups tagged candidates by tag. Candidates must already be in rank order;
// that order is kept within each bucket.
func NewBuckets(tagged []model.Token) Buckets {
	byTag := make(map[string][]string)
	for _, tok := range tagged {
		byTag[tok.Tag] = append(byTag[tok.Tag], tok.Text)
	}
	return Buckets{byTag: byTag}
}

// Get returns a copy of the bucket for tag.
func (b Buckets) Get(tag string) []string {
	entries := b.byTag[tag]
	out := make([]string, len(entries))
	copy(out, entries)
	return out
}

// Len returns the number of entries in the bucket for tag.
func (b Buckets) Len(tag string) int {
	return len(b.byTag[tag])
}

// Tags returns the number of non-empty buckets.
func (b Buckets) Tags() int {
	return len(b.byTag)
}

// cursor walks Buckets without consuming them: it records how many entries of each bucket
// a single synthesis has already placed.
type cursor struct {
	buckets Buckets
	taken   map[string]int
}

func newCursor(b Buckets) *cursor {
	return &cursor{buckets: b, taken: make(map[string]int)}
}

// next returns the first unplaced entry of the first non-exhausted bucket among tags.
func (c *cursor) next(tags []string) (value, tag string, ok bool) {
	for _, t := range tags {
		entries := c.buckets.byTag[t]
		if i := c.taken[t]; i < len(entries) {
			c.taken[t] = i + 1
			return entries[i], t, true
		}
	}
	return "", "", false
}
