package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gcbaptista/go-title-engine/internal/corpus"
	"github.com/gcbaptista/go-title-engine/model"
	"github.com/gcbaptista/go-title-engine/services"
)

// Count is how often a tag or tag sequence occurred.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// POSReport summarizes the part-of-speech makeup of corpus titles.
type POSReport struct {
	Titles     int     `json:"titles"`
	Skipped    int     `json:"skipped"`
	Tags       []Count `json:"tags"`
	Structures []Count `json:"structures"` // whole-title tag sequences joined by "/"
}

// BuildPOSReport tokenizes and tags every title with at least minComments comments.
// Titles the annotator fails on are counted as skipped.
func BuildPOSReport(c model.Corpus, minComments int, tokenizer services.Tokenizer, tagger services.Tagger) *POSReport {
	eligible, _ := corpus.Partition(c, minComments)

	tags := make(map[string]int)
	structures := make(map[string]int)
	rep := &POSReport{}

	for _, title := range eligible {
		tagged, err := tagTitle(title, tokenizer, tagger)
		if err != nil {
			rep.Skipped++
			continue
		}
		rep.Titles++

		seq := make([]string, len(tagged))
		for i, tok := range tagged {
			tags[tok.Tag]++
			seq[i] = tok.Tag
		}
		structures[strings.Join(seq, "/")]++
	}

	rep.Tags = sortCounts(tags)
	rep.Structures = sortCounts(structures)
	return rep
}

func tagTitle(title string, tokenizer services.Tokenizer, tagger services.Tagger) (tagged []model.Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	tokens, err := tokenizer.Tokenize(title)
	if err != nil {
		return nil, err
	}
	return tagger.Tag(tokens)
}

// sortCounts orders by count descending, then key ascending.
func sortCounts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, v := range m {
		out = append(out, Count{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// WriteCounts prints one "KEY COUNT" line per entry.
func WriteCounts(w io.Writer, counts []Count) error {
	for _, c := range counts {
		if _, err := fmt.Fprintf(w, "%s %d\n", c.Key, c.Count); err != nil {
			return err
		}
	}
	return nil
}
