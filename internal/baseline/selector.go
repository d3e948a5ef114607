// Package baseline picks the most central sentence of a document as its title.
package baseline

import (
	"fmt"

	"github.com/gcbaptista/go-title-engine/internal/graph"
	"github.com/gcbaptista/go-title-engine/internal/rank"
	"github.com/gcbaptista/go-title-engine/services"
)

// Selection is the winning sentence with ranking details.
type Selection struct {
	Sentence   string  `json:"sentence"`
	Score      float64 `json:"score"`
	Candidates int     `json:"candidates"`
	Iterations int     `json:"iterations"`
}

// Selector ranks sentences by edit-distance centrality.
type Selector struct {
	segmenter services.Segmenter
	cfg       rank.Config
	metric    graph.Metric
}

// NewSelector creates a selector. A nil metric weights sentences by Levenshtein distance.
func NewSelector(segmenter services.Segmenter, cfg rank.Config, metric graph.Metric) *Selector {
	if cfg == (rank.Config{}) {
		cfg = rank.DefaultConfig()
	}
	if metric == nil {
		metric = graph.DefaultMetric
	}
	return &Selector{segmenter: segmenter, cfg: cfg, metric: metric}
}

// Select returns the top-ranked sentence of text verbatim, or "" when text has fewer than two
// distinct sentences.
func (s *Selector) Select(text string) (string, error) {
	sel, err := s.Choose(text)
	if err != nil {
		return "", err
	}
	return sel.Sentence, nil
}

// Choose is Select with the winning score and iteration count.
func (s *Selector) Choose(text string) (*Selection, error) {
	sentences, err := s.segmenter.Sentences(text)
	if err != nil {
		return nil, fmt.Errorf("segmenting document: %w", err)
	}

	distinct := dedupe(sentences)
	if len(distinct) < 2 {
		return &Selection{Candidates: len(distinct)}, nil
	}

	g, err := graph.Build(distinct, s.metric)
	if err != nil {
		return nil, fmt.Errorf("building sentence graph: %w", err)
	}

	result, err := rank.PageRank(g, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("ranking sentences: %w", err)
	}

	best, _ := result.Best()
	return &Selection{
		Sentence:   best,
		Score:      result.Scores[best],
		Candidates: len(distinct),
		Iterations: result.Iterations,
	}, nil
}

func dedupe(sentences []string) []string {
	seen := make(map[string]struct{}, len(sentences))
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
