// Package keyword extracts ranked key phrases from a document with TextRank over candidate words.
package keyword

import (
	"fmt"

	"github.com/gcbaptista/go-title-engine/internal/candidate"
	"github.com/gcbaptista/go-title-engine/internal/graph"
	"github.com/gcbaptista/go-title-engine/internal/phrase"
	"github.com/gcbaptista/go-title-engine/internal/rank"
	"github.com/gcbaptista/go-title-engine/services"
)

// Options controls candidate selection and ranking.
type Options struct {
	AllowedTags      candidate.TagSet
	SelectionDivisor int
	Rank             rank.Config
	Metric           graph.Metric
}

// DefaultOptions returns NN/NNP/JJ candidates, a third of them selected, default PageRank.
func DefaultOptions() Options {
	return Options{
		AllowedTags:      candidate.DefaultTags(),
		SelectionDivisor: 3,
		Rank:             rank.DefaultConfig(),
		Metric:           graph.DefaultMetric,
	}
}

// Result holds the extracted phrases and the word scores they were derived from.
type Result struct {
	Phrases    []phrase.Scored `json:"phrases"`
	Scores     rank.ScoreMap   `json:"scores,omitempty"`
	Selected   []string        `json:"selected,omitempty"`
	Iterations int             `json:"iterations"`
}

// Empty reports whether no phrase was extracted.
func (r *Result) Empty() bool {
	return r == nil || len(r.Phrases) == 0
}

// Extractor runs the keyword pipeline over one document.
type Extractor struct {
	tokenizer services.Tokenizer
	tagger    services.Tagger
	opts      Options
}

// NewExtractor creates an extractor. Zero-valued options fall back to the defaults.
func NewExtractor(tokenizer services.Tokenizer, tagger services.Tagger, opts Options) *Extractor {
	defaults := DefaultOptions()
	if len(opts.AllowedTags) == 0 {
		opts.AllowedTags = defaults.AllowedTags
	}
	if opts.SelectionDivisor == 0 {
		opts.SelectionDivisor = defaults.SelectionDivisor
	}
	if opts.Rank == (rank.Config{}) {
		opts.Rank = defaults.Rank
	}
	if opts.Metric == nil {
		opts.Metric = defaults.Metric
	}
	return &Extractor{tokenizer: tokenizer, tagger: tagger, opts: opts}
}

// Extract returns the key phrases of text ordered by descending score.
// Fewer than two candidate words yield an empty result and no error.
func (e *Extractor) Extract(text string) (*Result, error) {
	tokens, err := e.tokenizer.Tokenize(text)
	if err != nil {
		return nil, fmt.Errorf("tokenizing document: %w", err)
	}

	tagged, err := e.tagger.Tag(tokens)
	if err != nil {
		return nil, fmt.Errorf("tagging document: %w", err)
	}

	labels := candidate.Labels(candidate.Select(tagged, e.opts.AllowedTags))
	if len(labels) < 2 {
		return &Result{Phrases: []phrase.Scored{}}, nil
	}

	g, err := graph.Build(labels, e.opts.Metric)
	if err != nil {
		return nil, fmt.Errorf("building keyword graph: %w", err)
	}

	ranked, err := rank.PageRank(g, e.opts.Rank)
	if err != nil {
		return nil, fmt.Errorf("ranking keywords: %w", err)
	}

	selected := ranked.Top(phrase.SelectionSize(len(labels), e.opts.SelectionDivisor))
	phrases := phrase.Merge(tokens, selected)

	return &Result{
		Phrases:    phrase.Score(phrases, ranked.Scores),
		Scores:     ranked.Scores,
		Selected:   selected,
		Iterations: ranked.Iterations,
	}, nil
}
