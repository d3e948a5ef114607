package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gcbaptista/go-title-engine/config"
	"github.com/gcbaptista/go-title-engine/internal/baseline"
	"github.com/gcbaptista/go-title-engine/internal/candidate"
	"github.com/gcbaptista/go-title-engine/internal/corpus"
	"github.com/gcbaptista/go-title-engine/internal/errors"
	"github.com/gcbaptista/go-title-engine/internal/keyword"
	"github.com/gcbaptista/go-title-engine/internal/logging"
	"github.com/gcbaptista/go-title-engine/internal/metrics"
	"github.com/gcbaptista/go-title-engine/internal/phrase"
	"github.com/gcbaptista/go-title-engine/internal/rank"
	"github.com/gcbaptista/go-title-engine/internal/template"
	"github.com/gcbaptista/go-title-engine/model"
	"github.com/gcbaptista/go-title-engine/services"
)

// Detail explains how a title was produced.
type Detail struct {
	Generated  string            `json:"generated_title"`
	Candidates int               `json:"candidates"`
	Iterations int               `json:"iterations"`
	Score      float64           `json:"score,omitempty"`   // baseline: centrality of the chosen sentence
	Phrases    []phrase.Scored   `json:"phrases,omitempty"` // template: ranked key phrases
	Slots      []template.Filled `json:"slots,omitempty"`   // template: which phrase filled which slot
}

// Generator produces titles with either strategy.
// It implements the services.TitleGenerator interface.
type Generator struct {
	annotator services.Annotator
	keywords  *keyword.Extractor
	baseline  *baseline.Selector
	template  template.Template
	corpus    config.CorpusSettings
	workers   int
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// NewGenerator creates a generator from settings. Unset settings take their defaults;
// logger and m may be nil.
func NewGenerator(annotator services.Annotator, settings config.Settings, logger *zap.Logger, m *metrics.Metrics) (*Generator, error) {
	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		return nil, errors.NewValidationError("", fmt.Sprintf("invalid settings: %v", problems))
	}

	rankCfg := RankConfig(settings.Ranking)
	return &Generator{
		annotator: annotator,
		keywords: keyword.NewExtractor(annotator, annotator, keyword.Options{
			AllowedTags:      candidate.NewTagSet(settings.Keywords.AllowedTags...),
			SelectionDivisor: settings.Keywords.SelectionDivisor,
			Rank:             rankCfg,
		}),
		baseline: baseline.NewSelector(annotator, rankCfg, nil),
		template: TemplateFrom(settings.Template),
		corpus:   settings.Corpus,
		workers:  settings.Workers,
		logger:   logging.OrNop(logger),
		metrics:  m,
	}, nil
}

// RankConfig converts ranking settings.
func RankConfig(s config.RankingSettings) rank.Config {
	return rank.Config{
		DampingFactor: s.Damping,
		Tolerance:     s.Tolerance,
		MaxIterations: s.MaxIterations,
	}
}

// TemplateFrom converts template settings.
func TemplateFrom(s config.TemplateSettings) template.Template {
	slots := make([]template.Slot, len(s.Slots))
	for i, slot := range s.Slots {
		slots[i] = template.Slot{Name: slot.Name, Tags: append([]string(nil), slot.Tags...)}
	}
	return template.Template{Slots: slots}
}

// MinComments is the comment count below which Run skips a title.
func (g *Generator) MinComments() int {
	return g.corpus.MinComments
}

// Describe runs one strategy over already preprocessed text.
func (g *Generator) Describe(method model.Method, text string) (*Detail, error) {
	switch method {
	case model.MethodBaseline:
		sel, err := g.baseline.Choose(text)
		if err != nil {
			return nil, err
		}
		return &Detail{
			Generated:  sel.Sentence,
			Candidates: sel.Candidates,
			Iterations: sel.Iterations,
			Score:      sel.Score,
		}, nil

	case model.MethodTemplate:
		res, err := g.keywords.Extract(text)
		if err != nil {
			return nil, err
		}
		detail := &Detail{
			Candidates: len(res.Scores),
			Iterations: res.Iterations,
			Phrases:    res.Phrases,
		}
		if res.Empty() {
			return detail, nil
		}

		tagged, err := g.annotator.Tag(phrase.Phrases(res.Phrases))
		if err != nil {
			return nil, fmt.Errorf("tagging phrases: %w", err)
		}
		buckets := template.NewBuckets(tagged)
		detail.Slots = g.template.Fill(buckets)
		detail.Generated = g.template.Synthesize(buckets)
		return detail, nil

	default:
		return nil, errors.NewValidationError("method", fmt.Sprintf("unknown method '%s'", method))
	}
}

// Process generates a title for one document. Any failure, including a panic inside a
// collaborator, is reported through the result's Err as a *errors.DocumentError.
func (g *Generator) Process(method model.Method, title string, comments []string) model.DocumentResult {
	result, _ := g.process(method, title, comments)
	return result
}

func (g *Generator) process(method model.Method, title string, comments []string) (result model.DocumentResult, detail *Detail) {
	result = model.DocumentResult{Title: title, Method: method}
	defer func() {
		if r := recover(); r != nil {
			result.Generated = ""
			result.Err = errors.NewDocumentError(title, fmt.Errorf("panic: %v", r))
			detail = nil
		}
	}()

	detail, err := g.Describe(method, Preprocess(comments, g.corpus))
	if err != nil {
		result.Err = errors.NewDocumentError(title, err)
		return result, nil
	}
	result.Generated = detail.Generated
	return result, detail
}

// Explain is Generate that also returns the ranking detail (nil on failure).
func (g *Generator) Explain(method model.Method, title string, comments []string) (model.DocumentResult, *Detail) {
	start := time.Now()
	result, detail := g.process(method, title, comments)
	elapsed := time.Since(start)

	if result.OK() {
		g.metrics.ObserveDocument(string(method), metrics.OutcomeProcessed, elapsed)
		g.metrics.ObserveIterations(detail.Iterations)
		g.logger.Debug("generated title",
			zap.String("title", title),
			zap.String("method", string(method)),
			zap.Int("iterations", detail.Iterations),
			zap.Duration("elapsed", elapsed))
	} else {
		g.metrics.ObserveDocument(string(method), metrics.OutcomeSkipped, elapsed)
		g.logger.Warn("skipped document",
			zap.String("title", title),
			zap.String("method", string(method)),
			zap.Error(result.Err))
	}
	return result, detail
}

// Generate produces a title for one document and records metrics.
func (g *Generator) Generate(method model.Method, title string, comments []string) model.DocumentResult {
	result, _ := g.Explain(method, title, comments)
	return result
}

// Run generates titles for every title in c with at least MinComments comments.
//
// Documents are processed on up to the configured number of workers and share no state.
// Results are ordered by title. Once ctx is cancelled no further document is started and the
// remaining ones are reported as skipped. progress, if set, is called after every document and
// never concurrently.
func (g *Generator) Run(ctx context.Context, c model.Corpus, method model.Method, progress func(done, total int)) ([]model.DocumentResult, model.Summary) {
	eligible, filtered := corpus.Partition(c, g.corpus.MinComments)
	summary := model.Summary{Total: len(c), Filtered: filtered}
	for i := 0; i < filtered; i++ {
		g.metrics.ObserveDocument(string(method), metrics.OutcomeFiltered, 0)
	}

	results := make([]model.DocumentResult, len(eligible))

	var progressMu sync.Mutex
	done := 0
	report := func() {
		progressMu.Lock()
		defer progressMu.Unlock()
		done++
		if progress != nil {
			progress(done, len(eligible))
		}
	}

	slots := make(chan struct{}, g.workers)
	var wg sync.WaitGroup
	for i, title := range eligible {
		if err := ctx.Err(); err != nil {
			results[i] = model.DocumentResult{Title: title, Method: method, Err: errors.NewDocumentError(title, err)}
			report()
			continue
		}

		select {
		case slots <- struct{}{}:
		case <-ctx.Done():
			results[i] = model.DocumentResult{Title: title, Method: method, Err: errors.NewDocumentError(title, ctx.Err())}
			report()
			continue
		}

		wg.Add(1)
		go func(i int, title string) {
			defer func() {
				<-slots
				wg.Done()
			}()
			results[i] = g.Generate(method, title, c[title])
			report()
		}(i, title)
	}
	wg.Wait()

	for _, r := range results {
		summary.Add(r)
	}

	g.logger.Info("batch finished",
		zap.String("method", string(method)),
		zap.Int("total", summary.Total),
		zap.Int("processed", summary.Processed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("filtered", summary.Filtered))
	return results, summary
}
