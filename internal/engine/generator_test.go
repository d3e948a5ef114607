package engine

import (
	"context"
	"errors"
	"sync"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-title-engine/config"
	apperrors "github.com/gcbaptista/go-title-engine/internal/errors"
	"github.com/gcbaptista/go-title-engine/internal/metrics"
	testutil "github.com/gcbaptista/go-title-engine/internal/testing"
	"github.com/gcbaptista/go-title-engine/model"
)

func testLexicon() map[string]string {
	return map[string]string{
		"the": "DT", "is": "VBZ", "was": "VBD", "a": "DT",
		"big": "JJ", "red": "JJ", "car": "NN", "cat": "NN",
	}
}

func newTestGenerator(t *testing.T, a *testutil.LexiconAnnotator, mutate func(s *config.Settings), m *metrics.Metrics) *Generator {
	t.Helper()
	settings := config.Default()
	settings.Corpus.MinComments = 2
	if mutate != nil {
		mutate(&settings)
	}
	g, err := NewGenerator(a, settings, nil, m)
	require.NoError(t, err)
	return g
}

func TestGenerate_Baseline(t *testing.T) {
	g := newTestGenerator(t, testutil.NewLexiconAnnotator(testLexicon()), nil, nil)

	result := g.Generate(model.MethodBaseline, "Cats", []string{"The cat sat.", "[deleted]", "&gt; The cat ran fast."})
	require.NoError(t, result.Err)
	assert.Equal(t, "Cats", result.Title)
	assert.Equal(t, model.MethodBaseline, result.Method)
	assert.Equal(t, "The cat sat.", result.Generated)
}

func TestGenerate_TemplateSingleKeyword(t *testing.T) {
	g := newTestGenerator(t, testutil.NewLexiconAnnotator(testLexicon()), nil, nil)

	// two tied candidates select one keyword, the first seen
	result, detail := g.Explain(model.MethodTemplate, "France", []string{"Paris is big."})
	require.NoError(t, result.Err)
	assert.Equal(t, "Paris", result.Generated)

	require.NotNil(t, detail)
	assert.Equal(t, 2, detail.Candidates)
	require.Len(t, detail.Phrases, 1)
	assert.InDelta(t, 0.5, detail.Phrases[0].Score, 1e-9)
	require.Len(t, detail.Slots, 1)
	assert.Equal(t, "subject", detail.Slots[0].Slot)
	assert.Equal(t, model.TagProperNoun, detail.Slots[0].Tag)
}

func TestGenerate_TemplateFillsSlots(t *testing.T) {
	g := newTestGenerator(t, testutil.NewLexiconAnnotator(testLexicon()), func(s *config.Settings) {
		s.Keywords.SelectionDivisor = 1
	}, nil)

	result, detail := g.Explain(model.MethodTemplate, "Cars", []string{"Paris is big.", "The car is red."})
	require.NoError(t, result.Err)

	require.Len(t, detail.Slots, 3)
	assert.Equal(t, "Paris", detail.Slots[0].Value)
	assert.Equal(t, "descriptor", detail.Slots[1].Slot)
	assert.Contains(t, []string{"big", "red"}, detail.Slots[1].Value)
	assert.Equal(t, "car", detail.Slots[2].Value)
	assert.Equal(t, "Paris "+detail.Slots[1].Value+" car", result.Generated)
}

func TestGenerate_EmptyResultsAreNotErrors(t *testing.T) {
	g := newTestGenerator(t, testutil.NewLexiconAnnotator(testLexicon()), nil, nil)

	for _, method := range []model.Method{model.MethodBaseline, model.MethodTemplate} {
		result := g.Generate(method, "Quiet", []string{"[deleted]", "The cat."})
		assert.NoError(t, result.Err, string(method))
		assert.Empty(t, result.Generated, string(method))
	}
}

func TestProcess_CollaboratorFailures(t *testing.T) {
	boom := errors.New("tagger crashed")

	failing := testutil.NewLexiconAnnotator(testLexicon())
	failing.Err = boom
	g := newTestGenerator(t, failing, nil, nil)

	result := g.Process(model.MethodTemplate, "Broken", []string{"Paris is big."})
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, apperrors.ErrDocumentSkipped)
	assert.ErrorIs(t, result.Err, boom)
	assert.False(t, result.OK())

	panicking := testutil.NewLexiconAnnotator(testLexicon())
	panicking.PanicOn = "explode"
	g = newTestGenerator(t, panicking, nil, nil)

	result = g.Process(model.MethodBaseline, "Panics", []string{"Please explode. Now."})
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, apperrors.ErrDocumentSkipped)
	assert.Contains(t, result.Err.Error(), "panic")
	assert.Empty(t, result.Generated)
}

func TestProcess_UnknownMethod(t *testing.T) {
	g := newTestGenerator(t, testutil.NewLexiconAnnotator(testLexicon()), nil, nil)

	result := g.Process(model.Method("summary"), "Any", []string{"The cat sat."})
	assert.ErrorIs(t, result.Err, apperrors.ErrDocumentSkipped)
	assert.ErrorIs(t, result.Err, apperrors.ErrInvalidInput)
}

func TestNewGenerator_InvalidSettings(t *testing.T) {
	settings := config.Default()
	settings.Ranking.Damping = 2

	_, err := NewGenerator(testutil.NewLexiconAnnotator(nil), settings, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestRun(t *testing.T) {
	a := testutil.NewLexiconAnnotator(testLexicon())
	a.PanicOn = "explode"
	m := metrics.New()
	g := newTestGenerator(t, a, func(s *config.Settings) { s.Workers = 3 }, m)

	c := model.Corpus{
		"Zebra":  {"The cat sat.", "The cat ran fast."},
		"Alpha":  {"The car is red.", "The cat was big."},
		"Middle": {"Please explode.", "Now."},
		"Tiny":   {"Only one comment."},
	}

	var mu sync.Mutex
	var calls [][2]int
	results, summary := g.Run(context.Background(), c, model.MethodBaseline, func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, [2]int{done, total})
	})

	require.Len(t, results, 3)
	assert.Equal(t, "Alpha", results[0].Title)
	assert.Equal(t, "Middle", results[1].Title)
	assert.Equal(t, "Zebra", results[2].Title)
	assert.True(t, results[0].OK())
	assert.False(t, results[1].OK())
	assert.Equal(t, "The cat sat.", results[2].Generated)

	assert.Equal(t, model.Summary{Total: 4, Processed: 2, Skipped: 1, Filtered: 1}, summary)

	require.Len(t, calls, 3)
	assert.Equal(t, [2]int{3, 3}, calls[2])

	assert.Equal(t, 2.0, promtest.ToFloat64(m.DocumentsTotal.WithLabelValues("baseline", metrics.OutcomeProcessed)))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.DocumentsTotal.WithLabelValues("baseline", metrics.OutcomeSkipped)))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.DocumentsTotal.WithLabelValues("baseline", metrics.OutcomeFiltered)))
}

func TestRun_Cancelled(t *testing.T) {
	a := testutil.NewLexiconAnnotator(testLexicon())
	g := newTestGenerator(t, a, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := model.Corpus{
		"One": {"The cat sat.", "The cat ran fast."},
		"Two": {"The car is red.", "The cat was big."},
	}
	results, summary := g.Run(ctx, c, model.MethodTemplate, nil)

	require.Len(t, results, 2)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
	assert.Equal(t, model.Summary{Total: 2, Skipped: 2}, summary)
	assert.Equal(t, 0, a.Calls())
}
