package baseline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-title-engine/internal/rank"
	testutil "github.com/gcbaptista/go-title-engine/internal/testing"
)

func TestSelect_ReturnsLiteralSentence(t *testing.T) {
	s := NewSelector(testutil.NewLexiconAnnotator(nil), rank.DefaultConfig(), nil)

	got, err := s.Select("The cat sat. The cat ran fast.")
	require.NoError(t, err)
	assert.Contains(t, []string{"The cat sat.", "The cat ran fast."}, got)
	// a symmetric pair ties, and ties keep first-seen order
	assert.Equal(t, "The cat sat.", got)
}

func TestSelect_MostCentralSentenceWins(t *testing.T) {
	s := NewSelector(testutil.NewLexiconAnnotator(nil), rank.Config{}, nil)

	text := "Hi. Ok. This sentence is very much longer than the others."
	sel, err := s.Choose(text)
	require.NoError(t, err)

	assert.Equal(t, "This sentence is very much longer than the others.", sel.Sentence)
	assert.Equal(t, 3, sel.Candidates)
	assert.Greater(t, sel.Score, 1.0/3.0)
	assert.Greater(t, sel.Iterations, 0)
}

func TestSelect_ShortCircuits(t *testing.T) {
	s := NewSelector(testutil.NewLexiconAnnotator(nil), rank.DefaultConfig(), nil)

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"single sentence", "Only one sentence here."},
		{"duplicate sentences", "Same thing. Same thing."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Select(tt.text)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestSelect_CustomMetric(t *testing.T) {
	// a constant metric makes every sentence equally central
	metric := func(a, b string) float64 { return 1 }
	s := NewSelector(testutil.NewLexiconAnnotator(nil), rank.DefaultConfig(), metric)

	sel, err := s.Choose("Hi. Ok. This sentence is very much longer than the others.")
	require.NoError(t, err)
	assert.Equal(t, "Hi.", sel.Sentence)
	assert.InDelta(t, 1.0/3.0, sel.Score, 1e-9)
}

func TestSelect_SegmenterError(t *testing.T) {
	boom := errors.New("segmenter down")
	a := testutil.NewLexiconAnnotator(nil)
	a.Err = boom
	s := NewSelector(a, rank.DefaultConfig(), nil)

	_, err := s.Select("The cat sat. The cat ran fast.")
	assert.ErrorIs(t, err, boom)
}
