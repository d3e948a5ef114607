package testing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-title-engine/model"
	"github.com/gcbaptista/go-title-engine/services"
)

var _ services.Annotator = (*LexiconAnnotator)(nil)

func TestLexiconAnnotator_Tokenize(t *testing.T) {
	a := NewLexiconAnnotator(nil)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"trailing period", "The cat sat.", []string{"The", "cat", "sat", "."}},
		{"abbreviation", "the U.S. economy", []string{"the", "U.S.", "economy"}},
		{"mixed punctuation", "wait, what?!", []string{"wait", ",", "what", "?", "!"}},
		{"empty", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Tokenize(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLexiconAnnotator_Sentences(t *testing.T) {
	a := NewLexiconAnnotator(nil)

	got, err := a.Sentences("The cat sat. The cat ran fast! Why")
	require.NoError(t, err)
	assert.Equal(t, []string{"The cat sat.", "The cat ran fast!", "Why"}, got)
}

func TestLexiconAnnotator_Tag(t *testing.T) {
	a := NewLexiconAnnotator(map[string]string{"big": "JJ", "runs": "VBZ"})

	got, err := a.Tag([]string{"Big", "big car", "runs", "Paris", ".", "dog"})
	require.NoError(t, err)
	assert.Equal(t, []model.Token{
		{Text: "Big", Tag: "JJ"},
		{Text: "big car", Tag: "NN"},
		{Text: "runs", Tag: "VBZ"},
		{Text: "Paris", Tag: "NNP"},
		{Text: ".", Tag: "."},
		{Text: "dog", Tag: "NN"},
	}, got)
	assert.Equal(t, 1, a.Calls())
}

func TestLexiconAnnotator_Failures(t *testing.T) {
	boom := errors.New("boom")
	a := NewLexiconAnnotator(nil)
	a.Err = boom

	_, err := a.Tokenize("anything")
	assert.ErrorIs(t, err, boom)

	a.Err = nil
	a.PanicOn = "explode"
	assert.Panics(t, func() { _, _ = a.Sentences("please explode now") })
	assert.NotPanics(t, func() { _, _ = a.Sentences("calm text") })
}
