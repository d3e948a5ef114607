package candidate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gcbaptista/go-title-engine/model"
)

func tok(text, tag string) model.Token {
	return model.Token{Text: text, Tag: tag}
}

func TestFilter(t *testing.T) {
	tokens := []model.Token{
		tok("The", "DT"), tok("quick", "JJ"), tok("fox", "NN"), tok("jumps", "VBZ"),
		tok("over", "IN"), tok("Reddit", "NNP"), tok(".", "."),
	}

	got := Filter(tokens, DefaultTags())
	assert.Equal(t, []model.Token{tok("quick", "JJ"), tok("fox", "NN"), tok("Reddit", "NNP")}, got)

	assert.Empty(t, Filter(tokens, NewTagSet()))
	assert.Empty(t, Filter(nil, DefaultTags()))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []model.Token
		want  []model.Token
	}{
		{"no periods", []model.Token{tok("car", "NN")}, []model.Token{tok("car", "NN")}},
		{"abbreviation", []model.Token{tok("U.S.", "NNP")}, []model.Token{tok("US", "NNP")}},
		{"trailing period", []model.Token{tok("etc.", "NN")}, []model.Token{tok("etc", "NN")}},
		{"only periods dropped", []model.Token{tok("...", "NN"), tok("dog", "NN")}, []model.Token{tok("dog", "NN")}},
		{"empty input", []model.Token{}, []model.Token{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]model.Token{tok("dog", "NN"), tok("dog", "NN"), tok("cat", "NN")})
	assert.Equal(t, []model.Token{tok("dog", "NN"), tok("cat", "NN")}, got)

	// first-seen tag wins, order is never rearranged
	got = Unique([]model.Token{tok("b", "JJ"), tok("a", "NN"), tok("b", "NN"), tok("c", "NNP"), tok("a", "JJ")})
	assert.Equal(t, []model.Token{tok("b", "JJ"), tok("a", "NN"), tok("c", "NNP")}, got)
}

func TestSelect_DuplicateNounsScenario(t *testing.T) {
	tokens := []model.Token{tok("dog", model.TagNoun), tok("dog", model.TagNoun), tok("cat", model.TagNoun)}

	got := Labels(Select(tokens, DefaultTags()))
	assert.Equal(t, []string{"dog", "cat"}, got)
}

func TestSelect_MergesAbbreviationVariants(t *testing.T) {
	tokens := []model.Token{
		tok("U.S.", "NNP"), tok("is", "VBZ"), tok("big", "JJ"), tok("US", "NNP"), tok("big", "JJ"),
	}
	assert.Equal(t, []string{"US", "big"}, Labels(Select(tokens, DefaultTags())))
}

func TestSelect_Idempotent(t *testing.T) {
	inputs := [][]model.Token{
		{tok("dog", "NN"), tok("dog", "NN"), tok("cat", "NN")},
		{tok("U.S.", "NNP"), tok("US", "NNP"), tok("runs", "VBZ"), tok("fast.", "JJ")},
		{tok("...", "NN"), tok("the", "DT")},
		{},
	}

	for _, input := range inputs {
		once := Select(input, DefaultTags())
		twice := Select(once, DefaultTags())
		assert.Equal(t, once, twice)
	}
}
