package phrase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gcbaptista/go-title-engine/internal/rank"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		sequence []string
		selected []string
		want     []string
	}{
		{
			name:     "adjacent keywords become a phrase",
			sequence: []string{"the", "electric", "car", "is", "here"},
			selected: []string{"electric", "car"},
			want:     []string{"electric car"},
		},
		{
			name:     "isolated keywords stay standalone",
			sequence: []string{"engine", "and", "wheels", "broke"},
			selected: []string{"engine", "wheels"},
			want:     []string{"engine", "wheels"},
		},
		{
			name:     "last token evaluated at the boundary",
			sequence: []string{"we", "love", "pizza"},
			selected: []string{"pizza"},
			want:     []string{"pizza"},
		},
		{
			name:     "three adjacent keywords merge pairwise",
			sequence: []string{"big", "red", "car"},
			selected: []string{"big", "red", "car"},
			want:     []string{"big red", "red car"},
		},
		{
			name:     "consumed keyword not repeated standalone",
			sequence: []string{"red", "car", "is", "red"},
			selected: []string{"red", "car"},
			want:     []string{"red car"},
		},
		{
			name:     "repeated phrase reported once",
			sequence: []string{"red", "car", "and", "red", "car"},
			selected: []string{"red", "car"},
			want:     []string{"red car"},
		},
		{
			name:     "no selection",
			sequence: []string{"a", "b"},
			selected: nil,
			want:     []string{},
		},
		{
			name:     "single token sequence has no pairs",
			sequence: []string{"solo"},
			selected: []string{"solo"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.sequence, tt.selected))
		})
	}
}

func TestMerge_NeverBuildsLongerPhrases(t *testing.T) {
	for _, p := range Merge([]string{"big", "red", "car"}, []string{"big", "red", "car"}) {
		assert.NotEqual(t, "big red car", p)
		assert.Contains(t, []string{"big red", "red car", "car"}, p)
	}
}

func TestSelectionSize(t *testing.T) {
	assert.Equal(t, 1, SelectionSize(2, 3))
	assert.Equal(t, 2, SelectionSize(3, 3))
	assert.Equal(t, 4, SelectionSize(10, 3))
	assert.Equal(t, 1, SelectionSize(1, 3))
	assert.Equal(t, 5, SelectionSize(5, 0))
	assert.Equal(t, 2, SelectionSize(2, 1))
}

func TestScore(t *testing.T) {
	scores := rank.ScoreMap{"electric": 0.2, "car": 0.5, "battery": 0.3}

	got := Score([]string{"electric car", "battery", "car"}, scores)
	assert.Equal(t, []Scored{
		{Phrase: "car", Score: 0.5},
		{Phrase: "battery", Score: 0.3},
		{Phrase: "electric car", Score: 0.2},
	}, got)
	assert.Equal(t, []string{"car", "battery", "electric car"}, Phrases(got))
}

func TestScore_TiesKeepInputOrder(t *testing.T) {
	scores := rank.ScoreMap{"a": 0.5, "b": 0.5}
	got := Phrases(Score([]string{"b x", "a"}, scores))
	assert.Equal(t, []string{"b x", "a"}, got)
}
