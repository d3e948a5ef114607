package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gcbaptista/go-title-engine/config"
)

func TestPreprocess(t *testing.T) {
	cfg := config.Default().Corpus

	tests := []struct {
		name     string
		comments []string
		want     string
	}{
		{
			name:     "joins with single spaces",
			comments: []string{"First.", "Second."},
			want:     "First. Second.",
		},
		{
			name:     "drops deleted comments",
			comments: []string{"[deleted]", "Kept.", "[deleted]"},
			want:     "Kept.",
		},
		{
			name:     "strips every quote prefix",
			comments: []string{"&gt; quoted &gt; twice", "plain"},
			want:     "quoted twice plain",
		},
		{
			name:     "deleted marker only matches whole bodies",
			comments: []string{"this was [deleted] later"},
			want:     "this was [deleted] later",
		},
		{
			name:     "nothing left",
			comments: []string{"[deleted]"},
			want:     "",
		},
		{
			name:     "no comments",
			comments: nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Preprocess(tt.comments, cfg))
		})
	}
}
