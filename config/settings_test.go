package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-title-engine/internal/errors"
)

func TestApplyDefaults(t *testing.T) {
	var s Settings
	s.ApplyDefaults()

	assert.Equal(t, "template", s.Method)
	assert.Equal(t, 1, s.Workers)
	assert.Equal(t, 0.85, s.Ranking.Damping)
	assert.Equal(t, 1e-6, s.Ranking.Tolerance)
	assert.Equal(t, 100, s.Ranking.MaxIterations)
	assert.Equal(t, []string{"NN", "NNP", "JJ"}, s.Keywords.AllowedTags)
	assert.Equal(t, 3, s.Keywords.SelectionDivisor)
	assert.Equal(t, DefaultSlots(), s.Template.Slots)
	assert.Equal(t, 10, s.Corpus.MinComments)
	assert.Equal(t, "[deleted]", s.Corpus.DeletedMarker)
	assert.Equal(t, "&gt; ", s.Corpus.QuotePrefix)
	assert.Equal(t, "info", s.Log.Level)
	assert.Empty(t, s.Validate())
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	s := Settings{Method: "baseline", Workers: 4, Corpus: CorpusSettings{MinComments: 2}}
	s.ApplyDefaults()

	assert.Equal(t, "baseline", s.Method)
	assert.Equal(t, 4, s.Workers)
	assert.Equal(t, 2, s.Corpus.MinComments)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(s *Settings)
		expectedErrors int
	}{
		{
			name:           "defaults are valid",
			mutate:         func(s *Settings) {},
			expectedErrors: 0,
		},
		{
			name:           "unknown method",
			mutate:         func(s *Settings) { s.Method = "summarize" },
			expectedErrors: 1,
		},
		{
			name:           "damping out of range",
			mutate:         func(s *Settings) { s.Ranking.Damping = 1 },
			expectedErrors: 1,
		},
		{
			name: "negative tolerance and iterations",
			mutate: func(s *Settings) {
				s.Ranking.Tolerance = -1
				s.Ranking.MaxIterations = -5
			},
			expectedErrors: 2,
		},
		{
			name:           "duplicate allowed tag",
			mutate:         func(s *Settings) { s.Keywords.AllowedTags = []string{"NN", "NN"} },
			expectedErrors: 1,
		},
		{
			name: "bad template slots",
			mutate: func(s *Settings) {
				s.Template.Slots = []SlotSettings{
					{Name: "subject", Tags: []string{"NN"}},
					{Name: "subject", Tags: nil},
					{Name: " ", Tags: []string{"JJ", "JJ"}},
				}
			},
			expectedErrors: 4,
		},
		{
			name:           "unknown log level",
			mutate:         func(s *Settings) { s.Log.Level = "trace" },
			expectedErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			errs := s.Validate()
			assert.Len(t, errs, tt.expectedErrors, "errors: %v", errs)
		})
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *s)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titlegen.yaml")
	content := `
method: baseline
workers: 3
ranking:
  damping: 0.9
corpus:
  min_comments: 5
template:
  slots:
    - name: head
      tags: [NN]
    - name: mod
      tags: [JJ]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "baseline", s.Method)
	assert.Equal(t, 3, s.Workers)
	assert.Equal(t, 0.9, s.Ranking.Damping)
	assert.Equal(t, 1e-6, s.Ranking.Tolerance)
	assert.Equal(t, 5, s.Corpus.MinComments)
	assert.Equal(t, []SlotSettings{
		{Name: "head", Tags: []string{"NN"}},
		{Name: "mod", Tags: []string{"JJ"}},
	}, s.Template.Slots)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TITLEGEN_WORKERS", "6")
	t.Setenv("TITLEGEN_CORPUS_MIN_COMMENTS", "2")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, s.Workers)
	assert.Equal(t, 2, s.Corpus.MinComments)
}

func TestLoad_InvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titlegen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"method": "nope"}`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
