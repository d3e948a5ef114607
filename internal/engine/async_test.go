package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-title-engine/config"
	apperrors "github.com/gcbaptista/go-title-engine/internal/errors"
	testutil "github.com/gcbaptista/go-title-engine/internal/testing"
	"github.com/gcbaptista/go-title-engine/model"
	"github.com/gcbaptista/go-title-engine/services"
)

var (
	_ services.TitleGenerator = (*Engine)(nil)
	_ services.JobManager     = (*Engine)(nil)
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	settings := config.Default()
	settings.Corpus.MinComments = 2

	eng, err := NewEngine(testutil.NewLexiconAnnotator(testLexicon()), settings, nil, nil)
	require.NoError(t, err)
	t.Cleanup(eng.Stop)
	return eng
}

func TestEngine_GenerateAsync(t *testing.T) {
	eng := newTestEngine(t)

	c := model.Corpus{
		"Cats":  {"The cat sat.", "The cat ran fast."},
		"Small": {"Too few."},
	}

	jobID, err := eng.GenerateAsync(c, model.MethodBaseline)
	require.NoError(t, err)
	require.NotEmpty(t, jobID)

	job := testutil.WaitForJobCompletion(t, eng, jobID, testutil.DefaultJobPollingOptions())
	testutil.AssertJobCompleted(t, job, model.JobTypeGenerateTitles, model.MethodBaseline)

	require.NotNil(t, job.Summary)
	assert.Equal(t, model.Summary{Total: 2, Processed: 1, Filtered: 1}, *job.Summary)
	require.Len(t, job.Results, 1)
	assert.Equal(t, "Cats", job.Results[0].Title)
	assert.Equal(t, "The cat sat.", job.Results[0].Generated)

	require.NotNil(t, job.Progress)
	assert.Equal(t, 1, job.Progress.Current)
	assert.Equal(t, "2", job.Metadata["titles"])

	assert.Len(t, eng.ListJobs(nil), 1)
	assert.Equal(t, int64(1), eng.GetJobMetrics().JobsCompleted)
}

func TestEngine_GenerateAsyncValidation(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.GenerateAsync(model.Corpus{"a": {"b"}}, model.Method("nope"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = eng.GenerateAsync(model.Corpus{}, model.MethodTemplate)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	assert.Empty(t, eng.ListJobs(nil))
}

func TestEngine_GetJobNotFound(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.GetJob("does-not-exist")
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	assert.ErrorIs(t, eng.CancelJob("does-not-exist"), apperrors.ErrJobNotFound)
}

func TestEngine_Defaults(t *testing.T) {
	eng := newTestEngine(t)

	assert.Equal(t, model.MethodTemplate, eng.DefaultMethod())
	assert.Equal(t, 2, eng.MinComments())
	assert.Equal(t, 2, eng.Settings().Corpus.MinComments)
}
