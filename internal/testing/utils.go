// Package testing provides utilities and helpers for testing the title engine.
package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-title-engine/model"
	"github.com/gcbaptista/go-title-engine/services"
)

// LexiconAnnotator is a deterministic services.Annotator for tests.
//
// Sentences end at '.', '!' or '?'. Tokens are whitespace-separated words with trailing
// punctuation split off, except a period inside or at the end of an abbreviation such as "U.S.".
// Tags come from Lexicon (lower-cased keys); unknown capitalized words are NNP, punctuation is
// tagged with itself and everything else is NN. A multi-word unit takes the tag of its last word.
type LexiconAnnotator struct {
	Lexicon map[string]string

	// Err is returned from every call when set.
	Err error
	// PanicOn makes any call whose input contains the substring panic.
	PanicOn string

	mu    sync.Mutex
	calls int
}

// NewLexiconAnnotator creates a fake annotator with the given word -> tag lexicon.
func NewLexiconAnnotator(lexicon map[string]string) *LexiconAnnotator {
	lower := make(map[string]string, len(lexicon))
	for word, tag := range lexicon {
		lower[strings.ToLower(word)] = tag
	}
	return &LexiconAnnotator{Lexicon: lower}
}

// Calls returns how many annotator methods have been invoked.
func (a *LexiconAnnotator) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

func (a *LexiconAnnotator) enter(input string) error {
	a.mu.Lock()
	a.calls++
	a.mu.Unlock()

	if a.PanicOn != "" && strings.Contains(input, a.PanicOn) {
		panic(fmt.Sprintf("annotator panic on %q", a.PanicOn))
	}
	return a.Err
}

// Sentences splits text after every '.', '!' or '?'.
func (a *LexiconAnnotator) Sentences(text string) ([]string, error) {
	if err := a.enter(text); err != nil {
		return nil, err
	}

	var sentences []string
	var current strings.Builder
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()
	return sentences, nil
}

// Tokenize splits on whitespace and separates trailing punctuation.
func (a *LexiconAnnotator) Tokenize(text string) ([]string, error) {
	if err := a.enter(text); err != nil {
		return nil, err
	}
	return tokenize(text), nil
}

// Tag tags each unit with the lexicon.
func (a *LexiconAnnotator) Tag(units []string) ([]model.Token, error) {
	if err := a.enter(strings.Join(units, " ")); err != nil {
		return nil, err
	}

	out := make([]model.Token, len(units))
	for i, unit := range units {
		words := strings.Fields(unit)
		tag := ""
		if len(words) > 0 {
			tag = a.tagWord(words[len(words)-1])
		}
		out[i] = model.Token{Text: unit, Tag: tag}
	}
	return out, nil
}

func (a *LexiconAnnotator) tagWord(word string) string {
	if tag, ok := a.Lexicon[strings.ToLower(word)]; ok {
		return tag
	}
	runes := []rune(word)
	if len(runes) > 0 && !unicode.IsLetter(runes[0]) && !unicode.IsDigit(runes[0]) {
		return word
	}
	if len(runes) > 0 && unicode.IsUpper(runes[0]) {
		return model.TagProperNoun
	}
	return model.TagNoun
}

func tokenize(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(text) {
		var trailing []string
		for len(field) > 1 {
			last := field[len(field)-1]
			if !strings.ContainsRune(".,!?;:", rune(last)) {
				break
			}
			// keep the final period of abbreviations like "U.S."
			if last == '.' && strings.Contains(field[:len(field)-1], ".") {
				break
			}
			trailing = append([]string{string(last)}, trailing...)
			field = field[:len(field)-1]
		}
		tokens = append(tokens, field)
		tokens = append(tokens, trailing...)
	}
	return tokens
}

// Comments returns n copies of body, handy for clearing the minimum comment count.
func Comments(n int, body string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = body
	}
	return out
}

// TempFile writes content into a file named name inside t.TempDir and returns its path.
func TempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write test file")
	return path
}

// JobPollingOptions configures job polling behavior
type JobPollingOptions struct {
	Timeout      time.Duration
	PollInterval time.Duration
	LogProgress  bool
}

// DefaultJobPollingOptions returns sensible defaults for job polling
func DefaultJobPollingOptions() JobPollingOptions {
	return JobPollingOptions{
		Timeout:      10 * time.Second,
		PollInterval: 10 * time.Millisecond,
		LogProgress:  false,
	}
}

// WaitForJobCompletion polls a job until it reaches a terminal state or times out
func WaitForJobCompletion(t *testing.T, jobManager services.JobManager, jobID string, opts JobPollingOptions) *model.Job {
	t.Helper()
	timeout := time.After(opts.Timeout)
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			t.Fatalf("Job %s did not complete within %v timeout", jobID, opts.Timeout)
			return nil
		case <-ticker.C:
			job, err := jobManager.GetJob(jobID)
			require.NoError(t, err, "Failed to get job status")

			switch job.Status {
			case model.JobStatusCompleted, model.JobStatusFailed, model.JobStatusCancelled:
				return job
			case model.JobStatusRunning:
				if opts.LogProgress && job.Progress != nil {
					t.Logf("Job %s progress: %d/%d - %s",
						jobID,
						job.Progress.Current,
						job.Progress.Total,
						job.Progress.Message)
				}
			}
		}
	}
}

// AssertJobCompleted verifies that a job completed successfully
func AssertJobCompleted(t *testing.T, job *model.Job, expectedType model.JobType, expectedMethod model.Method) {
	t.Helper()
	assert.Equal(t, model.JobStatusCompleted, job.Status, "Job should be completed")
	assert.Equal(t, expectedType, job.Type, "Job type should match")
	assert.Equal(t, expectedMethod, job.Method, "Job method should match")
	assert.NotNil(t, job.CompletedAt, "Job should have completion timestamp")
	assert.Empty(t, job.Error, "Job should not have error")
}
