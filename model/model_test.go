package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMethod_Valid(t *testing.T) {
	assert.True(t, MethodBaseline.Valid())
	assert.True(t, MethodTemplate.Valid())
	assert.False(t, Method("").Valid())
	assert.False(t, Method("Template").Valid())
}

func TestSummary_Add(t *testing.T) {
	var s Summary
	s.Add(DocumentResult{Title: "a", Generated: "x"})
	s.Add(DocumentResult{Title: "b", Err: errors.New("boom")})
	s.Add(DocumentResult{Title: "c"})

	assert.Equal(t, Summary{Processed: 2, Skipped: 1}, s)
}

func TestDocumentResult_MarshalJSON(t *testing.T) {
	ok, err := json.Marshal(DocumentResult{Title: "T", Generated: "G", Method: MethodTemplate})
	require.NoError(t, err)
	assert.JSONEq(t, `{"original_title":"T","generated_title":"G","method":"template"}`, string(ok))

	failed, err := json.Marshal(DocumentResult{Title: "T", Method: MethodBaseline, Err: errors.New("tagger down")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"original_title":"T","generated_title":"","method":"baseline","error":"tagger down"}`, string(failed))
}

func TestDocumentResult_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(DocumentResult{Title: "T", Method: MethodTemplate, Err: errors.New("no tags")})
	require.NoError(t, err)
	assert.Equal(t, "original_title: T\ngenerated_title: \"\"\nmethod: template\nerror: no tags\n", string(out))
}

func TestCorpus(t *testing.T) {
	c := Corpus{"b": {"1", "2"}, "a": {"3"}, "c": nil}

	assert.Equal(t, []string{"a", "b", "c"}, c.Titles())
	assert.Equal(t, 3, c.CommentCount())
}

func TestJobProgress_GetProgressPercentage(t *testing.T) {
	assert.Equal(t, 0.0, (&JobProgress{}).GetProgressPercentage())
	assert.Equal(t, 25.0, (&JobProgress{Current: 1, Total: 4}).GetProgressPercentage())
}

func TestTexts(t *testing.T) {
	assert.Equal(t, []string{"big", "car"}, Texts([]Token{{Text: "big", Tag: TagAdjective}, {Text: "car", Tag: TagNoun}}))
}
