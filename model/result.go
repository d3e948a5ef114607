package model

import "encoding/json"

// Method selects the title generation strategy.
type Method string

const (
	// MethodBaseline returns the most central sentence verbatim.
	MethodBaseline Method = "baseline"
	// MethodTemplate fills a part-of-speech template with the most central keywords.
	MethodTemplate Method = "template"
)

// Valid reports whether m names a known strategy.
func (m Method) Valid() bool {
	return m == MethodBaseline || m == MethodTemplate
}

// DocumentResult is the outcome of generating a title for one corpus entry.
type DocumentResult struct {
	Title     string `json:"original_title" yaml:"original_title"`
	Generated string `json:"generated_title" yaml:"generated_title"`
	Method    Method `json:"method" yaml:"method"`
	Err       error  `json:"-" yaml:"-"`
}

// OK reports whether the document produced output.
func (r DocumentResult) OK() bool {
	return r.Err == nil
}

// Summary aggregates per-document outcomes of a batch.
type Summary struct {
	Total     int `json:"total"`
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
	Filtered  int `json:"filtered"` // below the minimum comment count, never attempted
}

// Add folds one document result into the summary.
func (s *Summary) Add(result DocumentResult) {
	if result.OK() {
		s.Processed++
	} else {
		s.Skipped++
	}
}

type plainResult DocumentResult

// encodedResult is DocumentResult with the failure flattened to its message.
type encodedResult struct {
	plainResult `yaml:",inline"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r DocumentResult) encoded() encodedResult {
	out := encodedResult{plainResult: plainResult(r)}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out
}

// MarshalJSON adds the failure message, if any, as "error".
func (r DocumentResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.encoded())
}

// MarshalYAML adds the failure message, if any, as "error".
func (r DocumentResult) MarshalYAML() (interface{}, error) {
	return r.encoded(), nil
}
