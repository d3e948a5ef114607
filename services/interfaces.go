package services

import (
	"context"

	"github.com/gcbaptista/go-title-engine/model"
)

// Segmenter splits text into sentences in source order.
type Segmenter interface {
	Sentences(text string) ([]string, error)
}

// Tokenizer splits text into word and punctuation tokens in source order.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// Tagger assigns one part-of-speech tag to each input unit. A unit may contain spaces
// (a phrase); it is still tagged as one unit and yields exactly one token.
type Tagger interface {
	Tag(units []string) ([]model.Token, error)
}

// Annotator bundles the linguistic capabilities the title pipelines consume.
type Annotator interface {
	Segmenter
	Tokenizer
	Tagger
}

// TitleGenerator produces titles for single documents and whole corpora.
type TitleGenerator interface {
	Generate(method model.Method, title string, comments []string) model.DocumentResult
	Run(ctx context.Context, corpus model.Corpus, method model.Method, progress func(done, total int)) ([]model.DocumentResult, model.Summary)
}

// JobManager defines operations for managing background jobs
type JobManager interface {
	GetJob(jobID string) (*model.Job, error)
	ListJobs(status *model.JobStatus) []*model.Job
}
