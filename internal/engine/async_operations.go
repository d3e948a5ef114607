package engine

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/gcbaptista/go-title-engine/internal/errors"
	"github.com/gcbaptista/go-title-engine/model"
)

// GenerateAsync starts a background job generating titles for every eligible title in c.
func (e *Engine) GenerateAsync(c model.Corpus, method model.Method) (string, error) {
	if !method.Valid() {
		return "", errors.NewValidationError("method", fmt.Sprintf("unknown method '%s'", method))
	}
	if len(c) == 0 {
		return "", errors.NewValidationError("corpus", "corpus cannot be empty")
	}

	jobID := e.jobManager.CreateJob(model.JobTypeGenerateTitles, method, map[string]string{
		"operation": "generate_titles",
		"titles":    strconv.Itoa(len(c)),
	})

	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return e.executeGenerateJob(ctx, c, method, jobID)
	})
	if err != nil {
		return "", fmt.Errorf("failed to start generate titles job: %w", err)
	}

	return jobID, nil
}

// executeGenerateJob executes the generate titles job.
func (e *Engine) executeGenerateJob(ctx context.Context, c model.Corpus, method model.Method, jobID string) error {
	e.jobManager.UpdateJobProgress(jobID, 0, 0, "Starting title generation")

	results, summary := e.Run(ctx, c, method, func(done, total int) {
		e.jobManager.UpdateJobProgress(jobID, done, total, fmt.Sprintf("Generated %d of %d titles", done, total))
	})
	e.jobManager.SetJobResults(jobID, results, summary)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("title generation interrupted after %d documents: %w", summary.Processed, err)
	}

	e.logger.Info("title generation job finished",
		zap.String("job_id", jobID),
		zap.Int("processed", summary.Processed),
		zap.Int("skipped", summary.Skipped))
	return nil
}
