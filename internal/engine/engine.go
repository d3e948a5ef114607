package engine

import (
	"go.uber.org/zap"

	"github.com/gcbaptista/go-title-engine/config"
	"github.com/gcbaptista/go-title-engine/internal/jobs"
	"github.com/gcbaptista/go-title-engine/internal/logging"
	"github.com/gcbaptista/go-title-engine/internal/metrics"
	"github.com/gcbaptista/go-title-engine/model"
	"github.com/gcbaptista/go-title-engine/services"
)

// maxConcurrentJobs limits how many corpus batches run at once.
const maxConcurrentJobs = 2

// Engine couples the title generator with background batch jobs.
// It implements the services.TitleGenerator and services.JobManager interfaces.
type Engine struct {
	*Generator
	settings   config.Settings
	jobManager *jobs.Manager
	logger     *zap.Logger
}

// NewEngine creates the title engine orchestrator and starts its job manager.
// Call Stop to release it.
func NewEngine(annotator services.Annotator, settings config.Settings, logger *zap.Logger, m *metrics.Metrics) (*Engine, error) {
	settings.ApplyDefaults()
	logger = logging.OrNop(logger)

	gen, err := NewGenerator(annotator, settings, logger, m)
	if err != nil {
		return nil, err
	}

	manager := jobs.NewManager(maxConcurrentJobs, logger, m)
	manager.Start()

	return &Engine{
		Generator:  gen,
		settings:   settings,
		jobManager: manager,
		logger:     logger,
	}, nil
}

// Settings returns the effective settings.
func (e *Engine) Settings() config.Settings {
	return e.settings
}

// DefaultMethod is the configured generation method.
func (e *Engine) DefaultMethod() model.Method {
	return model.Method(e.settings.Method)
}

// GetJob retrieves a job by ID
func (e *Engine) GetJob(jobID string) (*model.Job, error) {
	return e.jobManager.GetJob(jobID)
}

// ListJobs lists jobs, optionally filtered by status
func (e *Engine) ListJobs(status *model.JobStatus) []*model.Job {
	return e.jobManager.ListJobs(status)
}

// CancelJob stops a pending or running job
func (e *Engine) CancelJob(jobID string) error {
	return e.jobManager.CancelJob(jobID)
}

// GetJobMetrics returns job performance metrics
func (e *Engine) GetJobMetrics() jobs.JobMetricsData {
	return e.jobManager.GetMetrics()
}

// Stop cancels running jobs and waits for them.
func (e *Engine) Stop() {
	e.jobManager.Stop()
}

// GetJobSuccessRate returns the fraction of finished jobs that completed.
func (e *Engine) GetJobSuccessRate() float64 {
	return e.jobManager.GetJobSuccessRate()
}

// GetCurrentWorkload returns the number of pending and running jobs.
func (e *Engine) GetCurrentWorkload() int64 {
	return e.jobManager.GetCurrentWorkload()
}
