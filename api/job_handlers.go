package api

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/gcbaptista/go-title-engine/internal/errors"
	"github.com/gcbaptista/go-title-engine/internal/report"
	"github.com/gcbaptista/go-title-engine/model"
)

// CreateJobHandler starts title generation for a whole corpus in the background.
// Request Body: JobRequest
func (api *API) CreateJobHandler(c *gin.Context) {
	var req JobRequest
	if !BindJSON(c, &req) {
		return
	}

	if result := ValidateJobRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	method, result := ValidateMethod(req.Method, api.engine.DefaultMethod())
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	jobID, err := api.engine.GenerateAsync(req.Corpus, method)
	if err != nil {
		SendJobExecutionError(c, "generate titles", err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "accepted",
		"message": "Title generation started",
		"job_id":  jobID,
	})
}

// GetJobHandler handles requests to get job status by ID
func (api *API) GetJobHandler(c *gin.Context) {
	jobID := c.Param("jobId")

	job, err := api.engine.GetJob(jobID)
	if err != nil {
		SendJobNotFoundError(c, jobID)
		return
	}

	c.JSON(http.StatusOK, job)
}

// GetJobReportHandler renders a completed job's results as the plain-text title report.
func (api *API) GetJobReportHandler(c *gin.Context) {
	jobID := c.Param("jobId")

	job, err := api.engine.GetJob(jobID)
	if err != nil {
		SendJobNotFoundError(c, jobID)
		return
	}
	if job.Status != model.JobStatusCompleted {
		SendJobNotFinishedError(c, jobID, string(job.Status))
		return
	}

	var buf bytes.Buffer
	if _, err := report.Write(&buf, job.Results); err != nil {
		SendInternalError(c, "report rendering", err)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// ListJobsHandler handles requests to list jobs, optionally filtered by ?status=
func (api *API) ListJobsHandler(c *gin.Context) {
	statusFilter, result := ValidateStatus(c.Query("status"))
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	jobs := api.engine.ListJobs(statusFilter)
	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// CancelJobHandler stops a pending or running job.
func (api *API) CancelJobHandler(c *gin.Context) {
	jobID := c.Param("jobId")

	if err := api.engine.CancelJob(jobID); err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			SendJobNotFoundError(c, jobID)
			return
		}
		SendError(c, http.StatusConflict, ErrorCodeJobNotFinished, err.Error())
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "accepted",
		"message": "Cancellation requested for job '" + jobID + "'",
		"job_id":  jobID,
	})
}

// GetJobMetricsHandler handles requests to get job performance metrics
func (api *API) GetJobMetricsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"metrics":          api.engine.GetJobMetrics(),
		"success_rate":     api.engine.GetJobSuccessRate(),
		"current_workload": api.engine.GetCurrentWorkload(),
	})
}
