// Package api provides validation utilities for API request handling.
package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-title-engine/model"
)

// TitleRequest asks for a title for one comment thread.
type TitleRequest struct {
	Title    string   `json:"title"`
	Comments []string `json:"comments"`
	Method   string   `json:"method,omitempty"`
}

// JobRequest starts a batch over a whole corpus.
type JobRequest struct {
	Corpus model.Corpus `json:"corpus"`
	Method string       `json:"method,omitempty"`
}

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateMethod resolves a requested method name, falling back when it is empty.
func ValidateMethod(name string, fallback model.Method) (model.Method, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	if name == "" {
		return fallback, result
	}

	method := model.Method(name)
	if !method.Valid() {
		result.AddError("method", fmt.Sprintf("Unknown method '%s' (expected '%s' or '%s')",
			name, model.MethodBaseline, model.MethodTemplate))
	}
	return method, result
}

// ValidateTitleRequest validates a single-document request
func ValidateTitleRequest(req *TitleRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if req == nil {
		result.AddError("request_body", "Request body is required")
		return result
	}

	if strings.TrimSpace(req.Title) == "" {
		result.AddError("title", "Title is required")
	}

	if len(req.Comments) == 0 {
		result.AddError("comments", "At least one comment is required")
	}

	return result
}

// ValidateJobRequest validates a batch request
func ValidateJobRequest(req *JobRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if req == nil {
		result.AddError("request_body", "Request body is required")
		return result
	}

	if len(req.Corpus) == 0 {
		result.AddError("corpus", "Corpus cannot be empty")
		return result
	}

	for _, title := range req.Corpus.Titles() {
		if strings.TrimSpace(title) == "" {
			result.AddError("corpus", "Corpus titles cannot be empty or whitespace-only")
			break
		}
	}

	return result
}

// ValidateStatus parses an optional job status filter.
func ValidateStatus(name string) (*model.JobStatus, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	if name == "" {
		return nil, result
	}

	status := model.JobStatus(name)
	switch status {
	case model.JobStatusPending, model.JobStatusRunning, model.JobStatusCompleted,
		model.JobStatusFailed, model.JobStatusCancelled:
		return &status, result
	default:
		result.AddError("status", fmt.Sprintf("Unknown job status '%s'", name))
		return nil, result
	}
}

// SendValidationError sends a standardized validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	SendStructuredValidationError(c, result)
}

// BindJSON decodes the request body, replying with an INVALID_JSON error on failure.
func BindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		SendInvalidJSONError(c, err)
		return false
	}
	return true
}
