package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrEmptyInput is returned when a graph would have fewer than two nodes
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrDocumentSkipped is returned when a document is dropped from a batch
	ErrDocumentSkipped = errors.New("document skipped")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")

	// ErrMalformedRecord is returned when a raw comment record cannot be parsed
	ErrMalformedRecord = errors.New("malformed record")
)

// EmptyInputError reports how many nodes were offered to a graph that needs at least two.
type EmptyInputError struct {
	Count int
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("graph needs at least 2 nodes, got %d", e.Count)
}

func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// NewEmptyInputError creates a new EmptyInputError
func NewEmptyInputError(count int) *EmptyInputError {
	return &EmptyInputError{Count: count}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// DocumentError wraps the failure that caused a document to be dropped from a batch.
type DocumentError struct {
	Title string
	Err   error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document '%s' skipped: %v", e.Title, e.Err)
}

func (e *DocumentError) Is(target error) bool {
	return target == ErrDocumentSkipped
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewDocumentError creates a new DocumentError
func NewDocumentError(title string, err error) *DocumentError {
	return &DocumentError{Title: title, Err: err}
}

// JobNotFoundError represents a job not found error with context
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job with ID '%s' not found", e.JobID)
}

func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
}

// MalformedRecordError carries the 1-based line of a raw record that failed to parse.
type MalformedRecordError struct {
	Line int
	Err  error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record on line %d: %v", e.Line, e.Err)
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// NewMalformedRecordError creates a new MalformedRecordError
func NewMalformedRecordError(line int, err error) *MalformedRecordError {
	return &MalformedRecordError{Line: line, Err: err}
}
