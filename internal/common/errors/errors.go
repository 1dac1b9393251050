// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Input / validation errors. Never retryable: the payload is wrong.
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeParseError       ErrorCode = "PARSE_ERROR"

	// Matching errors.
	ErrCodeMatchRunFailed   ErrorCode = "MATCH_RUN_FAILED"
	ErrCodeScoreCheckFailed ErrorCode = "SCORE_CHECK_FAILED"
	ErrCodeRecordNotFound   ErrorCode = "RECORD_NOT_FOUND"

	// Store / infrastructure errors.
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeStoreQueryFailed ErrorCode = "STORE_QUERY_FAILED"
	ErrCodeStoreTimeout     ErrorCode = "STORE_TIMEOUT"

	// Search errors.
	ErrCodeSearchQueryFailed ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeSearchTimeout     ErrorCode = "SEARCH_TIMEOUT"
	ErrCodeIndexNotFound     ErrorCode = "INDEX_NOT_FOUND"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// New creates a StandardError with the retryability the code implies.
func New(code ErrorCode, message string) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryable(code),
		Timestamp: time.Now().UTC(),
	}
}

// Wrap creates a StandardError that carries the underlying error as details.
func Wrap(code ErrorCode, message string, err error) *StandardError {
	se := New(code, message)
	if err != nil {
		se.Details = err.Error()
	}
	return se
}

// retryableCodes lists codes caused by transient infrastructure conditions.
var retryableCodes = map[ErrorCode]bool{
	ErrCodeStoreUnavailable: true,
	ErrCodeStoreTimeout:     true,
	ErrCodeSearchTimeout:    true,
}

// IsRetryable reports whether jobs failing with this code should be retried
// by the workflow engine instead of raising a BPMN error.
func IsRetryable(code ErrorCode) bool {
	return retryableCodes[code]
}

// GetRetryCount returns the number of retries the engine should attempt for
// the given code. Non-retryable codes get zero.
func GetRetryCount(code ErrorCode) int {
	if IsRetryable(code) {
		return 3
	}
	return 0
}

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ConvertToBPMNError maps a StandardError onto the engine-facing shape.
func ConvertToBPMNError(err *StandardError) *BPMNError {
	return &BPMNError{
		Code:      string(err.Code),
		Message:   err.Message,
		Details:   err.Details,
		Retryable: err.Retryable,
		Retries:   GetRetryCount(err.Code),
	}
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	for k, v := range e.ErrorVariables {
		vars[k] = v
	}

	return vars
}
