// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInputParsingFailed    ErrorCode = "INPUT_PARSING_FAILED"
	ErrCodeInputValidationFailed ErrorCode = "INPUT_VALIDATION_FAILED"

	ErrCodeChartNotFound      ErrorCode = "CHART_NOT_FOUND"
	ErrCodeChartLookupFailed  ErrorCode = "CHART_LOOKUP_FAILED"
	ErrCodeChartLookupTimeout ErrorCode = "CHART_LOOKUP_TIMEOUT"
	ErrCodeChartDecodeFailed  ErrorCode = "CHART_DECODE_FAILED"
	ErrCodeChartStoreDisabled ErrorCode = "CHART_STORE_DISABLED"

	ErrCodeReportEncodeFailed ErrorCode = "REPORT_ENCODE_FAILED"

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

// WithMetadata attaches a key to the error and returns it for chaining.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. BPMN Error Integration
// ==========================

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

// ==========================
// 3. Error Constructors
// ==========================

// NewInputParsingFailedError is returned when job variables are not valid JSON for the task.
func NewInputParsingFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputParsingFailed,
		Message:   "Failed to parse job variables",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputValidationFailedError is returned when job variables fail schema validation.
func NewInputValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputValidationFailed,
		Message:   "Job variables failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewChartNotFoundError(chartID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeChartNotFound,
		Message:   "Birth chart not found",
		Details:   fmt.Sprintf("chartId: %s", chartID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewChartLookupFailedError(chartID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeChartLookupFailed,
		Message:   "Birth chart lookup failed",
		Details:   fmt.Sprintf("chartId: %s, error: %s", chartID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewChartLookupTimeoutError(chartID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeChartLookupTimeout,
		Message:   "Birth chart lookup timed out",
		Details:   fmt.Sprintf("chartId: %s", chartID),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewChartDecodeFailedError is returned when a stored chart column holds malformed JSON.
func NewChartDecodeFailedError(chartID, column string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeChartDecodeFailed,
		Message:   "Stored birth chart is malformed",
		Details:   fmt.Sprintf("chartId: %s, column: %s, error: %s", chartID, column, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewChartStoreDisabledError(chartID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeChartStoreDisabled,
		Message:   "Chart lookup requested but no chart store is configured",
		Details:   fmt.Sprintf("chartId: %s", chartID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewReportEncodeFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportEncodeFailed,
		Message:   "Failed to encode match report",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewBusinessRuleError(message, details string) *StandardError {
	return &StandardError{
		Code:      "BUSINESS_RULE_VIOLATION",
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "TIMEOUT_ERROR",
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to the error codes caught by boundary
// events in the matchmaking process.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeInputParsingFailed:    "INVALID_MATCH_REQUEST",
	ErrCodeInputValidationFailed: "INVALID_MATCH_REQUEST",
	ErrCodeChartNotFound:         "CHART_NOT_FOUND",
	ErrCodeChartLookupFailed:     "CHART_UNAVAILABLE",
	ErrCodeChartLookupTimeout:    "CHART_UNAVAILABLE",
	ErrCodeChartDecodeFailed:     "CHART_CORRUPT",
	ErrCodeChartStoreDisabled:    "CHART_NOT_FOUND",
	ErrCodeReportEncodeFailed:    "MATCH_REPORT_FAILED",
	ErrCodeInternal:              "MATCH_REPORT_FAILED",
}

// GetRetryCount returns the recommended retry count for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeChartLookupFailed,
		"EXTERNAL_SERVICE_ERROR":
		return 3

	case ErrCodeChartLookupTimeout,
		"TIMEOUT_ERROR":
		return 2

	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.HasPrefix(codeStr, "INPUT"):
		return "VALIDATION"
	case strings.HasPrefix(codeStr, "CHART"):
		return "CHART_STORE"
	case strings.HasPrefix(codeStr, "REPORT"):
		return "REPORT"
	case strings.Contains(codeStr, "TIMEOUT") || strings.Contains(codeStr, "EXTERNAL"):
		return "INFRASTRUCTURE"
	default:
		return "OTHER"
	}
}
