package llm

import "fmt"

// GenerationError represents a failure of the generation client. The
// orchestrator surfaces it unchanged; there is no retry or backoff.
type GenerationError struct {
	// Kind categorizes the error
	Kind string

	// Message is a human-readable error message
	Message string

	// Code is the HTTP status code (if applicable)
	Code int

	// Err is the underlying error
	Err error
}

// Error kinds.
const (
	ErrorKindNetwork = "network"
	ErrorKindAPI     = "api"
	ErrorKindTimeout = "timeout"
	ErrorKindParse   = "parse"
)

// Error implements the error interface.
func (e *GenerationError) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("generation %s error (code %d): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("generation %s error: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a network error.
func NewNetworkError(err error) *GenerationError {
	return &GenerationError{
		Kind:    ErrorKindNetwork,
		Message: "failed to reach the OpenRouter API",
		Err:     err,
	}
}

// NewAPIError creates an API error with status code.
func NewAPIError(code int, message string) *GenerationError {
	return &GenerationError{
		Kind:    ErrorKindAPI,
		Code:    code,
		Message: fmt.Sprintf("OpenRouter API error: %s", message),
	}
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *GenerationError {
	return &GenerationError{
		Kind:    ErrorKindTimeout,
		Message: "request timed out; the model may be under heavy load",
		Err:     err,
	}
}

// NewParseError creates a parse error carrying the unparseable content.
func NewParseError(content string, err error) *GenerationError {
	return &GenerationError{
		Kind:    ErrorKindParse,
		Message: fmt.Sprintf("failed to parse model output as scenario drafts: %.200s", content),
		Err:     err,
	}
}
