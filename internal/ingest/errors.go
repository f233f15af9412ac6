package ingest

import "fmt"

// Error represents an ingestion failure. The orchestrator propagates it
// unchanged; no partial RequirementSet is ever returned alongside one.
type Error struct {
	// Op names the extraction operation: "text", "document", "jira"
	Op string

	// Source identifies the input (file path, issue key) when known
	Source string

	// Message is a human-readable error message
	Message string

	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("ingest %s %s: %s", e.Op, e.Source, e.Message)
	}
	return fmt.Sprintf("ingest %s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op, source, message string, err error) *Error {
	return &Error{Op: op, Source: source, Message: message, Err: err}
}
