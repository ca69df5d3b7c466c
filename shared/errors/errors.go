package errors

import (
	"fmt"
	"sort"
	"strings"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// FieldErrors maps an input field name to a human-readable message.
type FieldErrors map[string]string

// ValidationError is an expected outcome of a rejected submission, not a fault.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, e.Fields[field])
	}
	return fmt.Sprintf("Validation error: %s", strings.Join(msgs, "; "))
}
