package roster

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidID rejects a malformed identifier before any query runs.
	ErrInvalidID = errors.New("invalid id")
	// ErrNotFound signals that the addressed record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a one-teacher-per-user violation.
	ErrConflict = errors.New("user already has a teacher")
	// ErrCodeExhausted signals that the code generator ran out of attempts.
	ErrCodeExhausted = errors.New("code generation exhausted")
)

// ValidationError carries per-field input problems.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func fieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
