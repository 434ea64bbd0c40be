package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound signals the absence of a targeted record. It is a normal
// outcome, not a failure; callers must not log it as an error.
var ErrNotFound = errors.New("record not found")

// ErrInvalidCredentials is returned for every authentication failure,
// regardless of whether the username was unknown or the password wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError carries per-field messages for malformed input.
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

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
