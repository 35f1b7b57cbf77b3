package exceptions

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError holds per-field messages keyed by form field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

// AuthError is a failure reported by the identity provider.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth/%s: %s", e.Code, e.Message)
}

// RemoteCallError is a transport or status failure talking to the backend.
type RemoteCallError struct {
	Method     string
	URL        string
	StatusCode int
	Err        error
}

func (e *RemoteCallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}
