package client

import (
	"errors"
	"fmt"
)

// ErrNoAccessToken is returned when a credential endpoint answers 2xx
// without an access token in the body, which breaks the auth contract.
var ErrNoAccessToken = errors.New("auth response missing access token")

// APIError represents a non-2xx response from the platform API.
// Detail is the human-readable message; Fields carries per-field
// validation errors when the backend returns them.
type APIError struct {
	StatusCode int
	Detail     string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
}

func (e *APIError) addField(field string, msgs ...string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msgs...)
}

// IsStatus returns true if err (or any wrapped error) is an APIError with
// the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}
