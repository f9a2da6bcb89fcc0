package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the backend signals an expired or invalid
// credential. By the time a caller sees it the client has already cleared
// the persisted credential and fired the session-expired notice.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a business-level failure carried inside a well-formed response
// envelope (code != 200).
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: code %d", e.Code)
	}
	return fmt.Sprintf("api error: code %d: %s", e.Code, e.Message)
}

// DecodeError is returned when a response body does not match the endpoint's
// declared schema. The payload is never silently defaulted.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
