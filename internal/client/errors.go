package client

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout reports that the request deadline elapsed before the
	// server answered.
	ErrTimeout = errors.New("request timed out")
	// ErrNetwork reports a transport-level failure before any HTTP
	// response arrived.
	ErrNetwork = errors.New("network unavailable")
	// ErrNotAuthenticated reports that the session store holds no token.
	ErrNotAuthenticated = errors.New("authentication required")
)

// APIError carries a non-success HTTP response: the server-supplied
// message when present, otherwise a generic status-derived one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error: status %d", e.Status)
}
