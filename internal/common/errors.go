// Package common defines shared sentinel errors used across the tracker's
// upload pipeline. Callers should use errors.Is / errors.As to match them.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired means the operation needs an auth token and none is set.
	ErrAuthRequired = errors.New("auth token required")

	// ErrNoPutURL means the replay service declined to allocate an upload slot.
	ErrNoPutURL = errors.New("upload slot has no put url")

	// ErrInvalidToken means a token-creation response carried no key.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNetwork wraps transport-level failures (DNS, connect, read).
	ErrNetwork = errors.New("network failure")

	// ErrPersistence wraps local durable-write failures.
	ErrPersistence = errors.New("persistence failure")
)

// RemoteError is a non-2xx response from a remote endpoint.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error: status %d: %s", e.StatusCode, e.Body)
}
