package ovhapi

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed control-plane call so callers can
// branch on the class of failure instead of parsing message strings.
type ErrorKind int

const (
	// KindNetwork covers transport-level failures (DNS, timeouts, ...).
	KindNetwork ErrorKind = iota
	// KindAuth covers 401/403 responses.
	KindAuth
	// KindNotFound covers 404 responses.
	KindNotFound
	// KindRemote covers every other 4xx/5xx response.
	KindRemote
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Error is a failed control-plane call.
type Error struct {
	Kind   ErrorKind
	Method string
	Path   string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a 404 from the control plane.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

// IsAuth reports whether err is an authentication/authorization failure.
func IsAuth(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindAuth
}
