package backend

import (
	"errors"
	"fmt"
	"net"
	"net/http"
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s %s: %s", e.Method, e.Path, e.Status)
}

// TransientError marks a failure that may succeed on retry: transport errors,
// timeouts, and overload statuses.
type TransientError struct {
	err error
}

func (e *TransientError) Error() string { return e.err.Error() }

func (e *TransientError) Unwrap() error { return e.err }

// IsTransient reports whether err is worth retrying.
func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

// IsUnavailable reports whether err means the backend could not be reached or
// did not answer usefully, as opposed to a definite rejection.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if IsTransient(err) {
		return true
	}
	var status *StatusError
	if errors.As(err, &status) {
		return status.Code >= http.StatusInternalServerError
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// transientStatus reports whether an HTTP status signals temporary overload.
func transientStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
