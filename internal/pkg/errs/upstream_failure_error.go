package errs

import (
	"errors"
	"fmt"
)

var ErrUpstreamFailure = errors.New("upstream failure")

// UpstreamFailureError reports that an external collaborator (address validation,
// email delivery, event broker) failed, timed out or was short-circuited.
type UpstreamFailureError struct {
	Service string
	Cause   error
}

func NewUpstreamFailureError(service string) *UpstreamFailureError {
	return &UpstreamFailureError{Service: service}
}

func NewUpstreamFailureErrorWithCause(service string, cause error) *UpstreamFailureError {
	return &UpstreamFailureError{
		Service: service,
		Cause:   cause,
	}
}

func (e *UpstreamFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrUpstreamFailure, e.Service, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUpstreamFailure, e.Service)
}

func (e *UpstreamFailureError) Unwrap() error {
	return ErrUpstreamFailure
}
