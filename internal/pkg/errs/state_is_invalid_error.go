package errs

import (
	"errors"
	"fmt"
)

var ErrStateIsInvalid = errors.New("state is invalid")

// StateIsInvalidError reports that an operation is not permitted while the object
// identified by ParamName is in State. It is the wrong-state counterpart of
// ValueIsInvalidError: the input is well formed but the stored object rejects it.
type StateIsInvalidError struct {
	ParamName string
	State     any
	Cause     error
}

func NewStateIsInvalidError(paramName string, state any) *StateIsInvalidError {
	return &StateIsInvalidError{
		ParamName: paramName,
		State:     state,
	}
}

func NewStateIsInvalidErrorWithCause(paramName string, state any, cause error) *StateIsInvalidError {
	return &StateIsInvalidError{
		ParamName: paramName,
		State:     state,
		Cause:     cause,
	}
}

func (e *StateIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s", ErrStateIsInvalid, e.ParamName, sanitize(e.State))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *StateIsInvalidError) Unwrap() error {
	return ErrStateIsInvalid
}
