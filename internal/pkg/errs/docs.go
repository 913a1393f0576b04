// Package errs provides standardized error types for the logistics application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - StateIsInvalidError: For when an operation is not allowed in the current state
//   - UpstreamFailureError: For when an external collaborator fails or times out
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinels double as the error taxonomy of the HTTP surface: the three value
// errors are reported as validation failures (400), ErrObjectNotFound as 404 and
// ErrStateIsInvalid as a wrong-state failure. Anything else is treated as a storage
// failure and surfaced as a generic 500.
package errs
