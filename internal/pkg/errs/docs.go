// Package errs provides standardized error types for the solver desk.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value lies outside an allowed range
//   - ObjectNotFoundError: For when an object cannot be found
//   - InvalidTransitionError: For when a state machine rejects an event
//   - InvariantViolationError: For broken consistency rules (programming defects)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//   - Is() method so that errors.Is also matches the wrapped cause
package errs
