// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value falls outside allowed bounds
//   - ObjectNotFoundError: for when an object cannot be found
//   - VersionIsInvalidError: for when an aggregate version is inconsistent
//
// Each error type follows a consistent pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is support
package errs
