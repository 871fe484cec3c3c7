// Package errs provides standardized error types for the furniture order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: the invalid argument class
//   - ObjectNotFoundError: for when an object cannot be found
//   - ObjectInUseError: for deletions blocked by existing references
//   - InvalidTransitionError: for order status changes outside the lifecycle graph
//   - BusyError: for a second operation on a resource that already has one in flight
//   - RepositoryUnavailableError: for transient storage failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels; IsInvalidArgument
// groups the three value errors.
package errs
