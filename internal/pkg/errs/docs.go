// Package errs provides standardized error types for the back-office
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when a referenced object cannot be found
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsOutOfRangeError: For when a value lies outside its allowed range
//   - InvalidStateTransitionError: For when a lifecycle state change is rejected
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinel returned by Unwrap is the classification contract: transport
// layers use errors.Is against the sentinels to pick response codes, never
// the message text.
package errs
