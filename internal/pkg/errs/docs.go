// Package errs provides standardized error types for the treats ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - Other specialized error types for specific validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Two kinds matter to API clients: ObjectNotFoundError (a referenced draft,
// customer, or order does not exist) and the validation errors (a client sent
// something the domain rejects, such as submitting an already submitted draft).
// Callers classify with errors.Is against the sentinels.
package errs
