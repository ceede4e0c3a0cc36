// Package errs provides the standardized error types used across the
// warehouse application.
//
// Each error scenario follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) for errors.Is checks
//   - a struct type carrying the error details
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for classification
//
// The types cover the recurring validation failures of the domain:
// missing values, invalid values, out-of-range values, and failed lookups.
// Recoverable stock conditions (rejected product codes, backorders, a full
// alert log) are not errors; the stock package reports those as notices
// and processing continues.
package errs
