// Package errs provides standardized error types for the delivery fee service.
// Every type pairs a sentinel error with a struct carrying the offending
// parameter, so callers can branch with errors.Is and still print details.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ObjectNotFoundError: a lookup by identifier found nothing
package errs
