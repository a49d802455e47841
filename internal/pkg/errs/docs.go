// Package errs holds the typed errors shared by the domain, application and adapter layers.
//
// Every type pairs with a sentinel (ErrValueIsRequired, ErrObjectNotFound, ...) so callers
// branch with errors.Is and read details with errors.As:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value breaks a format constraint
//   - ValueIsOutOfRangeError: a value is outside [Min, Max]
//   - ValueIsInvalidLengthError: a collection is empty or too long
//   - ObjectNotFoundError: a repository or catalog lookup found nothing
//   - VersionIsInvalidError: an optimistic-concurrency write lost the race
//   - DomainRuleViolationError: a business rule refused the operation
//
// The HTTP adapter maps these kinds onto status codes.
package errs
