package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every typed error below unwraps to exactly one of them.
var (
	// ErrObjectNotFound marks lookups that found nothing.
	ErrObjectNotFound       = errors.New("object not found")
	// ErrValueIsInvalid marks values that break a format or business constraint.
	ErrValueIsInvalid       = errors.New("value is invalid")
	// ErrValueIsOutOfRange marks values outside their allowed bounds.
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	// ErrValueIsInvalidLength marks collections or strings of unacceptable length.
	ErrValueIsInvalidLength = errors.New("value has invalid length")
	// ErrValueIsRequired marks missing mandatory values.
	ErrValueIsRequired      = errors.New("value is required")
	// ErrVersionIsInvalid marks optimistic-concurrency conflicts.
	ErrVersionIsInvalid     = errors.New("version is invalid")
	// ErrDomainRuleViolation marks broken business rules.
	ErrDomainRuleViolation  = errors.New("domain rule violation")
)

// ObjectNotFoundError reports a lookup (repository or catalog) that found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for an object of kind paramName with the given id.
//
// Example:
//
//	return nil, errs.NewObjectNotFoundError("courier", id)
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause is NewObjectNotFoundError with extra context in cause,
// such as the list of allowed catalog values.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

// Error returns the message including the identifier and the cause, if any.
func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

// Unwrap returns ErrObjectNotFound.
func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that violates a format or business constraint.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for the invalid parameter paramName.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause is NewValueIsInvalidError with the underlying cause attached.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

// Error returns the message naming the parameter and the cause, if any.
func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

// Unwrap returns ErrValueIsInvalid.
func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
// It unwraps to ErrValueIsOutOfRange and also matches ErrValueIsInvalid.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates an error for paramName whose value is outside [minValue, maxValue].
//
// Parameters:
//   - paramName: name of the checked parameter, e.g. "x"
//   - value: the rejected value
//   - minValue, maxValue: inclusive bounds
//
// Example:
//
//	if x < LocationMinX || x > LocationMaxX {
//	    return errs.NewValueIsOutOfRangeError("x", x, LocationMinX, LocationMaxX)
//	}
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause is NewValueIsOutOfRangeError with the underlying cause attached.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

// Error returns the message with the value and its bounds.
func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns ErrValueIsOutOfRange.
func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// Is makes the error match ErrValueIsInvalid as well.
func (e *ValueIsOutOfRangeError) Is(target error) bool {
	return target == ErrValueIsInvalid
}

// ValueIsInvalidLengthError reports a collection or string whose length is not acceptable,
// for example an empty courier list. It also matches ErrValueIsInvalid.
type ValueIsInvalidLengthError struct {
	ParamName string
	Length    int
	Cause     error
}

// NewValueIsInvalidLengthError creates an error for paramName that has the given length.
func NewValueIsInvalidLengthError(paramName string, length int) *ValueIsInvalidLengthError {
	return &ValueIsInvalidLengthError{ParamName: paramName, Length: length}
}

// NewValueIsInvalidLengthErrorWithCause is NewValueIsInvalidLengthError with the expected
// length explained in cause.
func NewValueIsInvalidLengthErrorWithCause(paramName string, length int, cause error) *ValueIsInvalidLengthError {
	return &ValueIsInvalidLengthError{ParamName: paramName, Length: length, Cause: cause}
}

// Error returns the message with the rejected length.
func (e *ValueIsInvalidLengthError) Error() string {
	msg := fmt.Sprintf("%s: %s has length %d", ErrValueIsInvalidLength, e.ParamName, e.Length)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns ErrValueIsInvalidLength.
func (e *ValueIsInvalidLengthError) Unwrap() error {
	return ErrValueIsInvalidLength
}

// Is makes the error match ErrValueIsInvalid as well.
func (e *ValueIsInvalidLengthError) Is(target error) bool {
	return target == ErrValueIsInvalid
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for the missing parameter paramName.
//
// Example:
//
//	if strings.TrimSpace(name) == "" {
//	    return errs.NewValueIsRequiredError("name")
//	}
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause is NewValueIsRequiredError with the underlying cause attached.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

// Error returns the message naming the missing parameter.
func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

// Unwrap returns ErrValueIsRequired.
func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError reports an optimistic-concurrency conflict: the stored
// version of an aggregate no longer matches the version it was loaded with.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a conflict error for the aggregate named paramName.
func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

// NewVersionIsInvalidErrorWithCause is NewVersionIsInvalidError with the conflicting
// versions described in cause.
func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// Error returns the message naming the conflicting aggregate.
func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

// Unwrap returns ErrVersionIsInvalid.
func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// DomainRuleViolationError reports a broken business rule. Code is a short
// dot-separated identifier meant for machines; Message is for humans.
type DomainRuleViolationError struct {
	Code    string
	Message string
}

// NewDomainRuleViolationError creates a rule violation with a machine-readable code
// and a human-readable message.
//
// Example:
//
//	var ErrAlreadyBusy = errs.NewDomainRuleViolationError(
//	    "courier.already.busy", "courier is already busy")
func NewDomainRuleViolationError(code, message string) *DomainRuleViolationError {
	return &DomainRuleViolationError{Code: code, Message: message}
}

// Error returns the message with the code.
func (e *DomainRuleViolationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrDomainRuleViolation, e.Code, e.Message)
}

// Unwrap returns ErrDomainRuleViolation.
func (e *DomainRuleViolationError) Unwrap() error {
	return ErrDomainRuleViolation
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}
