package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is the sentinel for lookups that matched nothing.
	ErrObjectNotFound = errors.New("object not found")
	// ErrObjectInUse is the sentinel for deletions blocked by existing references.
	ErrObjectInUse = errors.New("object is in use")
	// ErrValueIsInvalid is the sentinel for malformed or unrecognized values.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsOutOfRange is the sentinel for values outside their allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrValueIsRequired is the sentinel for missing mandatory values.
	ErrValueIsRequired = errors.New("value is required")
	// ErrInvalidTransition is the sentinel for status changes outside the lifecycle graph.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrBusy is the sentinel for a resource that already has an operation in flight.
	ErrBusy = errors.New("resource is busy")
	// ErrRepositoryUnavailable is the sentinel for transient storage failures.
	ErrRepositoryUnavailable = errors.New("repository unavailable")
)

// IsInvalidArgument reports whether err belongs to the invalid argument class:
// a required, invalid or out of range value.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ObjectNotFoundError reports that an object identified by ParamName/ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectInUseError reports that an object cannot be removed while other objects reference it.
type ObjectInUseError struct {
	ParamName  string
	ID         any
	References int64
}

func NewObjectInUseError(paramName string, id any, references int64) *ObjectInUseError {
	return &ObjectInUseError{ParamName: paramName, ID: id, References: references}
}

func (e *ObjectInUseError) Error() string {
	return fmt.Sprintf("%s: %s %s is referenced %d time(s)",
		ErrObjectInUse, e.ParamName, sanitize(e.ID), e.References)
}

func (e *ObjectInUseError) Unwrap() error {
	return ErrObjectInUse
}

// ValueIsInvalidError reports a malformed or unrecognized value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError reports a status change that is not an edge of the lifecycle graph.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// BusyError reports that Resource/ID already has an operation in flight.
type BusyError struct {
	Resource string
	ID       any
}

func NewBusyError(resource string, id any) *BusyError {
	return &BusyError{Resource: resource, ID: id}
}

func (e *BusyError) Error() string {
	return fmt.Sprintf("%s: %s %s has an operation in flight", ErrBusy, e.Resource, sanitize(e.ID))
}

func (e *BusyError) Unwrap() error {
	return ErrBusy
}

// RepositoryUnavailableError wraps a transient storage failure. Unlike the other
// types it unwraps to both the sentinel and the underlying cause.
type RepositoryUnavailableError struct {
	Operation string
	Cause     error
}

func NewRepositoryUnavailableError(operation string, cause error) *RepositoryUnavailableError {
	return &RepositoryUnavailableError{Operation: operation, Cause: cause}
}

func (e *RepositoryUnavailableError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrRepositoryUnavailable, e.Operation), e.Cause)
}

func (e *RepositoryUnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrRepositoryUnavailable}
	}
	return []error{ErrRepositoryUnavailable, e.Cause}
}
