package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nf, ok := err.(*NotFoundError); ok {
		return nf, true
	}
	return nil, false
}

// InvalidCartStateError covers the locally-rejected cart operations: adding
// an unavailable item and checking out an empty cart. No state changes and
// no network round-trip happen when it is returned.
type InvalidCartStateError struct {
	Message string
}

func (e *InvalidCartStateError) Error() string {
	return e.Message
}

func NewInvalidCartStateError(message string) *InvalidCartStateError {
	return &InvalidCartStateError{Message: message}
}

func IsInvalidCartStateError(err error) (*InvalidCartStateError, bool) {
	if ic, ok := err.(*InvalidCartStateError); ok {
		return ic, true
	}
	return nil, false
}

// SubmissionFailedError means a networked order placement could not complete.
// The cart is preserved by the caller so the user can retry.
type SubmissionFailedError struct {
	Message string
	Cause   error
}

func (e *SubmissionFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SubmissionFailedError) Unwrap() error {
	return e.Cause
}

func NewSubmissionFailedError(message string, cause error) *SubmissionFailedError {
	return &SubmissionFailedError{Message: message, Cause: cause}
}

func IsSubmissionFailedError(err error) (*SubmissionFailedError, bool) {
	if sf, ok := err.(*SubmissionFailedError); ok {
		return sf, true
	}
	return nil, false
}

// DuplicateOrderError reports an externally pushed order whose id is already
// in the feed. The existing record wins; the duplicate is dropped.
type DuplicateOrderError struct {
	Message string
	OrderID int64
}

func (e *DuplicateOrderError) Error() string {
	return e.Message
}

func NewDuplicateOrderError(message string, orderID int64) *DuplicateOrderError {
	return &DuplicateOrderError{Message: message, OrderID: orderID}
}

func IsDuplicateOrderError(err error) (*DuplicateOrderError, bool) {
	if d, ok := err.(*DuplicateOrderError); ok {
		return d, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}
