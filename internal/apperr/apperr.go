// Package apperr defines the application error taxonomy shared by services and handlers
package apperr

import "errors"

// Kind classifies an application error so callers can branch on it
type Kind int

// Error kinds
const (
	// KindUnknown represents an unclassified error
	KindUnknown Kind = iota
	// KindNotFound indicates a referenced entity is absent
	KindNotFound
	// KindForbidden indicates the caller lacks the required role for the target entity
	KindForbidden
	// KindConflict indicates the invariant was already satisfied by someone else
	KindConflict
	// KindInvalidOperation indicates a precondition is not yet met
	KindInvalidOperation
	// KindValidation indicates malformed input
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindInvalidOperation:
		return "invalid_operation"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is an application error with a kind and a human-readable message
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound returns a KindNotFound error with the given message
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Forbidden returns a KindForbidden error with the given message
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// Conflict returns a KindConflict error with the given message
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// InvalidOperation returns a KindInvalidOperation error with the given message
func InvalidOperation(msg string) *Error {
	return &Error{Kind: KindInvalidOperation, Message: msg}
}

// Validation returns a KindValidation error with the given message
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Wrap attaches a cause to a kinded error
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf extracts the Kind from an error chain, or KindUnknown
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether the error chain contains an Error of the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
