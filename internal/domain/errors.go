package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so that transports can map it to a status code.
type Kind int

const (
	// KindInternal is any failure that is not one of the classified kinds.
	KindInternal Kind = iota
	// KindValidation means the input was malformed or semantically invalid.
	KindValidation
	// KindNotFound means the requested entity does not exist.
	KindNotFound
	// KindConflict means the operation would violate a uniqueness or
	// referential constraint.
	KindConflict
	// KindUnauthorized means a credential check failed.
	KindUnauthorized
)

// Code returns the machine-readable error code for the kind.
func (k Kind) Code() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal_error"
	}
}

func (k Kind) String() string {
	return k.Code()
}

// Sentinels for errors.Is checks. Any *Error of the matching kind satisfies
// errors.Is(err, ErrX).
var (
	ErrValidation   = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrNotFound     = &Error{Kind: KindNotFound, Message: "not found"}
	ErrConflict     = &Error{Kind: KindConflict, Message: "conflict"}
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Message: "unauthorized"}
)

// Error is a classified business error. Message is safe to return to API
// clients; Err optionally carries the underlying cause for logging.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// NewValidationError creates a validation error with the given client message.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewNotFoundError creates a not-found error with the given client message.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewConflictError creates a conflict error with the given client message.
func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NewUnauthorizedError creates an unauthorized error with the given client message.
func NewUnauthorizedError(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// WithCause returns a copy of e that wraps cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, Err: cause}
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client-safe message of the first *Error in err's
// chain, or an empty string if err is unclassified.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

// Client-facing messages shared by services and handlers.
const (
	MsgInvalidID             = "Invalid ID"
	MsgInvalidRequestBody    = "Invalid request body"
	MsgInvalidEmail          = "Invalid email format"
	MsgEmailExists           = "Email already exists"
	MsgCustomerNotFound      = "Customer not found"
	MsgCategoryNotFound      = "Category not found"
	MsgBookNotFound          = "Book not found"
	MsgCategoryDoesNotExist  = "Category does not exist"
	MsgCategoryHasBooks      = "Cannot delete category with associated books"
	MsgInvalidCredentials    = "Invalid credentials"
	MsgInternalServerError   = "Internal server error"
	MsgAuthenticationMissing = "Authorization header required"
)
