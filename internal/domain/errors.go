package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain failure. The HTTP boundary maps kinds to status
// codes and envelope fields; services and the hierarchy guard only deal in
// kinds, never in status codes.
type Kind string

const (
	KindInvalidName     Kind = "invalid_name"
	KindDuplicateName   Kind = "duplicate_name"
	KindParentNotFound  Kind = "parent_not_found"
	KindNotFound        Kind = "not_found"
	KindHasChildren     Kind = "has_children"
	KindCyclicReference Kind = "cyclic_reference"
	KindStoreFailure    Kind = "store_failure"
)

// Error is a tagged domain failure carrying the offending field alongside a
// human-readable message, so the HTTP layer can build a structured errors[]
// entry without parsing strings.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is lets errors.Is match two domain errors by kind alone.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// StatusCode maps the failure onto the HTTP status the envelope is sent with.
// Validation, business-rule, and not-found failures are all 400 by contract;
// only store failures surface as 500.
func (e *Error) StatusCode() int {
	if e.Kind == KindStoreFailure {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// Constructors, one per kind.

func InvalidName(message string) *Error {
	return &Error{Kind: KindInvalidName, Field: "name", Message: message}
}

func DuplicateName(message string) *Error {
	return &Error{Kind: KindDuplicateName, Field: "name", Message: message}
}

func ParentNotFound(message string) *Error {
	return &Error{Kind: KindParentNotFound, Field: "parent_id", Message: message}
}

func NotFound(field, message string) *Error {
	return &Error{Kind: KindNotFound, Field: field, Message: message}
}

func HasChildren(message string) *Error {
	return &Error{Kind: KindHasChildren, Field: "id", Message: message}
}

func CyclicReference(message string) *Error {
	return &Error{Kind: KindCyclicReference, Field: "parent_id", Message: message}
}

func StoreFailure(err error) *Error {
	return &Error{Kind: KindStoreFailure, Field: "server", Message: "storage operation failed", cause: err}
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
