// Package apperror defines the error taxonomy shared by services and
// the HTTP layer. Services return these; the server's error middleware
// maps them to status codes in one place.
package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	// KindInternal is an unexpected failure. 500.
	KindInternal Kind = iota
	// KindValidation is malformed write input, rejected at the boundary
	// before anything is applied. 400.
	KindValidation
	// KindNotFound is a miss on an explicit key (e.g. unknown settings
	// key). Dataless days are NOT NotFound; they come back zero-filled.
	KindNotFound
	// KindStorageUnavailable means the persistence layer is missing or
	// locked. Always surfaced as retryable, never swallowed into an
	// empty result. 503.
	KindStorageUnavailable
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindStorageUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func NewValidation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewStorageUnavailable(message string, err error) *Error {
	return &Error{Kind: KindStorageUnavailable, Message: message, Err: err}
}

func NewInternal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsStorageUnavailable(err error) bool {
	return err != nil && KindOf(err) == KindStorageUnavailable
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}
