package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func IsValidationError(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

type conflict struct {
	message string
}

// NewConflictError indicates a uniqueness violation.
func NewConflictError(msg string) error {
	return &conflict{message: msg}
}

func (c conflict) Error() string {
	return c.message
}

func IsConflict(err error) bool {
	_, ok := errors.Cause(err).(*conflict)
	return ok
}

type authFailure struct {
	message string
}

// NewAuthError indicates failed or restricted authentication.
func NewAuthError(msg string) error {
	return &authFailure{message: msg}
}

func (a authFailure) Error() string {
	return a.message
}

func IsAuthFailure(err error) bool {
	_, ok := errors.Cause(err).(*authFailure)
	return ok
}

type notFound struct {
	message string
}

// NewNotFoundError indicates a missing update/delete/append target.
func NewNotFoundError(msg string) error {
	return &notFound{message: msg}
}

func (n notFound) Error() string {
	return n.message
}

func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*notFound)
	return ok
}
