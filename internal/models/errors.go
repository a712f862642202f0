package models

import (
	"errors"
	"fmt"
)

// NotFoundError reports a reference to an entity id that does not exist
// in the relevant store.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func NewNotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError reports a required field that is missing or malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
