package services

import (
	"fmt"

	"MediMaga/models"

	"github.com/pkg/errors"
)

// ValidationError reports missing or invalid input. Nothing has been written when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Field)
}

// NotFoundError is returned when the store holds no record with the given ID.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// StorageError wraps a persistence failure.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// storeError translates a store error into the service error taxonomy.
func storeError(err error, resource, id, op string) error {
	if errors.Is(err, models.ErrNotFound) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return &StorageError{Err: errors.Wrapf(err, "failed to %s", op)}
}
