package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested entity doesn't exist.
var ErrNotFound = errors.New("not found")

// DataAccessError is a read failure, carrying the filter that was
// applied and the underlying cause.
type DataAccessError struct {
	Entity string
	Filter string
	Err    error
}

func (e *DataAccessError) Error() string {
	if e.Filter == "" {
		return fmt.Sprintf("reading %s: %v", e.Entity, e.Err)
	}
	return fmt.Sprintf("reading %s (%s): %v", e.Entity, e.Filter, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// PersistenceError is a write failure.
type PersistenceError struct {
	Entity string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Entity, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
