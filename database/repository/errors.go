package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a missing update/delete/show target. It is an expected
// outcome, not a fault.
var ErrNotFound = errors.New("record not found")

// ConflictError surfaces a uniqueness violation with the offending field
// named, so callers can report it precisely.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("a record with this %s already exists", e.Field)
}

// StoreError wraps an unexpected failure at the content-store boundary.
// Mutating paths propagate it unchanged; public read paths may degrade
// instead (see Posts.SearchWithFallback).
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
