package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by store operations. Handlers map these onto HTTP
// status codes; nothing below the handler layer retries or swallows them.
var (
	// ErrSlotTaken means the (date, time slot, specialty) triple is already
	// booked by a non-cancelled appointment.
	ErrSlotTaken = errors.New("time slot already booked for this specialty and date")

	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden means the acting principal may not perform the operation.
	ErrForbidden = errors.New("operation not permitted")
)

// ValidationError reports a missing or malformed field on a write. It is
// returned before any persistence attempt; no partial row is ever written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func required(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}

// StoreError wraps a transport or database level failure. It is surfaced
// verbatim to the caller; any retry policy belongs to the caller.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
