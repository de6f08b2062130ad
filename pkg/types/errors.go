package types

import (
	"errors"
	"fmt"
)

// Store lifecycle and lookup errors.
var (
	ErrStoreClosed  = errors.New("store is closed")
	ErrNotFound     = errors.New("record not found")
	ErrUnknownTable = errors.New("unknown table")
)

// Config validation errors.
var (
	ErrDBPathEmpty = errors.New("database path must not be empty")
)

// ValidationError reports a malformed field at entity construction.
// The entity must be discarded; a partially built entity is never returned.
type ValidationError struct {
	Field  string // field that failed validation (name, age, email, id)
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IntegrityError reports a uniqueness or foreign-key violation at the store.
// Constraint identifies the violated constraint in table.column form when
// the driver reports it (for example "students.email").
type IntegrityError struct {
	Constraint string
	Err        error // underlying driver error
}

func (e *IntegrityError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("integrity violation on %s: %v", e.Constraint, e.Err)
	}
	return fmt.Sprintf("integrity violation: %v", e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// IOError reports a file-level failure (backup, import, export).
type IOError struct {
	Op   string // operation that failed, e.g. "backup"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsIntegrity reports whether err is (or wraps) an IntegrityError.
func IsIntegrity(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
