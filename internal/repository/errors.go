// Package repository holds data access logic for the club's entities.
// This file defines error types shared across repositories. Sentinel
// values let the dispatch layer distinguish failure scenarios, e.g.
// ErrAlreadyEnrolled versus a generic constraint breach, and
// IntegrityError carries which kind of constraint the store rejected.
package repository

import (
	"errors"
	"strings"
)

// ErrAlreadyEnrolled is returned when a member attempts to enroll in a
// class they are already enrolled in.
var ErrAlreadyEnrolled = errors.New("already enrolled in this class")

// ErrClassFull is returned when an enrollment would push a class past
// its capacity.
var ErrClassFull = errors.New("class is full")

// ErrCapacityExceedsRoom is returned when a class is created or updated
// with a capacity larger than its room's capacity. The same rule is
// enforced server-side by the capacity triggers; this sentinel comes from
// the pre-check inside the class-creating transaction.
var ErrCapacityExceedsRoom = errors.New("class capacity exceeds room capacity")

// Constraint kinds carried by IntegrityError.
const (
	ConstraintDuplicate  = "duplicate"
	ConstraintForeignKey = "foreign key"
	ConstraintCheck      = "check"
)

// IntegrityError wraps a constraint violation surfaced by the store:
// a duplicate unique key, a missing or still-referenced foreign key, or
// a check/trigger rejection. Callers can inspect Constraint to tell
// which rule was broken.
type IntegrityError struct {
	Constraint string // one of the Constraint* kinds
	Err        error  // the driver error
}

func (e *IntegrityError) Error() string {
	return "integrity violation (" + e.Constraint + "): " + e.Err.Error()
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// wrapIntegrity classifies a write error from either driver. MySQL is
// recognized by error number (1062 duplicate, 1451/1452 foreign key, 3819
// check, 1644 trigger signal); SQLite by the constraint text in the
// message. Errors that are not constraint violations pass through
// unchanged.
func wrapIntegrity(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "1062"), strings.Contains(msg, "unique constraint failed"):
		return &IntegrityError{Constraint: ConstraintDuplicate, Err: err}
	case strings.Contains(msg, "1451"), strings.Contains(msg, "1452"),
		strings.Contains(msg, "foreign key constraint"):
		return &IntegrityError{Constraint: ConstraintForeignKey, Err: err}
	case strings.Contains(msg, "3819"), strings.Contains(msg, "1644"),
		strings.Contains(msg, "check constraint failed"),
		strings.Contains(msg, "capacity exceeds room capacity"):
		return &IntegrityError{Constraint: ConstraintCheck, Err: err}
	}
	return err
}

// IsDuplicate reports whether err is a unique-constraint violation.
func IsDuplicate(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie) && ie.Constraint == ConstraintDuplicate
}
