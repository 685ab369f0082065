package domain

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError is a single recoverable validation failure attached to one field.
// Validators return these as data, never as panics, so forms can render every
// failure at once without dropping already-entered values.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Reason codes used by FieldError. Kept as a small closed vocabulary so the
// frontend can map them to messages.
const (
	ReasonRequired         = "required"
	ReasonInvalidFormat    = "invalid_format"
	ReasonCategoryMismatch = "category_mismatch"
	ReasonExpiringDocument = "expiring_document"
	ReasonDuplicatePrimary = "duplicate_primary"
	ReasonMissingPrimary   = "missing_primary"
)

// ValidationError wraps a FieldError list when a validation failure has to
// cross an error-typed boundary (repository, service, handler).
type ValidationError struct {
	Fields []FieldError
	Err    error
}

func (e ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return strings.Join(parts, "; ")
}

func (e ValidationError) Unwrap() error { return e.Err }

// Seat conflict codes.
const (
	SeatUnavailable = "seat_unavailable"
	SeatTaken       = "seat_taken"
)

// SeatConflictError reports a rejected seat assignment. Recoverable: the
// caller re-prompts seat selection instead of failing the flow.
type SeatConflictError struct {
	Code        string
	SeatID      string
	PassengerID string
}

func (e SeatConflictError) Error() string {
	switch e.Code {
	case SeatUnavailable:
		return fmt.Sprintf("seat %s is not available", e.SeatID)
	case SeatTaken:
		return fmt.Sprintf("seat %s is already taken", e.SeatID)
	default:
		return fmt.Sprintf("seat %s conflict", e.SeatID)
	}
}

// StateTransitionError reports an illegal booking lifecycle edge, e.g. a
// second cancellation of the same booking.
type StateTransitionError struct {
	Resource string
	From     string
	To       string
}

func (e StateTransitionError) Error() string {
	if e.From == e.To {
		return fmt.Sprintf("%s is already %s", e.Resource, e.To)
	}
	return fmt.Sprintf("%s cannot move from %s to %s", e.Resource, e.From, e.To)
}

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// InternalError marks collaborator failures (store unreachable etc.) that the
// caller may retry.
type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

// ValidationFields extracts the field errors carried by err, if any.
func ValidationFields(err error) []FieldError {
	var target ValidationError
	if errors.As(err, &target) {
		return target.Fields
	}
	return nil
}

func IsSeatConflict(err error) bool {
	var target SeatConflictError
	return errors.As(err, &target)
}

func IsStateTransition(err error) bool {
	var target StateTransitionError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
