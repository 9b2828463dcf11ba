package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrValidation          = errors.New("invalid input")
	ErrParticipantExists   = errors.New("participant already exists")
	ErrParticipantNotFound = errors.New("participant not found")
)

// Error codes returned by Code.
const (
	CodeValidation          = "validation"
	CodeParticipantExists   = "participant_exists"
	CodeParticipantNotFound = "participant_not_found"
)

// ValidationError describes the first rule an input failed.
type ValidationError struct {
	Field string
	Rule  string
	Param string
}

func (e *ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: %s %s", e.Field, e.Rule, e.Param)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Rule)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Code maps err to a stable code, or "" when err is not a domain error.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrParticipantExists):
		return CodeParticipantExists
	case errors.Is(err, ErrParticipantNotFound):
		return CodeParticipantNotFound
	default:
		return ""
	}
}
