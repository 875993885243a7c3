package model

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks across the decision pipeline.
var (
	ErrValidation            = errors.New("validation failed")
	ErrEncoding              = errors.New("encoding failed")
	ErrOracleUnavailable     = errors.New("oracle unavailable")
	ErrConfidenceUnavailable = errors.New("confidence unavailable")
	ErrDecisionNotFound      = errors.New("decision not found")
)

// ValidationError reports a missing or uncoercible input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// EncodingError reports a categorical value absent from the frozen encoding table.
type EncodingError struct {
	Field string
	Value string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unknown value %q for categorical field %s", e.Value, e.Field)
}

func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }

// OracleUnavailableError reports a missing, unloaded or schema-incompatible oracle.
type OracleUnavailableError struct {
	Profile string
	Reason  string
	Err     error
}

func (e *OracleUnavailableError) Error() string {
	msg := "oracle unavailable"
	if e.Profile != "" {
		msg += " for " + e.Profile
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OracleUnavailableError) Is(target error) bool { return target == ErrOracleUnavailable }

func (e *OracleUnavailableError) Unwrap() error { return e.Err }

// ConfidenceUnavailableError is soft: the decision still succeeds with a sentinel confidence.
type ConfidenceUnavailableError struct {
	Err error
}

func (e *ConfidenceUnavailableError) Error() string {
	return "confidence unavailable: " + e.Err.Error()
}

func (e *ConfidenceUnavailableError) Is(target error) bool { return target == ErrConfidenceUnavailable }

func (e *ConfidenceUnavailableError) Unwrap() error { return e.Err }
