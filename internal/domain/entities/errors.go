package entities

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrProvider      = errors.New("payment provider error")
	ErrNotFound      = errors.New("not found")
)

// ValidationError is malformed caller input. It is never retried automatically.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Reason
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ConfigurationError means the operator has to fix process configuration.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: missing %s", e.Setting)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// ProviderError is a non-2xx or malformed answer from the payment provider.
// Message is the provider's own text, kept verbatim.
type ProviderError struct {
	Operation  string
	Reference  string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("payment provider %s failed", e.Operation)
	if e.Reference != "" {
		msg += " reference=" + e.Reference
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status=%d", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProviderError) Unwrap() error { return e.Err }

func (e *ProviderError) Is(target error) bool { return target == ErrProvider }

// NotFoundError is returned when the provider does not know a reference.
type NotFoundError struct {
	Reference string
	Message   string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("transaction %s not found: %s", e.Reference, e.Message)
	}
	return fmt.Sprintf("transaction %s not found", e.Reference)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// PersistenceWarning reports a verified payment whose promotion could not be recorded.
// It is carried on VerificationOutcome, not returned as an error.
type PersistenceWarning struct {
	Reference  string
	PropertyID string
	Err        error
}

func (w *PersistenceWarning) Error() string {
	return fmt.Sprintf("payment %s verified but promotion for property %s was not recorded: %v", w.Reference, w.PropertyID, w.Err)
}

func (w *PersistenceWarning) Unwrap() error { return w.Err }
