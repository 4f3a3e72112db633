package result

import (
	"fmt"
)

// Layer classifies where a failure originated.
// Every Error carries exactly one Layer, so the presentation layer can map
// any failure to a transport status without a fallback case.
type Layer int

const (
	// LayerValidation marks input that could not be turned into a value object.
	LayerValidation Layer = iota + 1

	// LayerApplicationRule marks a well-formed request that violates a business
	// invariant, e.g. the entity does not exist or already exists.
	LayerApplicationRule

	// LayerPersistence marks a storage or infrastructure failure.
	LayerPersistence
)

// String returns the layer name used in API error bodies and logs.
func (l Layer) String() string {
	switch l {
	case LayerValidation:
		return "validation"
	case LayerApplicationRule:
		return "application_rule"
	case LayerPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// MarshalText encodes the layer by name.
func (l Layer) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes a layer name produced by MarshalText.
func (l *Layer) UnmarshalText(text []byte) error {
	for _, candidate := range []Layer{LayerValidation, LayerApplicationRule, LayerPersistence} {
		if candidate.String() == string(text) {
			*l = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown layer %q", text)
}

// Code is a machine-readable error code within a layer.
type Code string

const (
	// Validation codes.
	CodeRequired      Code = "REQUIRED"
	CodeTooShort      Code = "TOO_SHORT"
	CodeTooLong       Code = "TOO_LONG"
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeInvalidValue  Code = "INVALID_VALUE"

	// Application rule codes.
	CodeNotFound      Code = "NOT_FOUND"
	CodeAlreadyExists Code = "ALREADY_EXISTS"
	CodeRuleViolated  Code = "RULE_VIOLATED"

	// Persistence codes.
	CodeDatabaseError Code = "DATABASE_ERROR"
)

// Error is a single failure record.
// Field names the input the error refers to and is empty for errors that are
// not tied to one input (e.g. a repository failure).
type Error struct {
	Layer   Layer  `json:"layer"`
	Code    Code   `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s: %s", e.Layer, e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Layer, e.Code, e.Message)
}

// Validation creates a validation error for field.
func Validation(field string, code Code, format string, args ...any) Error {
	return Error{
		Layer:   LayerValidation,
		Code:    code,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFound creates an application rule error for a missing entity.
func NotFound(format string, args ...any) Error {
	return Error{
		Layer:   LayerApplicationRule,
		Code:    CodeNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// AlreadyExists creates an application rule error for a duplicate entity.
func AlreadyExists(format string, args ...any) Error {
	return Error{
		Layer:   LayerApplicationRule,
		Code:    CodeAlreadyExists,
		Message: fmt.Sprintf(format, args...),
	}
}

// Rule creates an application rule error with a caller-chosen field.
func Rule(field string, format string, args ...any) Error {
	return Error{
		Layer:   LayerApplicationRule,
		Code:    CodeRuleViolated,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Persistence creates a persistence error. The message is shown to callers,
// so it must not contain driver output.
func Persistence(format string, args ...any) Error {
	return Error{
		Layer:   LayerPersistence,
		Code:    CodeDatabaseError,
		Message: fmt.Sprintf(format, args...),
	}
}
