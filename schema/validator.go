package schema

import "strings"

// Validator checks a raw value and returns its validated form. The returned
// value may differ from the input (e.g. decoded into a typed struct).
type Validator interface {
	Validate(raw any) (any, error)
}

// Func adapts a plain function to the Validator interface.
type Func func(raw any) (any, error)

// Validate implements Validator.
func (f Func) Validate(raw any) (any, error) {
	return f(raw)
}

// ValidationError describes why a value was rejected, one cause per
// failing location.
type ValidationError struct {
	Causes []string
}

// NewValidationError creates a ValidationError from the given causes.
func NewValidationError(causes ...string) *ValidationError {
	return &ValidationError{Causes: causes}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Causes) == 0 {
		return "validation failed"
	}
	return strings.Join(e.Causes, "; ")
}
