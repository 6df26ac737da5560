package store

import (
	"errors"
	"strings"

	"github.com/example/activ/internal/validation"
)

// Error taxonomy translated by handlers into HTTP statuses. Store methods
// return these, never raw gorm errors, for every failure a caller can act on.
var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("record already exists")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrInactiveAccount    = errors.New("account is inactive or not found")

	// ErrCredentialWrite marks a registration whose member row was persisted
	// but whose credential write failed. The orphaned member is observable,
	// not rolled back.
	ErrCredentialWrite = errors.New("credential write failed")
)

// ValidationError carries field-level violations for caller-fixable input.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: []validation.FieldError{{Field: field, Message: message}}}
}

func validateStruct(s interface{}) error {
	if fields := validation.Struct(s); fields != nil {
		return &ValidationError{Fields: fields}
	}
	return nil
}
