package routine

import (
	"errors"
	"strings"
)

// Validation messages, one per enforced rule. They match the copy shown
// at the form boundary.
const (
	MsgNameRequired       = "Routine name is required."
	MsgNameTooLong        = "Routine name cannot exceed 50 characters."
	MsgDescriptionTooLong = "Description cannot exceed 200 characters."
)

// FieldError is a single field-scoped validation failure.
type FieldError struct {
	Field   string `json:"field"`   // "name" | "description"
	Message string `json:"message"` // display copy
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors aggregates every failing field of one submission.
// It is non-fatal: it blocks the save that produced it and nothing else.
type ValidationErrors struct {
	Fields []FieldError
}

func (e *ValidationErrors) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ByField returns the message for a field, or "" if the field passed.
func (e *ValidationErrors) ByField(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// IsValidation reports whether err is (or wraps) a ValidationErrors and
// returns it if so.
func IsValidation(err error) (*ValidationErrors, bool) {
	var ve *ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
