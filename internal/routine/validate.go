package routine

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// validate is shared and concurrency-safe per the validator docs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Normalize returns the form with Name and Description NFC-normalized
// and Name trimmed of surrounding whitespace, and the default color
// applied when none was chosen. Validation and storage both operate on
// the normalized form, so equal-looking names compare equal.
func (f FormData) Normalize() FormData {
	f.Name = strings.TrimSpace(norm.NFC.String(f.Name))
	f.Description = norm.NFC.String(f.Description)
	if f.Color == "" {
		f.Color = DefaultColor()
	}
	return f
}

// Validate checks the normalized form against the boundary rules:
// Name non-empty and at most 50 characters, Description at most 200.
// Character counts are in runes, so multi-byte input is not penalized.
// Returns *ValidationErrors listing every failing field, or nil.
func (f FormData) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		// validator.InvalidValidationError only occurs for non-struct
		// input, which cannot happen here.
		panic("routine: unexpected validator error: " + err.Error())
	}

	ve := &ValidationErrors{}
	for _, fe := range invalid {
		switch {
		case fe.Field() == "Name" && fe.Tag() == "required":
			ve.Fields = append(ve.Fields, FieldError{Field: "name", Message: MsgNameRequired})
		case fe.Field() == "Name" && fe.Tag() == "max":
			ve.Fields = append(ve.Fields, FieldError{Field: "name", Message: MsgNameTooLong})
		case fe.Field() == "Description" && fe.Tag() == "max":
			ve.Fields = append(ve.Fields, FieldError{Field: "description", Message: MsgDescriptionTooLong})
		default:
			ve.Fields = append(ve.Fields, FieldError{Field: strings.ToLower(fe.Field()), Message: fe.Error()})
		}
	}
	return ve
}
