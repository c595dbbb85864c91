package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is a single violation attached to a field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors is the ordered set of violations of a form.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// AddMessage records msg for field unless msg is empty.
func (ve *ValidationErrors) AddMessage(field, msg string) {
	if msg != "" {
		ve.Add(ValidationError{Field: field, Message: msg})
	}
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages of field in insertion order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the fields with at least one violation, in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Map groups messages by field.
func (ve ValidationErrors) Map() map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, err := range ve {
		out[err.Field] = append(out[err.Field], err.Message)
	}
	return out
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Err returns ve as an error, or nil when there are no violations.
func (ve ValidationErrors) Err() error {
	if ve.IsEmpty() {
		return nil
	}
	return ve
}

// Rule is a single deferred check.
type Rule struct {
	Check func() bool
	Error ValidationError

	// resolve, when set, supplies the error after a failed Check.
	resolve func() ValidationError
}

func (r Rule) failure() ValidationError {
	if r.resolve != nil {
		return r.resolve()
	}
	return r.Error
}

// Apply executes every rule and returns all violations.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.failure())
		}
	}

	return errs.Err()
}

// First chains the rules of one field: the resulting rule fails with the
// error of the first failing rule, so "required" and "format" never both fire.
func First(rules ...Rule) Rule {
	failed := -1
	return Rule{
		Check: func() bool {
			for i, rule := range rules {
				if !rule.Check() {
					failed = i
					return false
				}
			}
			failed = -1
			return true
		},
		resolve: func() ValidationError {
			if failed < 0 {
				return ValidationError{}
			}
			return rules[failed].failure()
		},
	}
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
