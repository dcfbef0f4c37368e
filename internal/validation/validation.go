package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// ValidationError reports a single rejected form field. It is always
// recoverable; callers surface it next to the field instead of failing
// the request outright.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Errorf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nationalIDPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
)

func Email(field, value string) *ValidationError {
	if !emailPattern.MatchString(value) {
		return Errorf(field, "must be a valid e-mail address")
	}
	return nil
}

// NationalID checks the 123.456.789-00 format used on the registration form.
func NationalID(field, value string) *ValidationError {
	if !nationalIDPattern.MatchString(value) {
		return Errorf(field, "must match the format 123.456.789-00")
	}
	return nil
}

func MinLength(field, value string, min int) *ValidationError {
	if utf8.RuneCountInString(value) < min {
		return Errorf(field, "must have at least %d characters", min)
	}
	return nil
}

func Required(field, value string) *ValidationError {
	if value == "" {
		return Errorf(field, "is required")
	}
	return nil
}
