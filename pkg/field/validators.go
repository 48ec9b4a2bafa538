package field

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultRequiredMessage is reported by Required when no message is supplied.
const DefaultRequiredMessage = "This field is required"

// Validator checks a resolved field value.
type Validator interface {
	// Validate returns nil when value is acceptable.
	Validate(value any) error
}

// ValidatorFunc adapts a function into a Validator.
type ValidatorFunc func(value any) error

func (f ValidatorFunc) Validate(value any) error {
	return f(value)
}

// ValidationError carries the message shown next to a widget.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// Required rejects empty values: nil, blank strings and empty byte slices.
func Required(msg string) Validator {
	if msg == "" {
		msg = DefaultRequiredMessage
	}
	return ValidatorFunc(func(value any) error {
		if IsEmpty(value) {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// MinLength rejects strings shorter than n runes. Empty values pass; pair with
// Required to reject them.
func MinLength(n int, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("Must be at least %d characters", n)
	}
	return ValidatorFunc(func(value any) error {
		s := toString(value)
		if s == "" {
			return nil
		}
		if len([]rune(s)) < n {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// MaxLength rejects strings longer than n runes.
func MaxLength(n int, msg string) Validator {
	if msg == "" {
		msg = fmt.Sprintf("Must be at most %d characters", n)
	}
	return ValidatorFunc(func(value any) error {
		if len([]rune(toString(value))) > n {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// Pattern rejects non-empty values that do not match the expression.
func Pattern(pattern string, msg string) Validator {
	re := regexp.MustCompile(pattern)
	if msg == "" {
		msg = "Invalid format"
	}
	return ValidatorFunc(func(value any) error {
		s := toString(value)
		if s == "" {
			return nil
		}
		if !re.MatchString(s) {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// IsEmpty reports whether value counts as blank for Required.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []byte:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	default:
		return false
	}
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
