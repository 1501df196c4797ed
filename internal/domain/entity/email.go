package entity

import (
	"regexp"
	"strings"

	domainError "github.com/erickmarcia/To-Do-Tisk/internal/domain/error"
)

// emailPattern accepts the basic local@domain.tld shape.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a validated, case-normalized email address.
type Email string

// NewEmail trims and lower-cases the input and rejects blank or malformed
// values with a ValidationError.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", domainError.NewFieldValidationError("email", "email is required")
	}
	if !emailPattern.MatchString(trimmed) {
		return "", domainError.NewFieldValidationError("email", "invalid email format")
	}
	return Email(strings.ToLower(trimmed)), nil
}

func (e Email) String() string {
	return string(e)
}
