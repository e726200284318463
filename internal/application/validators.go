package application

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator contains data validation helpers for guest contact fields.
type Validator struct{}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)
	nameRegex  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s\-'.]+$`)
)

// ValidateEmail validates the format of an email address.
func (v *Validator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email '%s' is not valid", email)
	}
	return nil
}

// ValidatePhone validates a phone number, ignoring spaces, dashes and
// parentheses.
func (v *Validator) ValidatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("phone is required")
	}

	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if !phoneRegex.MatchString(clean) {
		return fmt.Errorf("phone '%s' must have between 7 and 15 digits", phone)
	}
	return nil
}

// ValidateName validates that a name field is present and well-formed.
func (v *Validator) ValidateName(name, fieldName string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if len(name) < 2 {
		return fmt.Errorf("%s must have at least 2 characters", fieldName)
	}
	if len(name) > 80 {
		return fmt.Errorf("%s cannot exceed 80 characters", fieldName)
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}
	return nil
}
