// Package validation holds the pure field-level rules applied to raw request
// input before anything touches storage. Every failure wraps
// domain.ErrInvalidInput and names the offending field.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"contact_service/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	// One or more letter-only tokens separated by single spaces.
	nameRegexp  = regexp.MustCompile(`^[a-zA-Z]+( [a-zA-Z]+)*$`)
	phoneRegexp = regexp.MustCompile(`^[0-9]{10}$`)

	validate = validator.New()
)

func ValidateName(name string) error {
	if !nameRegexp.MatchString(strings.TrimSpace(name)) {
		return fmt.Errorf("%w: name must only contain letters and should not be empty or just spaces", domain.ErrInvalidInput)
	}
	return nil
}

func ValidatePhone(phnumber string) error {
	if !phoneRegexp.MatchString(phnumber) {
		return fmt.Errorf("%w: phone number must be a valid 10-digit integer", domain.ErrInvalidInput)
	}
	return nil
}

func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	return nil
}

// ValidateNewContact checks the three required contact fields, failing fast
// on the first violation.
func ValidateNewContact(name, email, phnumber string) error {
	if name == "" || email == "" || phnumber == "" {
		return fmt.Errorf("%w: missing required fields: name, email, and phnumber", domain.ErrInvalidInput)
	}
	if err := ValidatePhone(phnumber); err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return err
	}
	return ValidateEmail(email)
}

// ValidateNewUser checks the registration fields. Passwords only need to be
// present; there is no complexity rule.
func ValidateNewUser(name, email, phnumber, address, password string) error {
	if name == "" || email == "" || phnumber == "" || address == "" {
		return fmt.Errorf("%w: missing required fields: name, email, phnumber, and address", domain.ErrInvalidInput)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}
	if err := ValidatePhone(phnumber); err != nil {
		return err
	}
	if err := ValidateName(name); err != nil {
		return err
	}
	return ValidateEmail(email)
}
