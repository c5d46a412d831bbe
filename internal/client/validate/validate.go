// Package validate holds the form checks shared by the login and admin
// management flows. Every failure is an *apperr.Error with CodeValidation.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/denidash/internal/client/apperr"
)

// MinPasswordLength is the shortest password accepted for admin accounts.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required fails when value is empty after trimming.
func Required(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return apperr.New(apperr.CodeValidation, fmt.Sprintf("%s is required", field))
	}
	return nil
}

// IsEmail reports whether value looks like an email address.
func IsEmail(value string) bool {
	return emailPattern.MatchString(value)
}

func Email(value string) error {
	if !IsEmail(value) {
		return apperr.New(apperr.CodeValidation, "Please enter a valid email address")
	}
	return nil
}

func Password(value string) error {
	if len([]rune(value)) < MinPasswordLength {
		return apperr.New(apperr.CodeValidation,
			fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength))
	}
	return nil
}

func PasswordConfirmation(password, confirm string) error {
	if password != confirm {
		return apperr.New(apperr.CodeValidation, "Passwords do not match")
	}
	return nil
}
