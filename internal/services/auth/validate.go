package auth

import (
	"errors"
	"net/mail"
	"strings"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

// ValidationError reports a credential that failed a local check.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + " " + e.Reason }

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateRegistration checks sign-up input in form order and returns the
// first problem found.
func ValidateRegistration(username, email, password, confirm string) error {
	if strings.TrimSpace(username) == "" {
		return &ValidationError{Field: "username", Reason: "must not be blank"}
	}
	if !validEmail(email) {
		return &ValidationError{Field: "email", Reason: "is not a valid address"}
	}
	if len([]rune(password)) < MinPasswordLength {
		return &ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	if confirm != password {
		return &ValidationError{Field: "confirmation", Reason: "does not match password"}
	}
	return nil
}

// ValidateLogin checks that both login fields are present.
func ValidateLogin(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return &ValidationError{Field: "username", Reason: "must not be blank"}
	}
	if strings.TrimSpace(password) == "" {
		return &ValidationError{Field: "password", Reason: "must not be blank"}
	}
	return nil
}

// validEmail accepts a bare address only; display names are rejected.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}
