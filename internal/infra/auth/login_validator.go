package auth

import (
	"net/mail"
	"strings"

	"campus/internal/domain/service"
)

// Messages for each login validation rule. Clients display these verbatim,
// so the wording is part of the contract.
const (
	msgEmailRequired    = "Email is required."
	msgEmailInvalid     = "Email format is invalid."
	msgPasswordRequired = "Password is required."
	msgPasswordTooShort = "Password must be at least 6 characters."
)

const minPasswordLength = 6

type loginValidator struct{}

// NewLoginValidator creates the CredentialValidator used before every login
// attempt. Checks run in a fixed order and the first failure wins.
func NewLoginValidator() service.CredentialValidator {
	return &loginValidator{}
}

func (v *loginValidator) Validate(email, password string) service.ValidationResult {
	if strings.TrimSpace(email) == "" {
		return service.Invalid(msgEmailRequired)
	}
	if !isValidEmail(email) {
		return service.Invalid(msgEmailInvalid)
	}
	if strings.TrimSpace(password) == "" {
		return service.Invalid(msgPasswordRequired)
	}
	if len([]rune(password)) < minPasswordLength {
		return service.Invalid(msgPasswordTooShort)
	}

	return service.Valid()
}

// isValidEmail accepts an address only when the parser reproduces the input
// exactly. The round trip rejects display names, comments and surrounding
// whitespace that mail.ParseAddress would otherwise tolerate.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	return addr.Address == email
}
