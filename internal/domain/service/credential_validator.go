// Package service defines interfaces for core, stateless domain logic.
package service

// ValidationResult is the outcome of a syntactic credential check.
type ValidationResult struct {
	IsValid      bool
	ErrorMessage string
}

// Valid returns a passing validation result.
func Valid() ValidationResult {
	return ValidationResult{IsValid: true}
}

// Invalid returns a failing validation result with the message for the
// specific violated rule.
func Invalid(message string) ValidationResult {
	return ValidationResult{IsValid: false, ErrorMessage: message}
}

// CredentialValidator rejects syntactically invalid login input before any
// I/O happens. Implementations must be pure: no I/O, no mutation,
// deterministic for identical input.
type CredentialValidator interface {
	// Validate runs the ordered checks (email presence, email shape,
	// password presence, password length); the first failure wins and
	// carries a rule-specific message.
	Validate(email, password string) ValidationResult
}
