package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginValidator_Validate(t *testing.T) {
	validator := NewLoginValidator()

	testCases := []struct {
		name        string
		email       string
		password    string
		valid       bool
		expectedMsg string
	}{
		{"valid credentials", "admin@university.edu", "admin123", true, ""},
		{"empty email", "", "admin123", false, "Email is required."},
		{"whitespace email", "   ", "admin123", false, "Email is required."},
		{"missing at sign", "adminuniversity.edu", "admin123", false, "Email format is invalid."},
		{"missing domain", "admin@", "admin123", false, "Email format is invalid."},
		{"display name form", "Admin <admin@university.edu>", "admin123", false, "Email format is invalid."},
		{"surrounding spaces", " admin@university.edu ", "admin123", false, "Email format is invalid."},
		{"empty password", "admin@university.edu", "", false, "Password is required."},
		{"whitespace password", "admin@university.edu", "   ", false, "Password is required."},
		{"password too short", "admin@university.edu", "abc12", false, "Password must be at least 6 characters."},
		{"password exactly six", "admin@university.edu", "abc123", true, ""},
		{"unicode password six runes", "admin@university.edu", "pässwd", true, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := validator.Validate(tc.email, tc.password)
			assert.Equal(t, tc.valid, result.IsValid)
			assert.Equal(t, tc.expectedMsg, result.ErrorMessage)
		})
	}
}

func TestLoginValidator_OrderOfChecks(t *testing.T) {
	validator := NewLoginValidator()

	// Multiple violations report only the first failing rule
	result := validator.Validate("", "")
	assert.False(t, result.IsValid)
	assert.Equal(t, "Email is required.", result.ErrorMessage)

	result = validator.Validate("not-an-email", "123")
	assert.False(t, result.IsValid)
	assert.Equal(t, "Email format is invalid.", result.ErrorMessage)

	result = validator.Validate("admin@university.edu", "123")
	assert.False(t, result.IsValid)
	assert.Equal(t, "Password must be at least 6 characters.", result.ErrorMessage)
}
