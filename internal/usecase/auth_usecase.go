// Package usecase defines the application's use case interfaces (input ports).
package usecase

import (
	"context"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
)

// LoginInput carries the raw credentials of a login attempt.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the outcome of a login attempt. Expected failures (bad
// input, unknown account, wrong password, inactive account, directory
// outage) are values here, not Go errors: every failure carries a stable
// code and a user-facing message.
type AuthResult struct {
	Success      bool
	ErrorCode    string
	ErrorMessage string
	User         *entity.User
}

// AuthSuccess builds the result for an authenticated user.
func AuthSuccess(user *entity.User) *AuthResult {
	return &AuthResult{Success: true, User: user}
}

// AuthFailure builds a failed result from a predefined domain error.
func AuthFailure(err domainerrors.AppError) *AuthResult {
	return &AuthResult{
		Success:      false,
		ErrorCode:    err.ErrorCode(),
		ErrorMessage: err.Message(),
	}
}

// AuthFailureMessage builds a failed result with an explicit message,
// used for validation failures whose message names the violated rule.
func AuthFailureMessage(code, message string) *AuthResult {
	return &AuthResult{
		Success:      false,
		ErrorCode:    code,
		ErrorMessage: message,
	}
}

// AuthUsecase defines the authentication flows exposed to the delivery layer.
type AuthUsecase interface {
	// Login runs the full authentication sequence for the given credentials
	// and, on success, establishes the session. The returned result is never
	// nil; all failures are reported through it.
	Login(ctx context.Context, input *LoginInput) *AuthResult

	// Logout clears the current session. Calling it without an
	// authenticated session is a no-op.
	Logout(ctx context.Context)

	// CurrentUser returns the user held by the session, or nil when no
	// session is established.
	CurrentUser(ctx context.Context) *entity.User
}
