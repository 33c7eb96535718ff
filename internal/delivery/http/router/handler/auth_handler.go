// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"campus/internal/delivery/http/response"
	"campus/internal/domain/entity"
	"campus/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// userView is the wire representation of a user. The credential pair never
// leaves the server.
type userView struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	DisplayName       string    `json:"displayName"`
	PhoneNumber       string    `json:"phoneNumber,omitempty"`
	Address           string    `json:"address,omitempty"`
	ProfilePictureURL string    `json:"profilePictureUrl,omitempty"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toUserView(user *entity.User) *userView {
	if user == nil {
		return nil
	}

	return &userView{
		ID:                user.ID.String(),
		Email:             user.Email,
		Role:              user.Role.String(),
		DisplayName:       user.DisplayName,
		PhoneNumber:       user.PhoneNumber,
		Address:           user.Address,
		ProfilePictureURL: user.ProfilePictureURL,
		IsActive:          user.IsActive,
		CreatedAt:         user.CreatedAt,
	}
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	result := h.uc.Login(c.Request().Context(), &input)
	if !result.Success {
		return response.Error(c, statusForCode(result.ErrorCode), result.ErrorCode, result.ErrorMessage, "")
	}

	return response.Success(c, http.StatusOK, toUserView(result.User), "Login successful")
}

// Logout handles the logout request. It succeeds even without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.uc.Logout(c.Request().Context())

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Me returns the currently authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	user := h.uc.CurrentUser(c.Request().Context())
	if user == nil {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "No authenticated session.")
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// statusForCode maps an authentication failure code to its HTTP status.
func statusForCode(code string) int {
	switch code {
	case "VALIDATION_FAILED":
		return http.StatusBadRequest
	case "ACCOUNT_INACTIVE":
		return http.StatusForbidden
	case "SERVICE_UNAVAILABLE":
		return http.StatusServiceUnavailable
	default:
		return http.StatusUnauthorized
	}
}
