package middleware

import (
	"campus/internal/delivery/http/response"
	"campus/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware guards routes that require an established session.
type SessionMiddleware struct {
	session *entity.Session
}

// NewSessionMiddleware creates a new session guard middleware
func NewSessionMiddleware(session *entity.Session) *SessionMiddleware {
	return &SessionMiddleware{
		session: session,
	}
}

// RequireAuthenticated rejects requests when nobody is logged in.
func (m *SessionMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.session.IsAuthenticated() {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "No authenticated session.")
		}

		return next(c)
	}
}
