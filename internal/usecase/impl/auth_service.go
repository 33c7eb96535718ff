// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "campus/internal/delivery/context"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/domain/service"
	"campus/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	validator service.CredentialValidator
	users     repository.UserRepository
	hasher    service.PasswordHasher
	session   *entity.Session
	logger    *slog.Logger
}

// AuthServiceParams defines the dependencies of authService.
type AuthServiceParams struct {
	fx.In

	Validator service.CredentialValidator
	Users     repository.UserRepository
	Hasher    service.PasswordHasher
	Session   *entity.Session
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		validator: params.Validator,
		users:     params.Users,
		hasher:    params.Hasher,
		session:   params.Session,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login runs the authentication sequence in a fixed order: validate input,
// look up the account, check the active flag, verify the password, establish
// the session. The active check precedes password verification, so a
// deactivated account reports inactive even when the password is wrong.
// A failed attempt never touches the session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) *usecase.AuthResult {
	srv.log(ctx).Debug("Login attempt", slog.String("email", input.Email))

	// 1. Validate input syntactically before any I/O
	if result := srv.validator.Validate(input.Email, input.Password); !result.IsValid {
		srv.log(ctx).Warn("Login rejected by validation",
			slog.String("email", input.Email),
			slog.String("reason", result.ErrorMessage))

		return usecase.AuthFailureMessage(domainerrors.ErrValidationFailed.ErrorCode(), result.ErrorMessage)
	}

	// 2. Look up the account by email
	user, err := srv.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same message as a wrong password so the response never
			// reveals whether the account exists
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", input.Email))

			return usecase.AuthFailure(domainerrors.ErrInvalidCredentials)
		}

		srv.log(ctx).Error("Login failed, user directory unavailable",
			slog.String("email", input.Email),
			slog.Any("error", err))

		return usecase.AuthFailure(domainerrors.ErrDirectoryUnavailable)
	}

	// 3. Gate on the active flag before verifying the password
	if !user.IsActive {
		srv.log(ctx).Warn("Login rejected, account inactive",
			slog.String("email", input.Email),
			slog.Any("user_id", user.ID))

		return usecase.AuthFailure(domainerrors.ErrAccountInactive)
	}

	// 4. Verify the password against the stored credential pair
	if !srv.hasher.Verify(input.Password, user.PasswordHash, user.PasswordSalt) {
		srv.log(ctx).Warn("Login failed, wrong password",
			slog.String("email", input.Email),
			slog.Any("user_id", user.ID))

		return usecase.AuthFailure(domainerrors.ErrInvalidCredentials)
	}

	// 5. Establish the session
	srv.session.Establish(user)
	srv.log(ctx).Info("Login succeeded",
		slog.String("email", user.Email),
		slog.Any("user_id", user.ID),
		slog.String("role", user.Role.String()))

	return usecase.AuthSuccess(user)
}

// Logout clears the current session. It is idempotent.
func (srv *authService) Logout(ctx context.Context) {
	if user := srv.session.Current(); user != nil {
		srv.log(ctx).Info("Logout", slog.Any("user_id", user.ID))
	}

	srv.session.Clear()
}

// CurrentUser returns the user held by the session, or nil when nobody is
// logged in.
func (srv *authService) CurrentUser(_ context.Context) *entity.User {
	return srv.session.Current()
}
