package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"campus/internal/domain/entity"
	"campus/internal/domain/repository"
	"campus/internal/domain/service"
	"campus/internal/infra/auth"
	"campus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockUserRepository is a hand-rolled testify mock for the user directory.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) HasAny(ctx context.Context) (bool, error) {
	args := m.Called(ctx)

	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// mockPasswordHasher lets tests observe whether verification was attempted.
type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, string, error) {
	args := m.Called(password)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockPasswordHasher) Verify(password, hash, salt string) bool {
	args := m.Called(password, hash, salt)

	return args.Bool(0)
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockUserRepository
	session  *entity.Session
	hasher   service.PasswordHasher
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newSeededUser builds an active user whose stored credential pair matches
// the given password.
func newSeededUser(t *testing.T, hasher service.PasswordHasher, email, password string, active bool) *entity.User {
	t.Helper()

	hash, salt, err := hasher.Hash(password)
	require.NoError(t, err)

	return &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         entity.RoleStudent,
		DisplayName:  "Test User",
		IsActive:     active,
	}
}

func createTestAuthService(t *testing.T, hasher service.PasswordHasher) authServiceFixtures {
	t.Helper()

	userRepo := &mockUserRepository{}
	session := entity.NewSession()

	svc := NewAuthService(AuthServiceParams{
		Validator: auth.NewLoginValidator(),
		Users:     userRepo,
		Hasher:    hasher,
		Session:   session,
		Logger:    newDiscardLogger(),
	})

	return authServiceFixtures{
		service:  svc,
		userRepo: userRepo,
		session:  session,
		hasher:   hasher,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	hasher := auth.NewPBKDF2Hasher()
	fx := createTestAuthService(t, hasher)

	ctx := context.Background()
	user := newSeededUser(t, hasher, "student@university.edu", "student123", true)

	fx.userRepo.On("FindByEmail", ctx, "student@university.edu").Return(user, nil)

	result := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "student@university.edu",
		Password: "student123",
	})

	require.True(t, result.Success)
	assert.Empty(t, result.ErrorCode)
	assert.Equal(t, user, result.User)

	// The session now holds the authenticated user
	assert.True(t, fx.session.IsAuthenticated())
	assert.Equal(t, user, fx.session.Current())
}

func TestAuthService_Login_ValidationFailure(t *testing.T) {
	fx := createTestAuthService(t, auth.NewPBKDF2Hasher())

	ctx := context.Background()

	testCases := []struct {
		name        string
		email       string
		password    string
		expectedMsg string
	}{
		{"empty email", "", "student123", "Email is required."},
		{"bad email shape", "not-an-email", "student123", "Email format is invalid."},
		{"empty password", "student@university.edu", "", "Password is required."},
		{"short password", "student@university.edu", "12345", "Password must be at least 6 characters."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := fx.service.Login(ctx, &usecase.LoginInput{Email: tc.email, Password: tc.password})

			assert.False(t, result.Success)
			assert.Equal(t, "VALIDATION_FAILED", result.ErrorCode)
			assert.Equal(t, tc.expectedMsg, result.ErrorMessage)
			assert.Nil(t, result.User)
		})
	}

	// Validation failures never reach the directory
	fx.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	assert.False(t, fx.session.IsAuthenticated())
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t, auth.NewPBKDF2Hasher())

	ctx := context.Background()
	fx.userRepo.On("FindByEmail", ctx, "ghost@university.edu").Return(nil, repository.ErrUserNotFound)

	result := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@university.edu",
		Password: "whatever123",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "INVALID_CREDENTIALS", result.ErrorCode)
	assert.Equal(t, "Invalid email or password.", result.ErrorMessage)
	assert.False(t, fx.session.IsAuthenticated())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hasher := auth.NewPBKDF2Hasher()
	fx := createTestAuthService(t, hasher)

	ctx := context.Background()
	user := newSeededUser(t, hasher, "student@university.edu", "student123", true)
	fx.userRepo.On("FindByEmail", ctx, "student@university.edu").Return(user, nil)

	result := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "student@university.edu",
		Password: "wrongpass",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "INVALID_CREDENTIALS", result.ErrorCode)
	assert.Equal(t, "Invalid email or password.", result.ErrorMessage)
	assert.False(t, fx.session.IsAuthenticated())
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	hasher := auth.NewPBKDF2Hasher()
	fx := createTestAuthService(t, hasher)

	ctx := context.Background()
	user := newSeededUser(t, hasher, "student@university.edu", "student123", true)
	fx.userRepo.On("FindByEmail", ctx, "student@university.edu").Return(user, nil)
	fx.userRepo.On("FindByEmail", ctx, "ghost@university.edu").Return(nil, repository.ErrUserNotFound)

	wrongPassword := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "student@university.edu",
		Password: "wrongpass",
	})
	unknownEmail := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@university.edu",
		Password: "wrongpass",
	})

	// Both failures carry the same code and the exact same message
	assert.Equal(t, wrongPassword.ErrorCode, unknownEmail.ErrorCode)
	assert.Equal(t, wrongPassword.ErrorMessage, unknownEmail.ErrorMessage)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	hasher := auth.NewPBKDF2Hasher()
	fx := createTestAuthService(t, hasher)

	ctx := context.Background()
	user := newSeededUser(t, hasher, "former@university.edu", "former123", false)
	fx.userRepo.On("FindByEmail", ctx, "former@university.edu").Return(user, nil)

	result := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "former@university.edu",
		Password: "former123",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "ACCOUNT_INACTIVE", result.ErrorCode)
	assert.Equal(t, "Your account is currently inactive. Please contact support.", result.ErrorMessage)
	assert.False(t, fx.session.IsAuthenticated())
}

func TestAuthService_Login_InactiveGatePrecedesVerification(t *testing.T) {
	hasher := &mockPasswordHasher{}
	fx := createTestAuthService(t, hasher)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "former@university.edu",
		PasswordHash: "hash",
		PasswordSalt: "salt",
		Role:         entity.RoleTeacher,
		IsActive:     false,
	}
	fx.userRepo.On("FindByEmail", ctx, "former@university.edu").Return(user, nil)

	result := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "former@university.edu",
		Password: "former123",
	})

	assert.Equal(t, "ACCOUNT_INACTIVE", result.ErrorCode)

	// The inactive gate fires before any password work happens
	hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_DirectoryUnavailable(t *testing.T) {
	fx := createTestAuthService(t, auth.NewPBKDF2Hasher())

	ctx := context.Background()
	fx.userRepo.On("FindByEmail", ctx, "student@university.edu").
		Return(nil, errors.New("connection refused"))

	result := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "student@university.edu",
		Password: "student123",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "SERVICE_UNAVAILABLE", result.ErrorCode)
	assert.Equal(t, "Authentication service is temporarily unavailable. Please try again later.", result.ErrorMessage)
	assert.False(t, fx.session.IsAuthenticated())
}

func TestAuthService_Login_FailureLeavesExistingSessionIntact(t *testing.T) {
	hasher := auth.NewPBKDF2Hasher()
	fx := createTestAuthService(t, hasher)

	ctx := context.Background()
	alice := newSeededUser(t, hasher, "alice@university.edu", "alice123", true)
	fx.userRepo.On("FindByEmail", ctx, "alice@university.edu").Return(alice, nil)
	fx.userRepo.On("FindByEmail", ctx, "ghost@university.edu").Return(nil, repository.ErrUserNotFound)

	ok := fx.service.Login(ctx, &usecase.LoginInput{Email: "alice@university.edu", Password: "alice123"})
	require.True(t, ok.Success)

	// A later failed attempt must not clear or replace the session
	failed := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@university.edu", Password: "whatever123"})
	assert.False(t, failed.Success)
	assert.Equal(t, alice, fx.session.Current())
}

func TestAuthService_LogoutAndCurrentUser(t *testing.T) {
	hasher := auth.NewPBKDF2Hasher()
	fx := createTestAuthService(t, hasher)

	ctx := context.Background()
	user := newSeededUser(t, hasher, "admin@university.edu", "admin123", true)
	fx.userRepo.On("FindByEmail", ctx, "admin@university.edu").Return(user, nil)

	assert.Nil(t, fx.service.CurrentUser(ctx))

	result := fx.service.Login(ctx, &usecase.LoginInput{Email: "admin@university.edu", Password: "admin123"})
	require.True(t, result.Success)
	assert.Equal(t, user, fx.service.CurrentUser(ctx))

	fx.service.Logout(ctx)
	assert.Nil(t, fx.service.CurrentUser(ctx))

	// Logout without a session is a no-op
	fx.service.Logout(ctx)
	assert.Nil(t, fx.service.CurrentUser(ctx))
}
