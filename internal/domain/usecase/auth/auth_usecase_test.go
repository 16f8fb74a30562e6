package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/logger"
	authmocks "github.com/fintrack-app/fintrack/mocks/port/auth"
	coremocks "github.com/fintrack-app/fintrack/mocks/port/core"
	persistencemocks "github.com/fintrack-app/fintrack/mocks/port/persistence"
)

type authFixture struct {
	users   *persistencemocks.MockUserRepository
	hasher  *authmocks.MockPasswordHasher
	tokens  *authmocks.MockTokenService
	service *Service
}

func newAuthFixture() *authFixture {
	users := new(persistencemocks.MockUserRepository)
	hasher := new(authmocks.MockPasswordHasher)
	tokens := new(authmocks.MockTokenService)
	timeProvider := new(coremocks.MockTimeProvider)
	timeProvider.On("Now").Return(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)).Maybe()

	return &authFixture{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		service: NewService(users, hasher, tokens, timeProvider, logger.NewNoopLogger()),
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("should register a new user", func(t *testing.T) {
		// Arrange
		f := newAuthFixture()
		f.users.On("GetByEmail", ctx, "alice@example.com").Return(nil, errs.ErrUserNotFound)
		f.users.On("GetByUsername", ctx, "alice").Return(nil, errs.ErrUserNotFound)
		f.hasher.On("Hash", "secret123").Return("$hashed$", nil)
		f.users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "alice" && u.Email == "alice@example.com" && u.PasswordHash == "$hashed$"
		})).Return(nil)

		// Act
		user, err := f.service.Register(ctx, "alice", "alice@example.com", "secret123")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, entity.RoleUser, user.Role)
		f.users.AssertExpectations(t)
	})

	t.Run("should reject short username", func(t *testing.T) {
		f := newAuthFixture()

		_, err := f.service.Register(ctx, "al", "alice@example.com", "secret123")

		assert.ErrorIs(t, err, errs.ErrUsernameTooShort)
	})

	t.Run("should reject short password", func(t *testing.T) {
		f := newAuthFixture()

		_, err := f.service.Register(ctx, "alice", "alice@example.com", "12345")

		assert.ErrorIs(t, err, errs.ErrPasswordTooShort)
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		f := newAuthFixture()

		_, err := f.service.Register(ctx, "alice", "alice.example.com", "secret123")

		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
	})

	t.Run("should reject duplicate email", func(t *testing.T) {
		f := newAuthFixture()
		existing := &entity.User{ID: 1, Email: "alice@example.com"}
		f.users.On("GetByEmail", ctx, "alice@example.com").Return(existing, nil)

		_, err := f.service.Register(ctx, "alice", "alice@example.com", "secret123")

		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
		f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should reject duplicate username", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("GetByEmail", ctx, "alice@example.com").Return(nil, errs.ErrUserNotFound)
		f.users.On("GetByUsername", ctx, "alice").Return(&entity.User{ID: 2, Username: "alice"}, nil)

		_, err := f.service.Register(ctx, "alice", "alice@example.com", "secret123")

		assert.ErrorIs(t, err, errs.ErrDuplicateUsername)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("should return token for valid credentials", func(t *testing.T) {
		f := newAuthFixture()
		user := &entity.User{ID: 42, Email: "alice@example.com", PasswordHash: "$hashed$"}
		f.users.On("GetByEmail", ctx, "alice@example.com").Return(user, nil)
		f.hasher.On("Compare", "$hashed$", "secret123").Return(true)
		f.tokens.On("Generate", uint64(42)).Return("signed-token", nil)

		token, loggedIn, err := f.service.Login(ctx, "alice@example.com", "secret123")

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, uint64(42), loggedIn.ID)
	})

	t.Run("should reject unknown email", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("GetByEmail", ctx, "nobody@example.com").Return(nil, errs.ErrUserNotFound)

		_, _, err := f.service.Login(ctx, "nobody@example.com", "secret123")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("should reject wrong password with the same error", func(t *testing.T) {
		f := newAuthFixture()
		user := &entity.User{ID: 42, Email: "alice@example.com", PasswordHash: "$hashed$"}
		f.users.On("GetByEmail", ctx, "alice@example.com").Return(user, nil)
		f.hasher.On("Compare", "$hashed$", "wrong").Return(false)

		_, _, err := f.service.Login(ctx, "alice@example.com", "wrong")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		f.tokens.AssertNotCalled(t, "Generate", mock.Anything)
	})
}

func TestService_Authenticate(t *testing.T) {
	t.Run("should resolve valid token", func(t *testing.T) {
		f := newAuthFixture()
		f.tokens.On("Validate", "good-token").Return(uint64(7), nil)

		userID, err := f.service.Authenticate("good-token")

		assert.NoError(t, err)
		assert.Equal(t, uint64(7), userID)
	})

	t.Run("should reject invalid token", func(t *testing.T) {
		f := newAuthFixture()
		f.tokens.On("Validate", "bad-token").Return(uint64(0), errs.ErrInvalidToken)

		_, err := f.service.Authenticate("bad-token")

		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}
