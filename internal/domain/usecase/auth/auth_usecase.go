package auth

import (
	"context"
	"strings"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack/internal/domain/error"
	authport "github.com/fintrack-app/fintrack/internal/domain/port/auth"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/domain/port/persistence"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// Service implements registration, login and token authentication.
type Service struct {
	users        persistence.UserRepository
	hasher       authport.PasswordHasher
	tokens       authport.TokenService
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

func NewService(
	users persistence.UserRepository,
	hasher authport.PasswordHasher,
	tokens authport.TokenService,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		users:        users,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register validates the credentials, checks for duplicates and stores a new user.
func (s *Service) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if len(username) < minUsernameLength {
		return nil, errs.ErrUsernameTooShort
	}
	if len(password) < minPasswordLength {
		return nil, errs.ErrPasswordTooShort
	}
	if !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidEmail
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, errs.ErrDuplicateEmail
	} else if !errs.IsNotFoundError(err) {
		return nil, err
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, errs.ErrDuplicateUsername
	} else if !errs.IsNotFoundError(err) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{"error": err.Error()})
		return nil, errs.ErrInternalServer
	}

	user := entity.NewUser(username, email, hash, s.timeProvider)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return user, nil
}

// Login verifies the credentials and issues a signed token.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errs.IsNotFoundError(err) {
			return "", nil, errs.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", nil, errs.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		s.logger.Error("Failed to generate token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return "", nil, errs.ErrInternalServer
	}

	s.logger.Info("User logged in", map[string]any{"user_id": user.ID})

	return token, user, nil
}

// Authenticate resolves a bearer token to the owning user ID.
func (s *Service) Authenticate(token string) (uint64, error) {
	userID, err := s.tokens.Validate(token)
	if err != nil {
		return 0, errs.ErrInvalidToken
	}
	return userID, nil
}

// Profile returns the account details for the given user.
func (s *Service) Profile(ctx context.Context, userID uint64) (*entity.User, error) {
	return s.users.GetByID(ctx, userID)
}
