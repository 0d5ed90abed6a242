package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/books-api/internal/domain"
	"github.com/phrazzld/books-api/internal/platform/logger"
	"github.com/phrazzld/books-api/internal/service/auth"
	"github.com/phrazzld/books-api/internal/store"
)

// AuthResult is the outcome of a successful registration or login.
type AuthResult struct {
	User  *domain.User
	Token string
}

// UserService provides registration, login and profile lookups.
type UserService interface {
	// Register creates an account and issues a session token for it.
	// Returns ErrUserExists if the email or username is taken.
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)

	// Login verifies credentials and issues a session token.
	// Returns ErrInvalidCredentials for any credential failure.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Profile returns the user with the given ID.
	// Returns store.ErrUserNotFound if the account no longer exists.
	Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore  store.UserStore
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
	logger     *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore:  userStore,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger.With("component", "user_service"),
	}
}

// Register implements UserService.Register
func (s *UserServiceImpl) Register(
	ctx context.Context,
	username, email, password string,
) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, domain.NewValidationError("password", "must be at most 72 bytes", err)
		}
		log.Error("failed to hash password", "error", err)
		return nil, NewServiceError("register", "failed to hash password", err)
	}

	user, err := domain.NewUser(username, email, hash)
	if err != nil {
		log.Debug("registration rejected by validation", "error", err)
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("attempted to register an existing user", "error", err)
			return nil, fmt.Errorf("%w: %w", ErrUserExists, err)
		}
		log.Error("failed to save user", "error", err)
		return nil, NewServiceError("register", "failed to save user", err)
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		log.Error("failed to issue token after registration", "error", err, "user_id", user.ID)
		return nil, NewServiceError("register", "failed to issue token", err)
	}

	log.Info("user registered", "user_id", user.ID)
	return &AuthResult{User: user, Token: token}, nil
}

// Login implements UserService.Login
func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if domain.NormalizeEmail(email) == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login for unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user for login", "error", err)
		return nil, NewServiceError("login", "failed to look up user", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login with wrong password", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		log.Error("failed to issue token after login", "error", err, "user_id", user.ID)
		return nil, NewServiceError("login", "failed to issue token", err)
	}

	log.Debug("user logged in", "user_id", user.ID)
	return &AuthResult{User: user, Token: token}, nil
}

// Profile implements UserService.Profile
func (s *UserServiceImpl) Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("profile requested for missing user", "user_id", userID)
			return nil, err
		}
		log.Error("failed to retrieve user", "error", err, "user_id", userID)
		return nil, NewServiceError("profile", "failed to retrieve user", err)
	}

	return user, nil
}
