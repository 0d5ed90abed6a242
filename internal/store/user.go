package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/books-api/internal/domain"
)

// UserStore defines the interface for the credential store.
// Users are created on registration and only read afterwards.
type UserStore interface {
	// Create saves a new user. The store assigns ID, CreatedAt and UpdatedAt
	// and writes them back into user.
	// Returns ErrEmailExists or ErrUsernameExists if either is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their (normalized) email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
