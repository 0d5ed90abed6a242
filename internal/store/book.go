package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/books-api/internal/domain"
)

// BookStore defines the interface for the catalog store.
type BookStore interface {
	// Create saves a new book. The store assigns ID, CreatedAt and UpdatedAt
	// and writes them back into book.
	Create(ctx context.Context, book *domain.Book) error

	// List returns every book in insertion order. An empty catalog yields
	// an empty, non-nil slice.
	List(ctx context.Context) ([]*domain.Book, error)

	// GetByID retrieves a book by its ID.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)

	// Update overwrites the stored fields of book.ID with the values in book
	// and refreshes UpdatedAt, writing the new timestamp back into book.
	// Returns ErrBookNotFound if the book does not exist.
	Update(ctx context.Context, book *domain.Book) error

	// Delete removes a book by its ID.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
