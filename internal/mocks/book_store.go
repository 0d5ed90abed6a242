package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/books-api/internal/domain"
	"github.com/phrazzld/books-api/internal/store"
)

// MockBookStore implements store.BookStore for testing.
// The default implementation keeps books in memory in insertion order.
type MockBookStore struct {
	CreateFn  func(ctx context.Context, book *domain.Book) error
	ListFn    func(ctx context.Context) ([]*domain.Book, error)
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	UpdateFn  func(ctx context.Context, book *domain.Book) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// TimeFn overrides the clock used for CreatedAt/UpdatedAt.
	TimeFn func() time.Time

	books []*domain.Book
	mu    sync.Mutex
}

var _ store.BookStore = (*MockBookStore)(nil)

// NewMockBookStore creates an empty in-memory book store.
func NewMockBookStore() *MockBookStore {
	return &MockBookStore{}
}

func (m *MockBookStore) now() time.Time {
	if m.TimeFn != nil {
		return m.TimeFn()
	}
	return time.Now().UTC()
}

// Create implements the BookStore interface
func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, book)
	}
	if err := book.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	book.ID = uuid.New()
	book.CreatedAt = now
	book.UpdatedAt = now

	stored := *book
	m.books = append(m.books, &stored)
	return nil
}

// List implements the BookStore interface
func (m *MockBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	books := make([]*domain.Book, 0, len(m.books))
	for _, b := range m.books {
		book := *b
		books = append(books, &book)
	}
	return books, nil
}

// GetByID implements the BookStore interface
func (m *MockBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.indexOf(id); i >= 0 {
		book := *m.books[i]
		return &book, nil
	}
	return nil, store.ErrBookNotFound
}

// Update implements the BookStore interface
func (m *MockBookStore) Update(ctx context.Context, book *domain.Book) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, book)
	}
	if err := book.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(book.ID)
	if i < 0 {
		return store.ErrBookNotFound
	}

	existing := m.books[i]
	book.CreatedAt = existing.CreatedAt
	book.UpdatedAt = m.now()
	if book.UpdatedAt.Before(book.CreatedAt) {
		book.UpdatedAt = book.CreatedAt
	}

	stored := *book
	m.books[i] = &stored
	return nil
}

// Delete implements the BookStore interface
func (m *MockBookStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return store.ErrBookNotFound
	}
	m.books = append(m.books[:i], m.books[i+1:]...)
	return nil
}

// Len reports how many books are stored.
func (m *MockBookStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.books)
}

func (m *MockBookStore) indexOf(id uuid.UUID) int {
	for i, b := range m.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}
