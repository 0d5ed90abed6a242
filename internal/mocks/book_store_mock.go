package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/books-api/internal/domain"
	"github.com/phrazzld/books-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockBookStore is a mock of store.BookStore interface for use with testify/mock
type TestifyMockBookStore struct {
	mock.Mock
}

var _ store.BookStore = (*TestifyMockBookStore)(nil)

// Create is a mock implementation of store.BookStore.Create
func (m *TestifyMockBookStore) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

// List is a mock implementation of store.BookStore.List
func (m *TestifyMockBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	args := m.Called(ctx)
	if books, ok := args.Get(0).([]*domain.Book); ok {
		return books, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.BookStore.GetByID
func (m *TestifyMockBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if book, ok := args.Get(0).(*domain.Book); ok {
		return book, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.BookStore.Update
func (m *TestifyMockBookStore) Update(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

// Delete is a mock implementation of store.BookStore.Delete
func (m *TestifyMockBookStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
