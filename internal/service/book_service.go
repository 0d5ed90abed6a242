package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/books-api/internal/domain"
	"github.com/phrazzld/books-api/internal/platform/logger"
	"github.com/phrazzld/books-api/internal/store"
)

// BookService provides the catalog operations.
type BookService interface {
	// CreateBook validates and stores a new book.
	CreateBook(
		ctx context.Context,
		title, author string,
		publishedDate time.Time,
		numberOfPages int,
	) (*domain.Book, error)

	// ListBooks returns every book in insertion order; never nil.
	ListBooks(ctx context.Context) ([]*domain.Book, error)

	// GetBook returns one book or store.ErrBookNotFound.
	GetBook(ctx context.Context, id uuid.UUID) (*domain.Book, error)

	// UpdateBook merges patch into the stored book. Fields absent from the
	// patch keep their stored values.
	UpdateBook(ctx context.Context, id uuid.UUID, patch domain.BookPatch) (*domain.Book, error)

	// DeleteBook removes a book or returns store.ErrBookNotFound.
	DeleteBook(ctx context.Context, id uuid.UUID) error
}

// BookServiceImpl implements the BookService interface
type BookServiceImpl struct {
	bookStore store.BookStore
	logger    *slog.Logger
}

var _ BookService = (*BookServiceImpl)(nil)

// NewBookService creates a new BookService
func NewBookService(bookStore store.BookStore, logger *slog.Logger) *BookServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookServiceImpl{
		bookStore: bookStore,
		logger:    logger.With("component", "book_service"),
	}
}

// CreateBook implements BookService.CreateBook
func (s *BookServiceImpl) CreateBook(
	ctx context.Context,
	title, author string,
	publishedDate time.Time,
	numberOfPages int,
) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	book, err := domain.NewBook(title, author, publishedDate, numberOfPages)
	if err != nil {
		log.Debug("book rejected by validation", "error", err)
		return nil, err
	}

	if err := s.bookStore.Create(ctx, book); err != nil {
		log.Error("failed to save book", "error", err)
		return nil, wrapStoreError("create_book", "failed to save book", err)
	}

	log.Info("book created", "book_id", book.ID)
	return book, nil
}

// ListBooks implements BookService.ListBooks
func (s *BookServiceImpl) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	books, err := s.bookStore.List(ctx)
	if err != nil {
		log.Error("failed to list books", "error", err)
		return nil, NewServiceError("list_books", "failed to list books", err)
	}
	if books == nil {
		books = []*domain.Book{}
	}
	return books, nil
}

// GetBook implements BookService.GetBook
func (s *BookServiceImpl) GetBook(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	book, err := s.bookStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			log.Debug("book not found", "book_id", id)
			return nil, err
		}
		log.Error("failed to get book", "error", err, "book_id", id)
		return nil, NewServiceError("get_book", "failed to get book", err)
	}
	return book, nil
}

// UpdateBook implements BookService.UpdateBook.
// Concurrent updates are last-writer-wins.
func (s *BookServiceImpl) UpdateBook(
	ctx context.Context,
	id uuid.UUID,
	patch domain.BookPatch,
) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	current, err := s.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	merged, err := patch.Apply(current)
	if err != nil {
		log.Debug("book update rejected by validation", "error", err, "book_id", id)
		return nil, err
	}

	if err := s.bookStore.Update(ctx, merged); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			log.Debug("book deleted before update", "book_id", id)
			return nil, err
		}
		log.Error("failed to update book", "error", err, "book_id", id)
		return nil, wrapStoreError("update_book", "failed to update book", err)
	}

	log.Info("book updated", "book_id", id)
	return merged, nil
}

// DeleteBook implements BookService.DeleteBook
func (s *BookServiceImpl) DeleteBook(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.bookStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			log.Debug("book not found for delete", "book_id", id)
			return err
		}
		log.Error("failed to delete book", "error", err, "book_id", id)
		return NewServiceError("delete_book", "failed to delete book", err)
	}

	log.Info("book deleted", "book_id", id)
	return nil
}

// wrapStoreError passes validation errors through untouched and wraps
// everything else. Check constraint rejections from the store count as
// invalid input.
func wrapStoreError(operation, message string, err error) error {
	if errors.Is(err, domain.ErrValidation) {
		return err
	}
	if errors.Is(err, store.ErrInvalidEntity) {
		return domain.NewValidationError("", "book violates a storage constraint", err)
	}
	return NewServiceError(operation, message, err)
}
