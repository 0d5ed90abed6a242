package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/books-api/internal/domain"
	"github.com/phrazzld/books-api/internal/platform/logger"
	"github.com/phrazzld/books-api/internal/store"
)

// PostgresBookStore implements the store.BookStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookStore creates a new PostgreSQL implementation of the BookStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresBookStore(db store.DBTX, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBookStore{
		db:     db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Ensure PostgresBookStore implements store.BookStore interface
var _ store.BookStore = (*PostgresBookStore)(nil)

const selectBookColumns = `id, title, author, published_date, number_of_pages, created_at, updated_at`

// Create implements store.BookStore.Create.
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO books (title, author, published_date, number_of_pages)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		book.Title,
		book.Author,
		book.PublishedDate,
		book.NumberOfPages,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		log.Error("failed to create book", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("book created", slog.String("book_id", book.ID.String()))
	return nil
}

// List implements store.BookStore.List.
// Books come back in insertion order.
func (s *PostgresBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + selectBookColumns + ` FROM books ORDER BY created_at, id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list books", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	books := make([]*domain.Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			log.Error("failed to scan book row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating book rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("listed books", slog.Int("count", len(books)))
	return books, nil
}

// GetByID implements store.BookStore.GetByID.
// Returns store.ErrBookNotFound if the book does not exist.
func (s *PostgresBookStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + selectBookColumns + ` FROM books WHERE id = $1`
	book, err := scanBook(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			log.Debug("book not found", slog.String("book_id", id.String()))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to get book",
			slog.String("book_id", id.String()),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return book, nil
}

// Update implements store.BookStore.Update.
// UpdatedAt is refreshed by the database and scanned back into book.
func (s *PostgresBookStore) Update(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during update",
			slog.String("book_id", book.ID.String()),
			slog.String("error", err.Error()))
		return err
	}

	query := `
		UPDATE books
		SET title = $2, author = $3, published_date = $4, number_of_pages = $5,
			updated_at = GREATEST(clock_timestamp(), created_at)
		WHERE id = $1
		RETURNING updated_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		book.ID,
		book.Title,
		book.Author,
		book.PublishedDate,
		book.NumberOfPages,
	).Scan(&book.UpdatedAt)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			log.Debug("book not found for update", slog.String("book_id", book.ID.String()))
			return store.ErrBookNotFound
		}
		log.Error("failed to update book",
			slog.String("book_id", book.ID.String()),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("book updated", slog.String("book_id", book.ID.String()))
	return nil
}

// Delete implements store.BookStore.Delete.
// Returns store.ErrBookNotFound if the book does not exist.
func (s *PostgresBookStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete book",
			slog.String("book_id", id.String()),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrBookNotFound); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			log.Debug("book not found for delete", slog.String("book_id", id.String()))
		}
		return err
	}

	log.Info("book deleted", slog.String("book_id", id.String()))
	return nil
}

func scanBook(row rowScanner) (*domain.Book, error) {
	if row == nil {
		return nil, errors.New("nil row")
	}

	var book domain.Book
	err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.PublishedDate,
		&book.NumberOfPages,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	book.PublishedDate = domain.NormalizeDate(book.PublishedDate)
	return &book, nil
}
