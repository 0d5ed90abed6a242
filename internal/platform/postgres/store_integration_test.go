//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/books-api/internal/domain"
	"github.com/phrazzld/books-api/internal/platform/postgres"
	"github.com/phrazzld/books-api/internal/store"
	"github.com/phrazzld/books-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUser(t *testing.T, username, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, email, "$2a$10$abcdefghijklmnopqrstuuJ9rY0v6h0lq7iY3m8tJz0eYQ0m5xR4W")
	require.NoError(t, err)
	return user
}

func mustBook(t *testing.T, title string) *domain.Book {
	t.Helper()
	book, err := domain.NewBook(title, "Author", time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC), 100)
	require.NoError(t, err)
	return book
}

func TestPostgresUserStore(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	t.Run("create_assigns_id_and_timestamps", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			s := postgres.NewPostgresUserStore(tx, nil)
			user := mustUser(t, "alice", "Alice@Example.com")

			require.NoError(t, s.Create(context.Background(), user))
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.False(t, user.CreatedAt.IsZero())

			byEmail, err := s.GetByEmail(context.Background(), "  ALICE@example.com ")
			require.NoError(t, err)
			assert.Equal(t, user.ID, byEmail.ID)
			assert.Equal(t, "alice@example.com", byEmail.Email)

			byID, err := s.GetByID(context.Background(), user.ID)
			require.NoError(t, err)
			assert.Equal(t, "alice", byID.Username)
			assert.Equal(t, user.HashedPassword, byID.HashedPassword)
		})
	})

	t.Run("duplicate_email", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			s := postgres.NewPostgresUserStore(tx, nil)
			require.NoError(t, s.Create(context.Background(), mustUser(t, "bob", "bob@example.com")))

			err := s.Create(context.Background(), mustUser(t, "bobby", "bob@example.com"))
			assert.ErrorIs(t, err, store.ErrEmailExists)
		})
	})

	t.Run("duplicate_username", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			s := postgres.NewPostgresUserStore(tx, nil)
			require.NoError(t, s.Create(context.Background(), mustUser(t, "carol", "carol@example.com")))

			err := s.Create(context.Background(), mustUser(t, "carol", "other@example.com"))
			assert.ErrorIs(t, err, store.ErrUsernameExists)
		})
	})

	t.Run("not_found", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			s := postgres.NewPostgresUserStore(tx, nil)

			_, err := s.GetByID(context.Background(), uuid.New())
			assert.ErrorIs(t, err, store.ErrUserNotFound)

			_, err = s.GetByEmail(context.Background(), "nobody@example.com")
			assert.ErrorIs(t, err, store.ErrUserNotFound)
		})
	})
}

func TestPostgresBookStore(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	t.Run("crud_round_trip", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			ctx := context.Background()
			s := postgres.NewPostgresBookStore(tx, nil)

			book := mustBook(t, "Dune")
			require.NoError(t, s.Create(ctx, book))
			require.NotEqual(t, uuid.Nil, book.ID)

			got, err := s.GetByID(ctx, book.ID)
			require.NoError(t, err)
			assert.Equal(t, "Dune", got.Title)
			assert.True(t, got.PublishedDate.Equal(book.PublishedDate))
			assert.Equal(t, 100, got.NumberOfPages)

			got.Title = "Dune Messiah"
			got.NumberOfPages = 256
			require.NoError(t, s.Update(ctx, got))
			assert.False(t, got.UpdatedAt.Before(got.CreatedAt))

			reread, err := s.GetByID(ctx, book.ID)
			require.NoError(t, err)
			assert.Equal(t, "Dune Messiah", reread.Title)
			assert.Equal(t, 256, reread.NumberOfPages)

			require.NoError(t, s.Delete(ctx, book.ID))
			_, err = s.GetByID(ctx, book.ID)
			assert.ErrorIs(t, err, store.ErrBookNotFound)
			assert.ErrorIs(t, s.Delete(ctx, book.ID), store.ErrBookNotFound)
		})
	})

	t.Run("list_in_insertion_order", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			ctx := context.Background()
			s := postgres.NewPostgresBookStore(tx, nil)

			_, err := tx.ExecContext(ctx, "DELETE FROM books")
			require.NoError(t, err)

			empty, err := s.List(ctx)
			require.NoError(t, err)
			assert.NotNil(t, empty)
			assert.Empty(t, empty)

			for _, title := range []string{"First", "Second"} {
				require.NoError(t, s.Create(ctx, mustBook(t, title)))
			}

			books, err := s.List(ctx)
			require.NoError(t, err)
			require.Len(t, books, 2)
			assert.Equal(t, "First", books[0].Title)
			assert.Equal(t, "Second", books[1].Title)
		})
	})

	t.Run("update_missing_book", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			s := postgres.NewPostgresBookStore(tx, nil)
			book := mustBook(t, "Ghost")
			book.ID = uuid.New()

			assert.ErrorIs(t, s.Update(context.Background(), book), store.ErrBookNotFound)
		})
	})

	t.Run("check_constraint_rejects_bad_rows", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			_, err := tx.ExecContext(context.Background(),
				`INSERT INTO books (title, author, published_date, number_of_pages) VALUES ('T', 'A', '2020-01-01', 0)`)
			require.Error(t, err)
			assert.True(t, postgres.IsCheckConstraintViolation(err))
			assert.ErrorIs(t, postgres.MapError(err), store.ErrInvalidEntity)
		})
	})
}
