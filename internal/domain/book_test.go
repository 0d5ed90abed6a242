package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewBook(t *testing.T) {
	t.Parallel()

	t.Run("trims text and normalizes date", func(t *testing.T) {
		published := time.Date(1965, 8, 1, 15, 30, 0, 0, time.UTC)

		book, err := NewBook("  Dune ", " Frank Herbert\t", published, 412)

		require.NoError(t, err)
		assert.Equal(t, "Dune", book.Title)
		assert.Equal(t, "Frank Herbert", book.Author)
		assert.Equal(t, date(1965, 8, 1), book.PublishedDate)
		assert.Equal(t, 412, book.NumberOfPages)
		assert.Equal(t, uuid.Nil, book.ID, "ID is assigned by the store")
	})

	tests := []struct {
		name    string
		title   string
		author  string
		date    time.Time
		pages   int
		wantErr error
	}{
		{"blank title", "   ", "Author", date(2000, 1, 1), 10, ErrEmptyTitle},
		{"blank author", "Title", "", date(2000, 1, 1), 10, ErrEmptyAuthor},
		{"missing date", "Title", "Author", time.Time{}, 10, ErrMissingPublishedDate},
		{"zero pages", "Title", "Author", date(2000, 1, 1), 0, ErrInvalidPageCount},
		{"negative pages", "Title", "Author", date(2000, 1, 1), -3, ErrInvalidPageCount},
		{"pages beyond int4", "Title", "Author", date(2000, 1, 1), 3_000_000_000, ErrInvalidPageCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, err := NewBook(tt.title, tt.author, tt.date, tt.pages)

			assert.Nil(t, book)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	t.Run("largest storable page count", func(t *testing.T) {
		book, err := NewBook("Tome", "Anon", date(2000, 1, 1), MaxNumberOfPages)
		require.NoError(t, err)
		assert.Equal(t, MaxNumberOfPages, book.NumberOfPages)
	})

	t.Run("one page is enough", func(t *testing.T) {
		book, err := NewBook("Pamphlet", "Anon", date(1776, 1, 10), 1)
		require.NoError(t, err)
		assert.Equal(t, 1, book.NumberOfPages)
	})
}

func TestBookPatchApply(t *testing.T) {
	t.Parallel()

	original := &Book{
		ID:            uuid.New(),
		Title:         "Old Title",
		Author:        "Author",
		PublishedDate: date(1999, 9, 9),
		NumberOfPages: 300,
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	t.Run("title only preserves every other field", func(t *testing.T) {
		merged, err := BookPatch{Title: ptr("New Title")}.Apply(original)

		require.NoError(t, err)
		expected := *original
		expected.Title = "New Title"
		assert.Equal(t, &expected, merged)
		assert.Equal(t, "Old Title", original.Title, "original must not be modified")
	})

	t.Run("all fields", func(t *testing.T) {
		merged, err := BookPatch{
			Title:         ptr(" T "),
			Author:        ptr(" A "),
			PublishedDate: ptr(time.Date(2001, 2, 3, 23, 59, 0, 0, time.UTC)),
			NumberOfPages: ptr(5),
		}.Apply(original)

		require.NoError(t, err)
		assert.Equal(t, "T", merged.Title)
		assert.Equal(t, "A", merged.Author)
		assert.Equal(t, date(2001, 2, 3), merged.PublishedDate)
		assert.Equal(t, 5, merged.NumberOfPages)
		assert.Equal(t, original.ID, merged.ID)
	})

	t.Run("invalid merged result", func(t *testing.T) {
		merged, err := BookPatch{NumberOfPages: ptr(0)}.Apply(original)
		assert.Nil(t, merged)
		assert.ErrorIs(t, err, ErrInvalidPageCount)

		merged, err = BookPatch{Author: ptr("  ")}.Apply(original)
		assert.Nil(t, merged)
		assert.ErrorIs(t, err, ErrEmptyAuthor)
	})

	t.Run("empty patch", func(t *testing.T) {
		merged, err := BookPatch{}.Apply(original)
		require.NoError(t, err)
		assert.Equal(t, original, merged)
	})
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    time.Time
		wantErr error
	}{
		{"1965-08-01", date(1965, 8, 1), nil},
		{" 2020-02-29 ", date(2020, 2, 29), nil},
		{"2020-02-29T10:00:00Z", date(2020, 2, 29), nil},
		{"2020-02-29T22:00:00-05:00", date(2020, 3, 1), nil},
		{"2020-02-29T10:00:00.123Z", date(2020, 2, 29), nil},
		{"", time.Time{}, ErrMissingPublishedDate},
		{"yesterday", time.Time{}, ErrInvalidPublishedDate},
		{"2021-02-30", time.Time{}, ErrInvalidPublishedDate},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "input %q", tt.input)
			assert.ErrorIs(t, err, ErrValidation, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
