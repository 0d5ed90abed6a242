package domain

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format of a book's published date.
const DateLayout = "2006-01-02"

// MaxNumberOfPages is the largest page count the store's integer column holds.
const MaxNumberOfPages = math.MaxInt32

// Book validation errors
var (
	ErrEmptyTitle           = errors.New("title cannot be empty")
	ErrEmptyAuthor          = errors.New("author cannot be empty")
	ErrMissingPublishedDate = errors.New("published date is required")
	ErrInvalidPublishedDate = errors.New("invalid published date")
	ErrInvalidPageCount     = errors.New("number of pages must be greater than 0")
)

// Book is a catalog record. It has no owner.
type Book struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	PublishedDate time.Time `json:"published_date"`
	NumberOfPages int       `json:"number_of_pages"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewBook creates a Book with trimmed title and author and a normalized
// published date. The ID and timestamps are left for the store to assign.
func NewBook(title, author string, publishedDate time.Time, numberOfPages int) (*Book, error) {
	book := &Book{
		Title:         strings.TrimSpace(title),
		Author:        strings.TrimSpace(author),
		PublishedDate: NormalizeDate(publishedDate),
		NumberOfPages: numberOfPages,
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks the book's field invariants.
func (b *Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return NewValidationError("title", "is required", ErrEmptyTitle)
	}

	if strings.TrimSpace(b.Author) == "" {
		return NewValidationError("author", "is required", ErrEmptyAuthor)
	}

	if b.PublishedDate.IsZero() {
		return NewValidationError("publishedDate", "is required", ErrMissingPublishedDate)
	}

	if b.NumberOfPages < 1 {
		return NewValidationError("numberOfPages", "must be greater than 0", ErrInvalidPageCount)
	}

	if b.NumberOfPages > MaxNumberOfPages {
		return NewValidationError("numberOfPages", "must be at most 2147483647", ErrInvalidPageCount)
	}

	return nil
}

// BookPatch holds the fields supplied in a partial update. Nil fields are
// left untouched when the patch is applied.
type BookPatch struct {
	Title         *string
	Author        *string
	PublishedDate *time.Time
	NumberOfPages *int
}

// Apply returns a copy of book with the supplied fields overwritten.
// The result is validated; book itself is never modified.
func (p BookPatch) Apply(book *Book) (*Book, error) {
	merged := *book

	if p.Title != nil {
		merged.Title = strings.TrimSpace(*p.Title)
	}
	if p.Author != nil {
		merged.Author = strings.TrimSpace(*p.Author)
	}
	if p.PublishedDate != nil {
		merged.PublishedDate = NormalizeDate(*p.PublishedDate)
	}
	if p.NumberOfPages != nil {
		merged.NumberOfPages = *p.NumberOfPages
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}

	return &merged, nil
}

// ParseDate parses a published date given either as a calendar date
// (2006-01-02) or as an RFC 3339 timestamp, and normalizes it.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, NewValidationError("publishedDate", "is required", ErrMissingPublishedDate)
	}

	if t, err := time.Parse(DateLayout, value); err == nil {
		return NormalizeDate(t), nil
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return NormalizeDate(t), nil
	}

	return time.Time{}, NewValidationError("publishedDate", "must be a date (YYYY-MM-DD)", ErrInvalidPublishedDate)
}

// NormalizeDate strips the time of day, keeping the UTC calendar date.
// The zero time stays zero.
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
