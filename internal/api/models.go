package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/books-api/internal/domain"
)

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
// Missing fields are reported as bad credentials, so nothing is validated here.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse defines the successful response for registration and login.
type AuthResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Token    string    `json:"token"`
}

// ProfileResponse describes the authenticated user.
type ProfileResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// CreateBookRequest defines the payload for adding a book. Pointers
// distinguish a missing field from a zero value.
type CreateBookRequest struct {
	Title         *string `json:"title"         validate:"required"`
	Author        *string `json:"author"        validate:"required"`
	PublishedDate *string `json:"publishedDate" validate:"required"`
	NumberOfPages *int    `json:"numberOfPages" validate:"required"`
}

// UpdateBookRequest defines the payload for a partial book update.
// Absent fields keep their stored values.
type UpdateBookRequest struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	PublishedDate *string `json:"publishedDate"`
	NumberOfPages *int    `json:"numberOfPages"`
}

// toPatch converts the request into a domain patch, parsing the date if present.
func (req UpdateBookRequest) toPatch() (domain.BookPatch, error) {
	patch := domain.BookPatch{
		Title:         req.Title,
		Author:        req.Author,
		NumberOfPages: req.NumberOfPages,
	}
	if req.PublishedDate != nil {
		date, err := domain.ParseDate(*req.PublishedDate)
		if err != nil {
			return domain.BookPatch{}, err
		}
		patch.PublishedDate = &date
	}
	return patch, nil
}

// BookResponse is the JSON form of a book.
type BookResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	PublishedDate string    `json:"publishedDate"`
	NumberOfPages int       `json:"numberOfPages"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func bookToResponse(book *domain.Book) BookResponse {
	return BookResponse{
		ID:            book.ID,
		Title:         book.Title,
		Author:        book.Author,
		PublishedDate: book.PublishedDate.Format(domain.DateLayout),
		NumberOfPages: book.NumberOfPages,
		CreatedAt:     book.CreatedAt,
		UpdatedAt:     book.UpdatedAt,
	}
}

func booksToResponse(books []*domain.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, bookToResponse(b))
	}
	return out
}

func userToAuthResponse(user *domain.User, token string) AuthResponse {
	return AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}
}
