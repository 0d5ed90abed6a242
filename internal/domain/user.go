package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Username length bounds, counted in characters.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
)

// User validation errors
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrInvalidUsername     = errors.New("invalid username length")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

var emailValidator = validator.New()

// User represents a registered user of the catalog.
// Username and email are each unique across all users.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User from a username, email and an already derived password hash.
// Username is trimmed and email is normalized with NormalizeEmail. The ID and
// timestamps are left for the store to assign.
func NewUser(username, email, hashedPassword string) (*User, error) {
	user := &User{
		Username:       strings.TrimSpace(username),
		Email:          NormalizeEmail(email),
		HashedPassword: hashedPassword,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address so that
// uniqueness and login lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Username == "" {
		return NewValidationError("username", "is required", ErrEmptyUsername)
	}

	if n := utf8.RuneCountInString(u.Username); n < MinUsernameLength || n > MaxUsernameLength {
		return NewValidationError("username", "must be between 3 and 50 characters", ErrInvalidUsername)
	}

	if u.Email == "" {
		return NewValidationError("email", "is required", ErrEmptyEmail)
	}

	if err := emailValidator.Var(u.Email, "email"); err != nil {
		return NewValidationError("email", "has invalid format", ErrInvalidEmail)
	}

	if u.HashedPassword == "" {
		return NewValidationError("password", "hash is required", ErrEmptyHashedPassword)
	}

	return nil
}
