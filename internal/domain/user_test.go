package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	const hash = "$2a$10$abcdefghijklmnopqrstuv"

	t.Run("normalizes username and email", func(t *testing.T) {
		user, err := NewUser("  reader  ", "  Reader@Example.COM ", hash)

		require.NoError(t, err)
		assert.Equal(t, "reader", user.Username)
		assert.Equal(t, "reader@example.com", user.Email)
		assert.Equal(t, hash, user.HashedPassword)
	})

	tests := []struct {
		name     string
		username string
		email    string
		hash     string
		wantErr  error
	}{
		{"empty username", "   ", "a@example.com", hash, ErrEmptyUsername},
		{"short username", "ab", "a@example.com", hash, ErrInvalidUsername},
		{"long username", strings.Repeat("x", 51), "a@example.com", hash, ErrInvalidUsername},
		{"empty email", "reader", "", hash, ErrEmptyEmail},
		{"invalid email", "reader", "not-an-email", hash, ErrInvalidEmail},
		{"missing hash", "reader", "a@example.com", "", ErrEmptyHashedPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.username, tt.email, tt.hash)

			assert.Nil(t, user)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)

			var vErr *ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "is required", ErrEmptyTitle)
	assert.Equal(t, "title is required", err.Error())

	bare := NewValidationError("", "something is off", nil)
	assert.Equal(t, "something is off", bare.Error())
	assert.ErrorIs(t, bare, ErrValidation)
}
