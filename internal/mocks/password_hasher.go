package mocks

import (
	"errors"
	"strings"

	"github.com/phrazzld/books-api/internal/service/auth"
)

// ErrPasswordMismatch is returned by MockPasswordHasher.Compare on a mismatch.
var ErrPasswordMismatch = errors.New("mock: password mismatch")

// mockHashPrefix marks hashes produced by MockPasswordHasher.
const mockHashPrefix = "hashed:"

// MockPasswordHasher implements auth.PasswordHasher for testing.
// By default Hash prefixes the password and Compare checks that prefix,
// which keeps tests fast and the stored value distinct from the plaintext.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	// HashCallCount and CompareCallCount track calls for verification
	HashCallCount    int
	CompareCallCount int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCallCount++
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return mockHashPrefix + password, nil
}

// Compare implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if !strings.HasPrefix(hashedPassword, mockHashPrefix) ||
		strings.TrimPrefix(hashedPassword, mockHashPrefix) != password {
		return ErrPasswordMismatch
	}
	return nil
}
