// Package mocks provides centralized mock implementations for testing.
//
// Two styles are available. The Mock* types are hand-written fakes with
// function fields that override an in-memory default, which suits handler
// and end-to-end tests that need a working store. The TestifyMock* types
// are github.com/stretchr/testify/mock mocks for tests that assert on the
// exact calls a component makes.
//
//	users := mocks.NewMockUserStore()
//	users.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
//	    return nil, errors.New("db down")
//	}
package mocks
