package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/books-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockResult implements sql.Result for testing
type mockResult struct {
	rowsAffected int64
	err          error
}

func (m mockResult) LastInsertId() (int64, error) {
	return 0, nil
}

func (m mockResult) RowsAffected() (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.rowsAffected, nil
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedErr error
		expectedMsg string
	}{
		{
			name: "nil_error",
		},
		{
			name:        "sql_no_rows",
			err:         sql.ErrNoRows,
			expectedErr: store.ErrNotFound,
		},
		{
			name:        "email_unique_violation",
			err:         &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: usersEmailKey},
			expectedErr: store.ErrEmailExists,
		},
		{
			name:        "username_unique_violation",
			err:         &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: usersUsernameKey},
			expectedErr: store.ErrUsernameExists,
		},
		{
			name:        "unknown_unique_violation",
			err:         &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "other_key"},
			expectedErr: store.ErrDuplicate,
			expectedMsg: "other_key",
		},
		{
			name:        "check_constraint_violation",
			err:         &pgconn.PgError{Code: checkViolationCode, ConstraintName: "books_number_of_pages_positive"},
			expectedErr: store.ErrInvalidEntity,
			expectedMsg: "books_number_of_pages_positive",
		},
		{
			name:        "not_null_violation",
			err:         &pgconn.PgError{Code: notNullViolationCode, ColumnName: "title"},
			expectedErr: store.ErrInvalidEntity,
			expectedMsg: "title",
		},
		{
			name:        "numeric_out_of_range",
			err:         &pgconn.PgError{Code: numericOutOfRangeCode, ColumnName: "number_of_pages"},
			expectedErr: store.ErrInvalidEntity,
			expectedMsg: "number_of_pages",
		},
		{
			name:        "wrapped_pg_error",
			err:         fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: usersEmailKey}),
			expectedErr: store.ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.err == nil {
				assert.NoError(t, got)
				return
			}
			require.Error(t, got)
			assert.ErrorIs(t, got, tt.expectedErr)
			if tt.expectedMsg != "" {
				assert.Contains(t, got.Error(), tt.expectedMsg)
			}
		})
	}

	t.Run("unmapped_error_passes_through", func(t *testing.T) {
		orig := errors.New("connection refused")
		assert.Same(t, orig, MapError(orig))

		serialization := &pgconn.PgError{Code: "40001"}
		assert.Equal(t, error(serialization), MapError(serialization))
	})
}

func TestMapUniqueViolationIgnoresOtherErrors(t *testing.T) {
	orig := &pgconn.PgError{Code: checkViolationCode}
	assert.Equal(t, error(orig), MapUniqueViolation(orig))
}

func TestViolationPredicates(t *testing.T) {
	unique := &pgconn.PgError{Code: uniqueViolationCode}
	check := &pgconn.PgError{Code: checkViolationCode}
	notNull := &pgconn.PgError{Code: notNullViolationCode}
	plain := errors.New("plain")

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", unique)))
	assert.False(t, IsUniqueViolation(check))
	assert.False(t, IsUniqueViolation(plain))

	assert.True(t, IsCheckConstraintViolation(check))
	assert.False(t, IsCheckConstraintViolation(notNull))

	assert.True(t, IsNotNullViolation(notNull))
	assert.False(t, IsNotNullViolation(nil))

	assert.True(t, IsNumericOutOfRange(&pgconn.PgError{Code: numericOutOfRangeCode}))
	assert.False(t, IsNumericOutOfRange(check))
}

func TestCheckRowsAffected(t *testing.T) {
	tests := []struct {
		name        string
		result      sql.Result
		notFound    error
		expectedErr error
		expectedMsg string
	}{
		{
			name:   "one_row",
			result: mockResult{rowsAffected: 1},
		},
		{
			name:        "zero_rows_specific_error",
			result:      mockResult{rowsAffected: 0},
			notFound:    store.ErrBookNotFound,
			expectedErr: store.ErrBookNotFound,
		},
		{
			name:        "zero_rows_generic_error",
			result:      mockResult{rowsAffected: 0},
			expectedErr: store.ErrNotFound,
		},
		{
			name:        "rows_affected_fails",
			result:      mockResult{err: errors.New("driver error")},
			expectedMsg: "failed to get rows affected",
		},
		{
			name:        "nil_result",
			expectedMsg: "nil result",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRowsAffected(tt.result, tt.notFound)
			if tt.expectedErr == nil && tt.expectedMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
			if tt.expectedMsg != "" {
				assert.Contains(t, err.Error(), tt.expectedMsg)
			}
		})
	}
}
