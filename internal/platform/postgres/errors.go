package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/books-api/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"

	// numericOutOfRangeCode is the PostgreSQL error code for values outside a column's type range
	numericOutOfRangeCode = "22003"
)

// Unique constraint names declared in the migrations.
const (
	usersEmailKey    = "users_email_key"
	usersUsernameKey = "users_username_key"
)

// uniqueConstraintErrors maps a unique constraint to the store error reported
// when it is violated.
var uniqueConstraintErrors = map[string]error{
	usersEmailKey:    store.ErrEmailExists,
	usersUsernameKey: store.ErrUsernameExists,
}

// MapError maps a database error to an appropriate store error.
// It wraps the original error to preserve context for logging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case IsUniqueViolation(err):
		return MapUniqueViolation(err)
	case IsCheckConstraintViolation(err):
		return fmt.Errorf(
			"%w: check constraint violation (%s): %v",
			store.ErrInvalidEntity,
			pgErr.ConstraintName,
			err,
		)
	case IsNotNullViolation(err):
		return fmt.Errorf(
			"%w: not null violation (%s): %v",
			store.ErrInvalidEntity,
			pgErr.ColumnName,
			err,
		)
	case IsNumericOutOfRange(err):
		return fmt.Errorf("%w: value out of range (%s): %v",
			store.ErrInvalidEntity, pgErr.ColumnName, err)
	}

	return err
}

// MapUniqueViolation maps a unique violation to the store error registered
// for its constraint, falling back to store.ErrDuplicate.
// Errors that are not unique violations are returned unchanged.
func MapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return err
	}

	if specific, ok := uniqueConstraintErrors[pgErr.ConstraintName]; ok {
		return fmt.Errorf("%w: %v", specific, err)
	}

	return fmt.Errorf("%w: duplicate value for constraint %s: %v",
		store.ErrDuplicate, pgErr.ConstraintName, err)
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsCheckConstraintViolation checks if the given error is a PostgreSQL check constraint violation.
func IsCheckConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == checkViolationCode
}

// IsNotNullViolation checks if the given error is a PostgreSQL not null constraint violation.
func IsNotNullViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == notNullViolationCode
}

// IsNumericOutOfRange checks if the given error is a PostgreSQL numeric out of range error.
func IsNumericOutOfRange(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == numericOutOfRangeCode
}

// CheckRowsAffected examines the number of rows affected by a database operation.
// If no rows were affected it returns notFound, which should be one of the
// store's not-found errors.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if notFound == nil {
			return store.ErrNotFound
		}
		return notFound
	}

	return nil
}
