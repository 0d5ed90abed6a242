package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/books-api/internal/api/shared"
	"github.com/phrazzld/books-api/internal/domain"
	"github.com/phrazzld/books-api/internal/service"
	"github.com/phrazzld/books-api/internal/service/auth"
	"github.com/phrazzld/books-api/internal/store"
)

// Client-facing messages.
const (
	MsgInvalidRequest     = "Invalid request format"
	MsgInvalidUserData    = "Invalid user data"
	MsgInvalidBookData    = "Invalid book data"
	MsgUserExists         = "User already exists"
	MsgInvalidCredentials = "Invalid email or password"
	MsgTokenFailed        = "Not authorized, token failed"
	MsgUserNotFound       = "User not found"
	MsgBookNotFound       = "Book not found"
	MsgBookRemoved        = "Book removed"
	MsgServerError        = "Server Error"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var verrs validator.ValidationErrors

	switch {
	case err == nil:
		return http.StatusOK

	// A malformed ID names nothing that exists
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound

	// Invalid input
	case errors.Is(err, domain.ErrValidation),
		errors.As(err, &verrs):
		return http.StatusBadRequest

	// Registration conflicts are reported as plain bad requests
	case errors.Is(err, service.ErrUserExists):
		return http.StatusBadRequest

	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrBookNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a fixed, user-friendly message for err.
// Raw error text is never returned.
func GetSafeErrorMessage(err error) string {
	var verrs validator.ValidationErrors

	switch {
	case err == nil:
		return MsgServerError
	case errors.Is(err, domain.ErrInvalidID):
		return MsgBookNotFound
	case errors.Is(err, domain.ErrValidation), errors.As(err, &verrs):
		return "Validation error"
	case errors.Is(err, service.ErrUserExists):
		return MsgUserExists
	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return MsgTokenFailed
	case errors.Is(err, store.ErrUserNotFound):
		return MsgUserNotFound
	case errors.Is(err, store.ErrBookNotFound):
		return MsgBookNotFound
	default:
		return MsgServerError
	}
}

// SanitizeValidationError turns validator and domain validation failures into
// a short message naming the offending fields. Anything else yields a
// generic message.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s %s", fe.Field(), getValidationTagMessage(fe)))
		}
		return strings.Join(parts, "; ")
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "has invalid format"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}

// HandleAPIError writes the error response for err. Validation failures are
// reported as "<prefix>: <details>" when prefix is set; every other error
// uses its safe message. The detailed error is logged, redacted.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, prefix string) {
	status := MapErrorToStatusCode(err)

	message := GetSafeErrorMessage(err)
	if status == http.StatusBadRequest && prefix != "" && !errors.Is(err, service.ErrUserExists) {
		message = prefix + ": " + SanitizeValidationError(err)
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
