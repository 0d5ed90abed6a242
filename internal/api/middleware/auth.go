package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/books-api/internal/api/shared"
	"github.com/phrazzld/books-api/internal/domain"
	"github.com/phrazzld/books-api/internal/platform/logger"
	"github.com/phrazzld/books-api/internal/service/auth"
	"github.com/phrazzld/books-api/internal/store"
)

// Client-facing messages of the auth gate.
const (
	MsgNoToken       = "Not authorized, no token"
	MsgInvalidFormat = "Not authorized, invalid authorization format"
	MsgTokenFailed   = "Not authorized, token failed"
	MsgUserNotFound  = "Not authorized, user not found"
	MsgAuthError     = "Authentication error"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates the bearer token, resolves the user it names and
// attaches that user to the request context.
// Exactly one store lookup is made per request.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgNoToken, auth.ErrMissingToken)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidFormat)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) || errors.Is(err, auth.ErrInvalidToken) {
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgTokenFailed, err)
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgAuthError, err)
			return
		}

		user, err := m.userStore.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgUserNotFound, err)
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgAuthError, err)
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserContextKey, user)
		ctx = logger.WithLogger(ctx,
			logger.FromContextOrDefault(ctx, nil).With(slog.String("user_id", user.ID.String())))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser returns the user attached by Authenticate.
func GetUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.UserContextKey).(*domain.User)
	return user, ok && user != nil
}

// GetUserID returns the ID of the user attached by Authenticate.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	user, ok := GetUser(r)
	if !ok {
		return uuid.Nil, false
	}
	return user.ID, true
}
