package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/books-api/internal/api/middleware"
	"github.com/phrazzld/books-api/internal/api/shared"
	"github.com/phrazzld/books-api/internal/mocks"
	"github.com/phrazzld/books-api/internal/service"
	"github.com/phrazzld/books-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

// testEnv wires real services over in-memory stores behind a chi router.
type testEnv struct {
	router http.Handler
	users  *mocks.MockUserStore
	books  *mocks.MockBookStore
	jwt    *mocks.MockJWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users: mocks.NewMockUserStore(),
		books: mocks.NewMockBookStore(),
	}
	env.jwt = &mocks.MockJWTService{
		GenerateTokenFn: func(_ context.Context, id uuid.UUID) (string, error) {
			return "token-" + id.String(), nil
		},
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			id, err := uuid.Parse(strings.TrimPrefix(token, "token-"))
			if err != nil {
				return nil, auth.ErrInvalidToken
			}
			return &auth.Claims{UserID: id, ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}

	userService := service.NewUserService(env.users, &mocks.MockPasswordHasher{}, env.jwt, nil)
	bookService := service.NewBookService(env.books, nil)
	authHandler := NewAuthHandler(userService)
	bookHandler := NewBookHandler(bookService)
	authMiddleware := middleware.NewAuthMiddleware(env.jwt, env.users)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware)
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.With(authMiddleware.Authenticate).Get("/auth/profile", authHandler.Profile)

		r.Get("/books", bookHandler.ListBooks)
		r.Get("/books/{id}", bookHandler.GetBook)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/books", bookHandler.CreateBook)
			r.Put("/books/{id}", bookHandler.UpdateBook)
			r.Delete("/books/{id}", bookHandler.DeleteBook)
		})
	})
	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account and returns its token.
func (e *testEnv) register(t *testing.T, username, email string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}
