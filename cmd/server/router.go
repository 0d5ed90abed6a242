package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/books-api/internal/api"
	apiMiddleware "github.com/phrazzld/books-api/internal/api/middleware"
	"github.com/phrazzld/books-api/internal/api/shared"
)

const (
	apiName    = "Books API"
	apiVersion = "1.0.0"
)

// welcomeResponse is the body of GET /.
type welcomeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	authHandler := api.NewAuthHandler(app.userService)
	bookHandler := api.NewBookHandler(app.bookService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.With(authMiddleware.Authenticate).Get("/auth/profile", authHandler.Profile)

		// Catalog reads are public
		r.Get("/books", bookHandler.ListBooks)
		r.Get("/books/{id}", bookHandler.GetBook)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/books", bookHandler.CreateBook)
			r.Put("/books/{id}", bookHandler.UpdateBook)
			r.Delete("/books/{id}", bookHandler.DeleteBook)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, welcomeResponse{
			Message: "Welcome to " + apiName,
			Version: apiVersion,
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
