package api

import (
	"net/http"

	"github.com/phrazzld/books-api/internal/api/shared"
	"github.com/phrazzld/books-api/internal/domain"
	"github.com/phrazzld/books-api/internal/service"
)

// BookHandler handles the catalog endpoints.
type BookHandler struct {
	bookService service.BookService
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// CreateBook handles POST /api/books.
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, MsgInvalidBookData)
		return
	}

	publishedDate, err := domain.ParseDate(*req.PublishedDate)
	if err != nil {
		HandleAPIError(w, r, err, MsgInvalidBookData)
		return
	}

	book, err := h.bookService.CreateBook(r.Context(), *req.Title, *req.Author, publishedDate, *req.NumberOfPages)
	if err != nil {
		HandleAPIError(w, r, err, MsgInvalidBookData)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, bookToResponse(book))
}

// ListBooks handles GET /api/books.
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.ListBooks(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgServerError, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, booksToResponse(books))
}

// GetBook handles GET /api/books/{id}.
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		respondBookNotFound(w, r, err)
		return
	}

	book, err := h.bookService.GetBook(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookToResponse(book))
}

// UpdateBook handles PUT /api/books/{id}.
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		respondBookNotFound(w, r, err)
		return
	}

	// An unknown book is reported before anything about the body.
	if _, err := h.bookService.GetBook(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateBookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	patch, err := req.toPatch()
	if err != nil {
		HandleAPIError(w, r, err, MsgInvalidBookData)
		return
	}

	book, err := h.bookService.UpdateBook(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err, MsgInvalidBookData)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, bookToResponse(book))
}

// DeleteBook handles DELETE /api/books/{id}.
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		respondBookNotFound(w, r, err)
		return
	}

	if err := h.bookService.DeleteBook(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: MsgBookRemoved})
}

// respondBookNotFound answers a malformed book ID the same way as an unknown one.
func respondBookNotFound(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, MsgBookNotFound, err)
}
