package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jhonfrank/bookstore-api/internal/api/shared"
	"github.com/jhonfrank/bookstore-api/internal/domain"
	"github.com/jhonfrank/bookstore-api/internal/store"
)

// BookHandler handles the /books resource endpoints.
type BookHandler struct {
	books  store.BookStore
	logger *slog.Logger
}

// NewBookHandler creates a new BookHandler with the given dependencies.
func NewBookHandler(books store.BookStore, logger *slog.Logger) *BookHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookHandler{
		books:  books,
		logger: logger.With(slog.String("component", "book_handler")),
	}
}

// List handles GET /books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.List(r.Context())
	if err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.OK(books))
}

// Create handles POST /books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BookPayload
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithEnvelope(w, r, http.StatusBadRequest, shared.BadRequest("Invalid request format."))
		return
	}

	if errs := shared.ValidatePayload(&req); errs != nil {
		shared.RespondWithEnvelope(w, r, http.StatusUnprocessableEntity, shared.ValidationFailed(errs))
		return
	}

	book := domain.NewBook(req.Title, req.ISBN, req.Author, *req.Price, *req.IsActive)
	if err := h.books.Create(r.Context(), book); err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusCreated, shared.Created(book))
}

// Show handles GET /books/{id}.
func (h *BookHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
		return
	}

	book, err := h.books.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
			return
		}
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.OK(book))
}

// Update handles PUT/PATCH /books/{id}. Updates are full-record: the same
// fields are required as for create, and validation runs before the
// existence check.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req BookPayload
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithEnvelope(w, r, http.StatusBadRequest, shared.BadRequest("Invalid request format."))
		return
	}

	if errs := shared.ValidatePayload(&req); errs != nil {
		shared.RespondWithEnvelope(w, r, http.StatusUnprocessableEntity, shared.ValidationFailed(errs))
		return
	}

	id, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
		return
	}

	book, err := h.books.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
			return
		}
		shared.RespondInternalError(w, r, err)
		return
	}

	book.Title = req.Title
	book.ISBN = req.ISBN
	book.Author = req.Author
	book.Price = *req.Price
	book.IsActive = *req.IsActive
	book.UpdatedAt = time.Now().UTC()

	if err := h.books.Update(r.Context(), book); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
			return
		}
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.OK(book))
}

// Delete handles DELETE /books/{id}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
		return
	}

	if err := h.books.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
			return
		}
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusNoContent, shared.Envelope{Success: true})
}
