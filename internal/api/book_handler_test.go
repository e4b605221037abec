package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jhonfrank/bookstore-api/internal/domain"
	"github.com/jhonfrank/bookstore-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withURLParams attaches chi path parameters to a request so handlers can be
// exercised without a full router.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newTestBook() *domain.Book {
	return domain.NewBook("The Go Programming Language", "978-0134190440", "Donovan & Kernighan", 39.99, true)
}

func TestBookList(t *testing.T) {
	t.Parallel()

	bookStore := mocks.NewMockBookStore()
	book := newTestBook()
	bookStore.Books[book.ID] = book
	handler := NewBookHandler(bookStore, nil)

	recorder := httptest.NewRecorder()
	handler.List(recorder, httptest.NewRequest("GET", "/api/books", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	env := decodeEnvelope(t, recorder)
	assert.True(t, env.Success)

	items, ok := env.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestBookCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantField  string
	}{
		{
			name: "valid book",
			payload: map[string]interface{}{
				"title":     "The Go Programming Language",
				"isbn":      "978-0134190440",
				"author":    "Donovan & Kernighan",
				"price":     39.99,
				"is_active": true,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "zero price and inactive flag are valid",
			payload: map[string]interface{}{
				"title":     "Free Pamphlet",
				"isbn":      "978-0000000000",
				"author":    "Anonymous",
				"price":     0.0,
				"is_active": false,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "missing title",
			payload: map[string]interface{}{
				"isbn":      "978-0134190440",
				"author":    "Donovan & Kernighan",
				"price":     39.99,
				"is_active": true,
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "title",
		},
		{
			name: "missing price",
			payload: map[string]interface{}{
				"title":     "The Go Programming Language",
				"isbn":      "978-0134190440",
				"author":    "Donovan & Kernighan",
				"is_active": true,
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "price",
		},
		{
			name: "missing is_active",
			payload: map[string]interface{}{
				"title":  "The Go Programming Language",
				"isbn":   "978-0134190440",
				"author": "Donovan & Kernighan",
				"price":  39.99,
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "is_active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookStore := mocks.NewMockBookStore()
			handler := NewBookHandler(bookStore, nil)

			recorder := httptest.NewRecorder()
			handler.Create(recorder, postJSON(t, "/api/books", tt.payload))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			env := decodeEnvelope(t, recorder)
			if tt.wantField != "" {
				assert.False(t, env.Success)
				assert.Contains(t, env.Errors, tt.wantField)
				assert.Empty(t, bookStore.Books)
			} else {
				assert.True(t, env.Success)
				assert.Equal(t, "Resource created successfully.", env.Message)
				assert.Len(t, bookStore.Books, 1)
			}
		})
	}
}

func TestBookShow(t *testing.T) {
	t.Parallel()

	bookStore := mocks.NewMockBookStore()
	book := newTestBook()
	bookStore.Books[book.ID] = book
	handler := NewBookHandler(bookStore, nil)

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{name: "existing book", id: book.ID.String(), wantStatus: http.StatusOK},
		{name: "unknown id", id: uuid.New().String(), wantStatus: http.StatusNotFound},
		{name: "malformed id", id: "not-a-uuid", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/books/"+tt.id, nil)
			req = withURLParams(req, map[string]string{"id": tt.id})
			recorder := httptest.NewRecorder()

			handler.Show(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			env := decodeEnvelope(t, recorder)
			if tt.wantStatus == http.StatusNotFound {
				assert.Equal(t, "Resource not found.", env.Message)
			} else {
				assert.True(t, env.Success)
			}
		})
	}
}

func TestBookUpdate(t *testing.T) {
	t.Parallel()

	t.Run("replaces every field", func(t *testing.T) {
		bookStore := mocks.NewMockBookStore()
		book := newTestBook()
		bookStore.Books[book.ID] = book
		handler := NewBookHandler(bookStore, nil)

		req := postJSON(t, "/api/books/"+book.ID.String(), map[string]interface{}{
			"title":     "Updated Title",
			"isbn":      "978-0201633610",
			"author":    "New Author",
			"price":     12.50,
			"is_active": false,
		})
		req = withURLParams(req, map[string]string{"id": book.ID.String()})
		recorder := httptest.NewRecorder()

		handler.Update(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		updated := bookStore.Books[book.ID]
		assert.Equal(t, "Updated Title", updated.Title)
		assert.Equal(t, 12.50, updated.Price)
		assert.False(t, updated.IsActive)
	})

	t.Run("validation runs before the existence check", func(t *testing.T) {
		bookStore := mocks.NewMockBookStore()
		handler := NewBookHandler(bookStore, nil)

		// Unknown id plus an invalid payload: the payload failure wins.
		req := postJSON(t, "/api/books/"+uuid.New().String(), map[string]interface{}{
			"title": "Only a Title",
		})
		req = withURLParams(req, map[string]string{"id": uuid.New().String()})
		recorder := httptest.NewRecorder()

		handler.Update(recorder, req)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		bookStore := mocks.NewMockBookStore()
		handler := NewBookHandler(bookStore, nil)

		id := uuid.New().String()
		req := postJSON(t, "/api/books/"+id, map[string]interface{}{
			"title":     "Updated Title",
			"isbn":      "978-0201633610",
			"author":    "New Author",
			"price":     12.50,
			"is_active": true,
		})
		req = withURLParams(req, map[string]string{"id": id})
		recorder := httptest.NewRecorder()

		handler.Update(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestBookDelete(t *testing.T) {
	t.Parallel()

	t.Run("removes the book and returns 204", func(t *testing.T) {
		bookStore := mocks.NewMockBookStore()
		book := newTestBook()
		bookStore.Books[book.ID] = book
		handler := NewBookHandler(bookStore, nil)

		req := httptest.NewRequest("DELETE", "/api/books/"+book.ID.String(), nil)
		req = withURLParams(req, map[string]string{"id": book.ID.String()})
		recorder := httptest.NewRecorder()

		handler.Delete(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Zero(t, recorder.Body.Len())
		assert.Empty(t, bookStore.Books)
	})

	t.Run("deleting twice yields 404", func(t *testing.T) {
		bookStore := mocks.NewMockBookStore()
		handler := NewBookHandler(bookStore, nil)

		id := uuid.New().String()
		req := httptest.NewRequest("DELETE", "/api/books/"+id, nil)
		req = withURLParams(req, map[string]string{"id": id})
		recorder := httptest.NewRecorder()

		handler.Delete(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestBookStoreErrorYields500(t *testing.T) {
	t.Parallel()

	bookStore := mocks.NewMockBookStore()
	bookStore.ListFn = func(ctx context.Context) ([]*domain.Book, error) {
		return nil, assert.AnError
	}
	handler := NewBookHandler(bookStore, nil)

	recorder := httptest.NewRecorder()
	handler.List(recorder, httptest.NewRequest("GET", "/api/books", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var env map[string]interface{}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&env))
	assert.Equal(t, "Internal server error.", env["message"])
}
