package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jhonfrank/bookstore-api/internal/domain"
	"github.com/jhonfrank/bookstore-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(userID uuid.UUID) *domain.Order {
	return domain.NewOrder("ORD-0001", 120.50, userID)
}

func TestOrderList(t *testing.T) {
	t.Parallel()

	orderStore := mocks.NewMockOrderStore()
	order := newTestOrder(uuid.New())
	orderStore.Orders[order.ID] = order
	handler := NewOrderHandler(orderStore, nil)

	recorder := httptest.NewRecorder()
	handler.List(recorder, httptest.NewRequest("GET", "/api/orders", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	env := decodeEnvelope(t, recorder)
	assert.True(t, env.Success)

	items, ok := env.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestOrderCreate(t *testing.T) {
	t.Parallel()

	userID := uuid.New().String()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantField  string
	}{
		{
			name: "valid order",
			payload: map[string]interface{}{
				"number":  "ORD-0001",
				"total":   120.50,
				"user_id": userID,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "zero total is valid",
			payload: map[string]interface{}{
				"number":  "ORD-0002",
				"total":   0.0,
				"user_id": userID,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "missing number",
			payload: map[string]interface{}{
				"total":   120.50,
				"user_id": userID,
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "number",
		},
		{
			name: "missing total",
			payload: map[string]interface{}{
				"number":  "ORD-0001",
				"user_id": userID,
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "total",
		},
		{
			name: "malformed user_id",
			payload: map[string]interface{}{
				"number":  "ORD-0001",
				"total":   120.50,
				"user_id": "not-a-uuid",
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  "user_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderStore := mocks.NewMockOrderStore()
			handler := NewOrderHandler(orderStore, nil)

			recorder := httptest.NewRecorder()
			handler.Create(recorder, postJSON(t, "/api/orders", tt.payload))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			env := decodeEnvelope(t, recorder)
			if tt.wantField != "" {
				assert.Contains(t, env.Errors, tt.wantField)
				assert.Empty(t, orderStore.Orders)
			} else {
				assert.True(t, env.Success)
				assert.Equal(t, "Resource created successfully.", env.Message)
				assert.Len(t, orderStore.Orders, 1)
			}
		})
	}
}

func TestOrderShow(t *testing.T) {
	t.Parallel()

	orderStore := mocks.NewMockOrderStore()
	order := newTestOrder(uuid.New())
	orderStore.Orders[order.ID] = order
	handler := NewOrderHandler(orderStore, nil)

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{name: "existing order", id: order.ID.String(), wantStatus: http.StatusOK},
		{name: "unknown id", id: uuid.New().String(), wantStatus: http.StatusNotFound},
		{name: "malformed id", id: "42", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/orders/"+tt.id, nil)
			req = withURLParams(req, map[string]string{"id": tt.id})
			recorder := httptest.NewRecorder()

			handler.Show(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestOrderUpdate(t *testing.T) {
	t.Parallel()

	t.Run("replaces every field", func(t *testing.T) {
		orderStore := mocks.NewMockOrderStore()
		order := newTestOrder(uuid.New())
		orderStore.Orders[order.ID] = order
		handler := NewOrderHandler(orderStore, nil)

		newUserID := uuid.New()
		req := postJSON(t, "/api/orders/"+order.ID.String(), map[string]interface{}{
			"number":  "ORD-9999",
			"total":   75.25,
			"user_id": newUserID.String(),
		})
		req = withURLParams(req, map[string]string{"id": order.ID.String()})
		recorder := httptest.NewRecorder()

		handler.Update(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		updated := orderStore.Orders[order.ID]
		assert.Equal(t, "ORD-9999", updated.Number)
		assert.Equal(t, 75.25, updated.Total)
		assert.Equal(t, newUserID, updated.UserID)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		orderStore := mocks.NewMockOrderStore()
		handler := NewOrderHandler(orderStore, nil)

		id := uuid.New().String()
		req := postJSON(t, "/api/orders/"+id, map[string]interface{}{
			"number":  "ORD-9999",
			"total":   75.25,
			"user_id": uuid.New().String(),
		})
		req = withURLParams(req, map[string]string{"id": id})
		recorder := httptest.NewRecorder()

		handler.Update(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestOrderDelete(t *testing.T) {
	t.Parallel()

	t.Run("removes the order and returns 204", func(t *testing.T) {
		orderStore := mocks.NewMockOrderStore()
		order := newTestOrder(uuid.New())
		orderStore.Orders[order.ID] = order
		handler := NewOrderHandler(orderStore, nil)

		req := httptest.NewRequest("DELETE", "/api/orders/"+order.ID.String(), nil)
		req = withURLParams(req, map[string]string{"id": order.ID.String()})
		recorder := httptest.NewRecorder()

		handler.Delete(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, orderStore.Orders)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		orderStore := mocks.NewMockOrderStore()
		handler := NewOrderHandler(orderStore, nil)

		id := uuid.New().String()
		req := httptest.NewRequest("DELETE", "/api/orders/"+id, nil)
		req = withURLParams(req, map[string]string{"id": id})
		recorder := httptest.NewRecorder()

		handler.Delete(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
