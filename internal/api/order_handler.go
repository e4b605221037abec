package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jhonfrank/bookstore-api/internal/api/shared"
	"github.com/jhonfrank/bookstore-api/internal/domain"
	"github.com/jhonfrank/bookstore-api/internal/store"
)

// OrderHandler handles the /orders resource endpoints.
type OrderHandler struct {
	orders store.OrderStore
	logger *slog.Logger
}

// NewOrderHandler creates a new OrderHandler with the given dependencies.
func NewOrderHandler(orders store.OrderStore, logger *slog.Logger) *OrderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderHandler{
		orders: orders,
		logger: logger.With(slog.String("component", "order_handler")),
	}
}

// List handles GET /orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.OK(orders))
}

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req OrderPayload
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithEnvelope(w, r, http.StatusBadRequest, shared.BadRequest("Invalid request format."))
		return
	}

	if errs := shared.ValidatePayload(&req); errs != nil {
		shared.RespondWithEnvelope(w, r, http.StatusUnprocessableEntity, shared.ValidationFailed(errs))
		return
	}

	// The uuid tag has already validated the format.
	userID := uuid.MustParse(req.UserID)

	order := domain.NewOrder(req.Number, *req.Total, userID)
	if err := h.orders.Create(r.Context(), order); err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusCreated, shared.Created(order))
}

// Show handles GET /orders/{id}.
func (h *OrderHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
		return
	}

	order, err := h.orders.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
			return
		}
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.OK(order))
}

// Update handles PUT/PATCH /orders/{id}. Full-record update: the same
// fields are required as for create.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req OrderPayload
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

	order, err := h.orders.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
			return
		}
		shared.RespondInternalError(w, r, err)
		return
	}

	order.Number = req.Number
	order.Total = *req.Total
	order.UserID = uuid.MustParse(req.UserID)
	order.UpdatedAt = time.Now().UTC()

	if err := h.orders.Update(r.Context(), order); err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
			return
		}
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.OK(order))
}

// Delete handles DELETE /orders/{id}. Details belonging to the order are
// removed with it.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
		return
	}

	if err := h.orders.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
			return
		}
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusNoContent, shared.Envelope{Success: true})
}
