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

// OrderDetailHandler handles the nested /orders/{orderId}/details endpoints.
// Every operation checks the parent order's existence first, then the
// detail's; both misses yield 404, but the parent check always runs before
// any detail operation.
type OrderDetailHandler struct {
	orders  store.OrderStore
	details store.OrderDetailStore
	logger  *slog.Logger
}

// NewOrderDetailHandler creates a new OrderDetailHandler with the given
// dependencies.
func NewOrderDetailHandler(orders store.OrderStore, details store.OrderDetailStore, logger *slog.Logger) *OrderDetailHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderDetailHandler{
		orders:  orders,
		details: details,
		logger:  logger.With(slog.String("component", "order_detail_handler")),
	}
}

// resolveOrder loads the parent order from the path, writing a 404 or 500
// response when it cannot. Returns the order ID and true on success.
func (h *OrderDetailHandler) resolveOrder(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	orderID, ok := getPathUUID(r, "orderId")
	if !ok {
		shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
		return uuid.Nil, false
	}

	if _, err := h.orders.GetByID(r.Context(), orderID); err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
			return uuid.Nil, false
		}
		shared.RespondInternalError(w, r, err)
		return uuid.Nil, false
	}

	return orderID, true
}

// List handles GET /orders/{orderId}/details.
func (h *OrderDetailHandler) List(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.resolveOrder(w, r)
	if !ok {
		return
	}

	details, err := h.details.ListByOrder(r.Context(), orderID)
	if err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.OK(details))
}

// Create handles POST /orders/{orderId}/details. The book reference is
// checked for presence only; a detail pointing at a missing book is
// accepted.
func (h *OrderDetailHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req OrderDetailPayload
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithEnvelope(w, r, http.StatusBadRequest, shared.BadRequest("Invalid request format."))
		return
	}

	if errs := shared.ValidatePayload(&req); errs != nil {
		shared.RespondWithEnvelope(w, r, http.StatusUnprocessableEntity, shared.ValidationFailed(errs))
		return
	}

	orderID, ok := h.resolveOrder(w, r)
	if !ok {
		return
	}

	// The detail belongs to the order in the path regardless of the
	// order_id echoed in the body.
	detail := domain.NewOrderDetail(
		orderID,
		uuid.MustParse(req.BookID),
		*req.UnitPrice,
		*req.Quantity,
		*req.SubTotal,
	)

	if err := h.details.Create(r.Context(), detail); err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusCreated, shared.Created(detail))
}

// Show handles GET /orders/{orderId}/details/{detailId}.
func (h *OrderDetailHandler) Show(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.resolveOrder(w, r)
	if !ok {
		return
	}

	detailID, ok := getPathUUID(r, "detailId")
	if !ok {
		shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
		return
	}

	detail, err := h.details.GetByID(r.Context(), orderID, detailID)
	if err != nil {
		if errors.Is(err, store.ErrOrderDetailNotFound) {
			shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
			return
		}
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.OK(detail))
}

// Update handles PUT/PATCH /orders/{orderId}/details/{detailId}.
func (h *OrderDetailHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req OrderDetailPayload
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithEnvelope(w, r, http.StatusBadRequest, shared.BadRequest("Invalid request format."))
		return
	}

	if errs := shared.ValidatePayload(&req); errs != nil {
		shared.RespondWithEnvelope(w, r, http.StatusUnprocessableEntity, shared.ValidationFailed(errs))
		return
	}

	orderID, ok := h.resolveOrder(w, r)
	if !ok {
		return
	}

	detailID, ok := getPathUUID(r, "detailId")
	if !ok {
		shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
		return
	}

	detail, err := h.details.GetByID(r.Context(), orderID, detailID)
	if err != nil {
		if errors.Is(err, store.ErrOrderDetailNotFound) {
			shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
			return
		}
		shared.RespondInternalError(w, r, err)
		return
	}

	detail.UnitPrice = *req.UnitPrice
	detail.Quantity = *req.Quantity
	detail.SubTotal = *req.SubTotal
	detail.BookID = uuid.MustParse(req.BookID)
	detail.UpdatedAt = time.Now().UTC()

	if err := h.details.Update(r.Context(), detail); err != nil {
		if errors.Is(err, store.ErrOrderDetailNotFound) {
			shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
			return
		}
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.OK(detail))
}

// Delete handles DELETE /orders/{orderId}/details/{detailId}.
func (h *OrderDetailHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.resolveOrder(w, r)
	if !ok {
		return
	}

	detailID, ok := getPathUUID(r, "detailId")
	if !ok {
		shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
		return
	}

	if err := h.details.Delete(r.Context(), orderID, detailID); err != nil {
		if errors.Is(err, store.ErrOrderDetailNotFound) {
			shared.RespondWithEnvelope(w, r, http.StatusNotFound, shared.NotFound())
			return
		}
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusNoContent, shared.Envelope{Success: true})
}
