package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/server/http/dto"
)

// OrderHandler manages the customer's order endpoints.
type OrderHandler struct {
	facade BookingFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade BookingFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/user/orders.
func (h *OrderHandler) List(c *gin.Context) {
	principal := CurrentPrincipal(c)
	orders, err := h.facade.Orders(c.Request.Context(), principal.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.NewOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Items handles GET /api/user/orders/:id/items.
func (h *OrderHandler) Items(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid order id")
		return
	}

	principal := CurrentPrincipal(c)
	items, err := h.facade.OrderItems(c.Request.Context(), principal.UserID, orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.LineItemResponse, 0, len(items))
	for _, li := range items {
		response = append(response, dto.NewLineItemResponse(li))
	}
	c.JSON(http.StatusOK, response)
}

// Appointment handles GET /api/user/orders/:id/appointment. An order without a
// fitting yet answers 204.
func (h *OrderHandler) Appointment(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid order id")
		return
	}

	principal := CurrentPrincipal(c)
	appt, err := h.facade.OrderAppointment(c.Request.Context(), principal.UserID, orderID)
	if err != nil {
		writeError(c, err)
		return
	}
	if appt == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.OrderAppointmentResponse{
		ID:   appt.ID.String(),
		Date: appt.Date,
		Slot: string(appt.Slot),
	})
}

// Rebook handles POST /api/user/orders/:id/appointment for orders whose
// appointment could not be booked at checkout.
func (h *OrderHandler) Rebook(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid order id")
		return
	}
	var req dto.RebookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	principal := CurrentPrincipal(c)
	appt, err := h.facade.RebookAppointment(c.Request.Context(), principal.UserID, orderID, req.Date, model.Slot(req.Slot))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAppointmentResponse(*appt))
}
