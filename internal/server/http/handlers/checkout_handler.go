package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/atelier/internal/server/http/dto"
)

// CheckoutHandler places orders together with their fitting appointment.
type CheckoutHandler struct {
	facade BookingFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade BookingFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Checkout handles POST /api/checkout. A stored order is answered with 201
// even when the appointment could not be booked.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	principal := CurrentPrincipal(c)
	result, err := h.facade.Checkout(c.Request.Context(), principal.UserID, req.ToModel())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCheckoutResponse(result))
}
