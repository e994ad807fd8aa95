package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/atelier/internal/server/http/dto"
)

// SlotsHandler serves the public availability query.
type SlotsHandler struct {
	facade BookingFacade
}

// NewSlotsHandler constructs SlotsHandler.
func NewSlotsHandler(facade BookingFacade) *SlotsHandler {
	return &SlotsHandler{facade: facade}
}

// Available handles GET /api/appointments/slots?date=YYYY-MM-DD.
func (h *SlotsHandler) Available(c *gin.Context) {
	date := c.Query("date")
	slots, err := h.facade.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSlotsResponse(date, slots))
}
