package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/atelier/internal/server/http/dto"
)

// AdminHandler serves staff-only workshop endpoints.
type AdminHandler struct {
	facade StaffFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade StaffFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Appointments handles GET /api/admin/appointments?date=YYYY-MM-DD.
func (h *AdminHandler) Appointments(c *gin.Context) {
	appts, err := h.facade.Appointments(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	response := make([]dto.AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		response = append(response, dto.NewAppointmentResponse(a))
	}
	c.JSON(http.StatusOK, response)
}

// Statuses handles GET /api/admin/statuses.
func (h *AdminHandler) Statuses(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewStatusCatalogResponse(h.facade.StatusCatalog()))
}

// UpdateStatuses handles POST /api/admin/orders/:id/items/status.
func (h *AdminHandler) UpdateStatuses(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		badRequest(c, "invalid order id")
		return
	}
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	updated, err := h.facade.UpdateItemStatuses(c.Request.Context(), orderID, req.Edits())
	if err != nil {
		writeError(c, err)
		return
	}
	if updated == nil {
		updated = []int64{}
	}
	c.JSON(http.StatusOK, dto.StatusUpdateResponse{Updated: updated})
}
