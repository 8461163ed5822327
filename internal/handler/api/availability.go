package api

import (
	"net/http"

	reqdto "turf-booking/internal/handler/dto/request"
	resdto "turf-booking/internal/handler/dto/response"
	"turf-booking/internal/handler/httperr"
	"turf-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Check slot availability
// @Description Report whether a slot is free; the answer is advisory and booking may still lose a race
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Slot to check"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/check [post]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing turfId or slotId", nil)
		return
	}

	snapshot, err := h.q.Check(c.Request.Context(), req.TurfID, req.SlotID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(snapshot))
}
