package api

import (
	"errors"
	"net/http"

	reqdto "bookwise/internal/handler/dto/request"
	resdto "bookwise/internal/handler/dto/response"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Available slots
// @Description List bookable slots for a service and provider on one day
// @Tags availability
// @Produce json
// @Param service_id query int true "Service ID"
// @Param provider_id query int true "Provider ID"
// @Param date query string true "Day in YYYY-MM-DD"
// @Success 200 {object} resdto.AvailableSlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability/slots [get]
func (h *AvailabilityHandler) GetAvailableSlots(c *gin.Context) {
	var q reqdto.AvailableSlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	slots, err := h.availabilityQueries.AvailableSlots(c.Request.Context(), q.ServiceID, q.ProviderID, q.Date)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(q.Date, slots))
}

// @Summary Available dates
// @Description List days of a month with at least one bookable slot
// @Tags availability
// @Produce json
// @Param service_id query int true "Service ID"
// @Param provider_id query int true "Provider ID"
// @Param month query string true "Month in YYYY-MM"
// @Success 200 {object} resdto.AvailableDatesResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability/dates [get]
func (h *AvailabilityHandler) GetAvailableDates(c *gin.Context) {
	var q reqdto.AvailableDatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	dates, err := h.availabilityQueries.AvailableDates(c.Request.Context(), q.ServiceID, q.ProviderID, q.Month)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailableDates(q.Month, dates))
}

func (h *AvailabilityHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service not found",
		})
	case errors.Is(err, errs.ErrProviderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Provider not found",
		})
	case errors.Is(err, errs.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request parameters",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
