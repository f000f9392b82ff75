package api

import (
	"errors"
	"net/http"

	resdto "bookwise/internal/handler/dto/response"
	"bookwise/internal/handler/httperr"
	"bookwise/internal/pkg/errs"
	"bookwise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentQueries queries.AppointmentQueries
}

func NewAppointmentHandler(appointmentQueries queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentQueries: appointmentQueries,
	}
}

// @Summary Get appointment
// @Description Get appointment by ID
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, err := parseAppointmentID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment ID format", nil)
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		case errors.Is(err, errs.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment ID", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List provider appointments
// @Description List a provider's appointments for one day
// @Tags appointments
// @Produce json
// @Param provider_id query int true "Provider ID"
// @Param date query string true "Day in YYYY-MM-DD"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	var q struct {
		ProviderID int64  `form:"provider_id" binding:"required,gt=0"`
		Date       string `form:"date" binding:"required"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, err := h.appointmentQueries.ListByProviderDate(c.Request.Context(), q.ProviderID, q.Date)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request parameters", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}
