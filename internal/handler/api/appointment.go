package api

import (
	"errors"
	"net/http"
	"time"

	"dealer-portal/internal/domain/appointment"
	"dealer-portal/internal/domain/calendar"
	reqdto "dealer-portal/internal/handler/dto/request"
	resdto "dealer-portal/internal/handler/dto/response"
	"dealer-portal/internal/handler/middleware"
	"dealer-portal/internal/pkg/config"
	"dealer-portal/internal/pkg/errs"
	"dealer-portal/internal/usecase/commands"
	"dealer-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentCommands commands.AppointmentCommands
	appointmentQueries  queries.AppointmentQueries
	location            *time.Location
}

func NewAppointmentHandler(
	appointmentCommands commands.AppointmentCommands,
	appointmentQueries queries.AppointmentQueries,
	cfg config.CalendarConfig,
) (*AppointmentHandler, error) {
	// Calendar dates are interpreted in the configured zone so the grid does
	// not shift with the host timezone.
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid calendar timezone")
	}
	return &AppointmentHandler{
		appointmentCommands: appointmentCommands,
		appointmentQueries:  appointmentQueries,
		location:            location,
	}, nil
}

// @Summary Calendar view
// @Description Appointments projected onto the calendar grid for the requested mode and date
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param mode query string false "View mode: day, week, month, year" default(week)
// @Param date query string false "Reference date (YYYY-MM-DD); defaults to today"
// @Param dealer_id query string false "Dealer scope; required for manufacturer-side roles"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /appointments/calendar [get]
func (h *AppointmentHandler) Calendar(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	mode := calendar.ModeWeek
	if modeStr := c.Query("mode"); modeStr != "" {
		parsed, err := calendar.ParseViewMode(modeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid view mode",
			})
			return
		}
		mode = parsed
	}

	var reference time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, h.location)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		reference = parsed
	}

	dealerID, err := optionalUUIDQuery(c, "dealer_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid dealer ID format",
		})
		return
	}

	view, err := h.appointmentQueries.Calendar(c.Request.Context(), actor, queries.CalendarParams{
		DealerID:  dealerID,
		Mode:      mode,
		Reference: reference,
	})
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrDealerScopeRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Dealer ID required",
			})
		case errors.Is(err, queries.ErrInvalidViewMode):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid view mode",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}

// @Summary Create appointment
// @Description Book an appointment inside the dealer's operating window
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.appointmentCommands.Create(c.Request.Context(), actor, commands.CreateAppointmentParams{
		DealerID:       req.DealerID,
		ScheduledStart: req.ScheduledStart,
		CustomerLabel:  req.CustomerLabel,
		VehicleLabel:   req.VehicleLabel,
		Notes:          req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDealerScopeRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Dealer ID required",
			})
		case errors.Is(err, commands.ErrInvalidAppointment):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid appointment data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.AppointmentCreatedResponse{ID: id.String()})
}

// @Summary Transition appointment status
// @Description Move an appointment through its status lifecycle
// @Tags appointments
// @Accept json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.TransitionAppointmentRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) Transition(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	var req reqdto.TransitionAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	status, err := appointment.NewStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment status",
		})
		return
	}

	if err := h.appointmentCommands.Transition(c.Request.Context(), actor, id, status); err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errors.Is(err, commands.ErrAppointmentAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Appointment belongs to another dealer",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Invalid status transition",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
