//go:build unit

package api_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"dealer-portal/internal/domain/appointment"
	"dealer-portal/internal/domain/calendar"
	"dealer-portal/internal/handler/api"
	"dealer-portal/internal/pkg/config"
	"dealer-portal/internal/pkg/errs"
	"dealer-portal/internal/usecase/commands"
	"dealer-portal/internal/usecase/queries"
	"dealer-portal/internal/usecase/shared"
	"dealer-portal/tests/common/builder"
	"dealer-portal/tests/common/httptest"
	commandsmock "dealer-portal/tests/mock/commands"
	queriesmock "dealer-portal/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
	actor        shared.Actor
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	handler, err := api.NewAppointmentHandler(s.mockCommands, s.mockQueries, config.CalendarConfig{
		StartHour: 8,
		EndHour:   18,
		TimeZone:  "Asia/Ho_Chi_Minh",
	})
	s.Require().NoError(err)
	s.handler = handler

	dealerID := uuid.New()
	s.actor = builder.NewUserBuilder().WithDealerID(&dealerID).BuildActor()

	// simulate the auth middleware having resolved the actor
	withActor := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("actor", s.actor)
			next(c)
		}
	}
	s.router.GET("/appointments/calendar", withActor(s.handler.Calendar))
	s.router.POST("/appointments", withActor(s.handler.Create))
	s.router.PATCH("/appointments/:id/status", withActor(s.handler.Transition))
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) TestCalendar() {
	s.Run("defaults to the week view", func() {
		s.mockQueries.EXPECT().
			Calendar(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Actor, p queries.CalendarParams) (*queries.CalendarView, error) {
				s.Equal(calendar.ModeWeek, p.Mode)
				s.True(p.Reference.IsZero())
				return &queries.CalendarView{Mode: p.Mode}, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/calendar", nil, "")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("parses mode and date from the query", func() {
		s.mockQueries.EXPECT().
			Calendar(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Actor, p queries.CalendarParams) (*queries.CalendarView, error) {
				s.Equal(calendar.ModeDay, p.Mode)
				s.Equal(2026, p.Reference.Year())
				s.Equal(time.March, p.Reference.Month())
				s.Equal(2, p.Reference.Day())
				_, offset := p.Reference.Zone()
				s.Equal(7*60*60, offset, "dates are parsed in the configured zone, not the host's")
				return &queries.CalendarView{Mode: p.Mode}, nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments/calendar?mode=day&date=2026-03-02", nil, "")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("rejects unknown mode without calling the query", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments/calendar?mode=fortnight", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("rejects malformed date", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments/calendar?date=03-02-2026", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("missing dealer scope maps to 400", func() {
		s.mockQueries.EXPECT().
			Calendar(gomock.Any(), s.actor, gomock.Any()).
			Return(nil, queries.ErrDealerScopeRequired)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/calendar", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestCreate() {
	url := "/appointments"
	body := map[string]any{
		"scheduled_start": "2026-03-02T09:00:00Z",
		"customer_label":  "Nguyen Van A",
		"vehicle_label":   "VF 8 Plus",
	}

	s.Run("created on success", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().
			Create(gomock.Any(), s.actor, gomock.Any()).
			Return(id, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusCreated, w.Code)
		s.Contains(w.Body.String(), id.String())
	})

	s.Run("missing required fields are rejected before the usecase", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"customer_label": "Nguyen Van A"}, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("invalid appointment data maps to 422", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), s.actor, gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("start outside operating hours"), commands.ErrInvalidAppointment))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestTransition() {
	id := uuid.New()
	url := fmt.Sprintf("/appointments/%s/status", id)

	s.Run("no content on success", func() {
		s.mockCommands.EXPECT().
			Transition(gomock.Any(), s.actor, id, appointment.StatusConfirmed).
			Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "confirmed"}, "")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("unknown status string is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "postponed"}, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("invalid transition maps to 409", func() {
		s.mockCommands.EXPECT().
			Transition(gomock.Any(), s.actor, id, appointment.StatusScheduled).
			Return(commands.ErrInvalidTransition)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "scheduled"}, "")
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("unknown appointment maps to 404", func() {
		s.mockCommands.EXPECT().
			Transition(gomock.Any(), s.actor, id, appointment.StatusConfirmed).
			Return(errs.Mark(errs.New("no rows in result set"), commands.ErrAppointmentNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "confirmed"}, "")
		s.Equal(http.StatusNotFound, w.Code)
	})
}
