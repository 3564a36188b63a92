//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"dealer-portal/internal/domain/appointment"
	"dealer-portal/internal/domain/calendar"
	"dealer-portal/internal/domain/user"
	"dealer-portal/internal/pkg/clock"
	"dealer-portal/internal/pkg/config"
	"dealer-portal/internal/usecase/queries"
	"dealer-portal/internal/usecase/shared"
	"dealer-portal/tests/common/builder"
	queriesmock "dealer-portal/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockAppointmentReadStore
	clk           *clock.MockClock
	queries       queries.AppointmentQueries
}

func (s *AppointmentQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockAppointmentReadStore(s.mockCtrl)
	// Monday, March 2nd.
	s.clk = clock.NewMockClock(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))

	q, err := queries.NewAppointmentQueries(s.mockReadStore, s.clk, config.CalendarConfig{
		StartHour: 8,
		EndHour:   18,
	})
	s.Require().NoError(err)
	s.queries = q
}

func (s *AppointmentQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentQueriesSuite(t *testing.T) {
	suite.Run(t, new(AppointmentQueriesTestSuite))
}

func (s *AppointmentQueriesTestSuite) TestCalendar() {
	dealerID := uuid.New()
	staff := shared.Actor{
		UserID:   uuid.New(),
		DealerID: &dealerID,
		Role:     user.RoleDealerStaff,
	}

	s.Run("day view places appointments on half-hour rows", func() {
		day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		appt := builder.NewAppointmentBuilder().
			WithDealerID(dealerID).
			WithScheduledStart(time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)).
			BuildDomain()

		s.mockReadStore.EXPECT().
			ListByDealerBetween(gomock.Any(), dealerID, gomock.Any(), gomock.Any()).
			Return([]*appointment.Appointment{appt}, nil)

		view, err := s.queries.Calendar(context.Background(), staff, queries.CalendarParams{
			Mode:      calendar.ModeDay,
			Reference: day,
		})
		s.NoError(err)
		s.Equal(2, view.FirstRow)
		s.Equal(22, view.LastRowEnd)
		s.Require().Len(view.Placements, 1)
		s.Equal(0, view.Placements[0].Column)
		s.Equal(5, view.Placements[0].RowStart)
		s.Equal(7, view.Placements[0].RowEnd)
	})

	s.Run("week view spreads columns Monday through Sunday", func() {
		monday := builder.NewAppointmentBuilder().
			WithDealerID(dealerID).
			WithScheduledStart(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)).
			BuildDomain()
		sunday := builder.NewAppointmentBuilder().
			WithDealerID(dealerID).
			WithScheduledStart(time.Date(2026, 3, 8, 17, 0, 0, 0, time.UTC)).
			BuildDomain()

		s.mockReadStore.EXPECT().
			ListByDealerBetween(gomock.Any(), dealerID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, from, to time.Time) ([]*appointment.Appointment, error) {
				s.Equal(time.Monday, from.Weekday())
				s.Equal(7*24*time.Hour, to.Sub(from))
				return []*appointment.Appointment{monday, sunday}, nil
			})

		view, err := s.queries.Calendar(context.Background(), staff, queries.CalendarParams{
			Mode:      calendar.ModeWeek,
			Reference: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		})
		s.NoError(err)
		s.Require().Len(view.Placements, 2)
		s.Equal(0, view.Placements[0].Column)
		s.Equal(6, view.Placements[1].Column)
	})

	s.Run("month view counts per day including empty days", func() {
		appts := []*appointment.Appointment{
			builder.NewAppointmentBuilder().WithDealerID(dealerID).
				WithScheduledStart(time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)).BuildDomain(),
			builder.NewAppointmentBuilder().WithDealerID(dealerID).
				WithScheduledStart(time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)).BuildDomain(),
		}
		s.mockReadStore.EXPECT().
			ListByDealerBetween(gomock.Any(), dealerID, gomock.Any(), gomock.Any()).
			Return(appts, nil)

		view, err := s.queries.Calendar(context.Background(), staff, queries.CalendarParams{
			Mode:      calendar.ModeMonth,
			Reference: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		})
		s.NoError(err)
		s.Require().Len(view.DayCells, 31)
		s.Equal(2, view.DayCells[4].Count)
		s.Equal(0, view.DayCells[5].Count)
	})

	s.Run("year view counts per month", func() {
		appts := []*appointment.Appointment{
			builder.NewAppointmentBuilder().WithDealerID(dealerID).
				WithScheduledStart(time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC)).BuildDomain(),
		}
		s.mockReadStore.EXPECT().
			ListByDealerBetween(gomock.Any(), dealerID, gomock.Any(), gomock.Any()).
			Return(appts, nil)

		view, err := s.queries.Calendar(context.Background(), staff, queries.CalendarParams{
			Mode:      calendar.ModeYear,
			Reference: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		})
		s.NoError(err)
		s.Require().Len(view.MonthCells, 12)
		s.Equal(1, view.MonthCells[6].Count)
	})

	s.Run("zero reference falls back to the current time", func() {
		s.mockReadStore.EXPECT().
			ListByDealerBetween(gomock.Any(), dealerID, gomock.Any(), gomock.Any()).
			Return(nil, nil)

		view, err := s.queries.Calendar(context.Background(), staff, queries.CalendarParams{
			Mode: calendar.ModeDay,
		})
		s.NoError(err)
		s.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), view.Reference)
	})

	s.Run("dealer staff always sees their own dealer regardless of request", func() {
		other := uuid.New()
		s.mockReadStore.EXPECT().
			ListByDealerBetween(gomock.Any(), dealerID, gomock.Any(), gomock.Any()).
			Return(nil, nil)

		_, err := s.queries.Calendar(context.Background(), staff, queries.CalendarParams{
			DealerID: &other,
			Mode:     calendar.ModeDay,
		})
		s.NoError(err)
	})

	s.Run("manufacturer staff must name a dealer", func() {
		admin := shared.Actor{UserID: uuid.New(), Role: user.RoleAdmin}

		_, err := s.queries.Calendar(context.Background(), admin, queries.CalendarParams{
			Mode: calendar.ModeWeek,
		})
		s.ErrorIs(err, queries.ErrDealerScopeRequired)
	})

	s.Run("unknown view mode is rejected", func() {
		_, err := s.queries.Calendar(context.Background(), staff, queries.CalendarParams{
			Mode: calendar.ViewMode("decade"),
		})
		s.ErrorIs(err, queries.ErrInvalidViewMode)
	})
}
