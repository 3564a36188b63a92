package queries

import (
	"context"
	"time"

	"dealer-portal/internal/domain/appointment"
	"dealer-portal/internal/domain/calendar"
	"dealer-portal/internal/pkg/clock"
	"dealer-portal/internal/pkg/config"
	"dealer-portal/internal/pkg/errs"
	"dealer-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidViewMode     = errs.New("invalid calendar view mode")
	ErrInvalidWindow       = errs.New("invalid operating window")
	ErrDealerScopeRequired = errs.New("dealer scope required")
)

// AppointmentReadStore is the read side of the appointment store: everything
// the calendar needs is the set of appointments inside a visible range.
type AppointmentReadStore interface {
	ListByDealerBetween(ctx context.Context, dealerID uuid.UUID, from, to time.Time) ([]*appointment.Appointment, error)
}

type CalendarParams struct {
	DealerID  *uuid.UUID
	Mode      calendar.ViewMode
	Reference time.Time
}

// CalendarView is the projection one grid render needs. Placements is filled
// for day and week, DayCells for month, MonthCells for year; the other
// fields are always present so the frontend can draw the frame.
type CalendarView struct {
	Mode       calendar.ViewMode    `json:"mode"`
	Reference  time.Time            `json:"reference"`
	RangeFrom  time.Time            `json:"range_from"`
	RangeTo    time.Time            `json:"range_to"`
	FirstRow   int                  `json:"first_row"`
	LastRowEnd int                  `json:"last_row_end"`
	Placements []calendar.Placement `json:"placements,omitempty"`
	DayCells   []calendar.DayCell   `json:"day_cells,omitempty"`
	MonthCells []calendar.MonthCell `json:"month_cells,omitempty"`
}

type AppointmentQueries interface {
	Calendar(ctx context.Context, actor shared.Actor, p CalendarParams) (*CalendarView, error)
}

type appointmentQueriesImpl struct {
	readStore AppointmentReadStore
	clk       clock.Clock
	window    calendar.Window
}

func NewAppointmentQueries(readStore AppointmentReadStore, clk clock.Clock, cfg config.CalendarConfig) (AppointmentQueries, error) {
	window, err := calendar.NewWindow(cfg.StartHour, cfg.EndHour)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWindow)
	}
	return &appointmentQueriesImpl{
		readStore: readStore,
		clk:       clk,
		window:    window,
	}, nil
}

// Calendar loads the appointments visible from the given reference date and
// mode, and projects them onto grid coordinates. Day and week views get row
// placements; month and year views get per-cell totals.
func (q *appointmentQueriesImpl) Calendar(ctx context.Context, actor shared.Actor, p CalendarParams) (*CalendarView, error) {
	if !p.Mode.IsValid() {
		return nil, ErrInvalidViewMode
	}

	dealerID, err := resolveDealerScope(actor, p.DealerID)
	if err != nil {
		return nil, err
	}

	reference := p.Reference
	if reference.IsZero() {
		reference = q.clk.Now()
	}

	state := calendar.NewViewState(reference, p.Mode)
	from, to := state.VisibleRange()

	appts, err := q.readStore.ListByDealerBetween(ctx, dealerID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list appointments")
	}

	view := &CalendarView{
		Mode:       p.Mode,
		Reference:  state.Reference,
		RangeFrom:  from,
		RangeTo:    to,
		FirstRow:   q.window.FirstRow(),
		LastRowEnd: q.window.LastRowEnd(),
	}

	switch p.Mode {
	case calendar.ModeDay:
		view.Placements = q.window.PlaceDay(appts, state.Reference)
	case calendar.ModeWeek:
		view.Placements = q.window.PlaceWeek(appts, state.Reference)
	case calendar.ModeMonth:
		view.DayCells = calendar.CountByDay(appts, state.Reference)
	case calendar.ModeYear:
		view.MonthCells = calendar.CountByMonth(appts, state.Reference)
	}

	return view, nil
}

func resolveDealerScope(actor shared.Actor, requested *uuid.UUID) (uuid.UUID, error) {
	if actor.Role.IsDealerSide() {
		if actor.DealerID == nil {
			return uuid.Nil, ErrDealerScopeRequired
		}
		return *actor.DealerID, nil
	}
	if requested == nil {
		return uuid.Nil, ErrDealerScopeRequired
	}
	return *requested, nil
}
