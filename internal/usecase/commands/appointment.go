package commands

import (
	"context"
	"time"

	"dealer-portal/internal/domain/appointment"
	"dealer-portal/internal/infra"
	"dealer-portal/internal/pkg/clock"
	"dealer-portal/internal/pkg/errs"
	"dealer-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrAppointmentAccessDenied = errs.New("appointment belongs to another dealer")
	ErrInvalidAppointment      = errs.New("invalid appointment")
	ErrInvalidTransition       = errs.New("invalid appointment status transition")
	ErrDealerScopeRequired     = errs.New("dealer scope required")
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *appointment.Appointment) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status appointment.Status) error
	ListByDealerBetween(ctx context.Context, dealerID uuid.UUID, from, to time.Time) ([]*appointment.Appointment, error)
}

type CreateAppointmentParams struct {
	DealerID       *uuid.UUID
	ScheduledStart time.Time
	CustomerLabel  string
	VehicleLabel   string
	Notes          string
}

type AppointmentCommands interface {
	Create(ctx context.Context, actor shared.Actor, p CreateAppointmentParams) (uuid.UUID, error)
	Transition(ctx context.Context, actor shared.Actor, id uuid.UUID, next appointment.Status) error
}

type appointmentCommandsImpl struct {
	appointments AppointmentRepository
	clk          clock.Clock
}

func NewAppointmentCommands(appointments AppointmentRepository, clk clock.Clock) AppointmentCommands {
	return &appointmentCommandsImpl{
		appointments: appointments,
		clk:          clk,
	}
}

// Create books an appointment. Dealer-side actors always book for their own
// dealer; manufacturer-side actors must say which dealer they book for.
func (c *appointmentCommandsImpl) Create(ctx context.Context, actor shared.Actor, p CreateAppointmentParams) (uuid.UUID, error) {
	dealerID, err := resolveDealerScope(actor, p.DealerID)
	if err != nil {
		return uuid.Nil, err
	}

	appt, err := appointment.NewAppointment(
		dealerID, p.ScheduledStart, p.CustomerLabel, p.VehicleLabel, p.Notes, c.clk.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidAppointment)
	}

	id, err := c.appointments.Create(ctx, appt)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to create appointment")
	}
	return id, nil
}

func (c *appointmentCommandsImpl) Transition(ctx context.Context, actor shared.Actor, id uuid.UUID, next appointment.Status) error {
	appt, err := c.appointments.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrAppointmentNotFound)
		}
		return errs.Wrap(err, "failed to load appointment")
	}

	if !actor.CanAccessDealer(appt.DealerID()) {
		return ErrAppointmentAccessDenied
	}

	if err := appt.Transition(next); err != nil {
		return errs.Mark(err, ErrInvalidTransition)
	}

	if err := c.appointments.UpdateStatus(ctx, id, appt.Status()); err != nil {
		return errs.Wrap(err, "failed to update appointment status")
	}
	return nil
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
