package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStartInPast       = errors.New("appointment cannot start in the past")
)

// Every test drive occupies a fixed one-hour slot; the end time is derived,
// never stored.
const Duration = 60 * time.Minute

type Appointment struct {
	id             uuid.UUID
	dealerID       uuid.UUID
	scheduledStart time.Time
	status         Status
	customerLabel  string
	vehicleLabel   string
	notes          string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewAppointment(dealerID uuid.UUID, scheduledStart time.Time, customerLabel, vehicleLabel, notes string, now time.Time) (*Appointment, error) {
	if scheduledStart.Before(now) {
		return nil, ErrStartInPast
	}

	return &Appointment{
		id:             uuid.New(),
		dealerID:       dealerID,
		scheduledStart: scheduledStart,
		status:         StatusScheduled,
		customerLabel:  customerLabel,
		vehicleLabel:   vehicleLabel,
		notes:          notes,
	}, nil
}

func ReconstructAppointment(
	id, dealerID uuid.UUID,
	scheduledStart time.Time,
	status Status,
	customerLabel, vehicleLabel, notes string,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:             id,
		dealerID:       dealerID,
		scheduledStart: scheduledStart,
		status:         status,
		customerLabel:  customerLabel,
		vehicleLabel:   vehicleLabel,
		notes:          notes,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Transition moves the appointment to next, enforcing the lifecycle:
// scheduled -> confirmed -> completed, with cancellation allowed from any
// non-terminal state.
func (a *Appointment) Transition(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}

	switch a.status {
	case StatusScheduled:
		if next != StatusConfirmed && next != StatusCancelled {
			return ErrInvalidTransition
		}
	case StatusConfirmed:
		if next != StatusCompleted && next != StatusCancelled {
			return ErrInvalidTransition
		}
	case StatusCompleted, StatusCancelled:
		return ErrInvalidTransition
	}

	a.status = next
	return nil
}

func (a *Appointment) ID() uuid.UUID             { return a.id }
func (a *Appointment) DealerID() uuid.UUID       { return a.dealerID }
func (a *Appointment) ScheduledStart() time.Time { return a.scheduledStart }
func (a *Appointment) ScheduledEnd() time.Time   { return a.scheduledStart.Add(Duration) }
func (a *Appointment) Status() Status            { return a.status }
func (a *Appointment) CustomerLabel() string     { return a.customerLabel }
func (a *Appointment) VehicleLabel() string      { return a.vehicleLabel }
func (a *Appointment) Notes() string             { return a.notes }
func (a *Appointment) CreatedAt() time.Time      { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time      { return a.updatedAt }
