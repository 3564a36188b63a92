//go:build unit

package builder

import (
	"time"

	"dealer-portal/internal/domain/appointment"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID             uuid.UUID
	DealerID       uuid.UUID
	ScheduledStart time.Time
	Status         appointment.Status
	CustomerLabel  string
	VehicleLabel   string
	Notes          string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:             uuid.New(),
		DealerID:       uuid.New(),
		ScheduledStart: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		Status:         appointment.StatusScheduled,
		CustomerLabel:  "Tran Thi B",
		VehicleLabel:   "VF 9 Eco",
	}
}

func (b *AppointmentBuilder) WithDealerID(dealerID uuid.UUID) *AppointmentBuilder {
	b.DealerID = dealerID
	return b
}

func (b *AppointmentBuilder) WithScheduledStart(t time.Time) *AppointmentBuilder {
	b.ScheduledStart = t
	return b
}

func (b *AppointmentBuilder) WithStatus(status appointment.Status) *AppointmentBuilder {
	b.Status = status
	return b
}

func (b *AppointmentBuilder) BuildDomain() *appointment.Appointment {
	created := b.ScheduledStart.Add(-24 * time.Hour)
	return appointment.ReconstructAppointment(
		b.ID,
		b.DealerID,
		b.ScheduledStart,
		b.Status,
		b.CustomerLabel,
		b.VehicleLabel,
		b.Notes,
		created,
		created,
	)
}
