package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	DealerID       *uuid.UUID `json:"dealer_id,omitempty"`
	ScheduledStart time.Time  `json:"scheduled_start" binding:"required"`
	CustomerLabel  string     `json:"customer_label" binding:"required"`
	VehicleLabel   string     `json:"vehicle_label" binding:"required"`
	Notes          string     `json:"notes"`
}

type TransitionAppointmentRequest struct {
	Status string `json:"status" binding:"required"`
}
