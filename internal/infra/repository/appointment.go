package repository

import (
	"context"
	"time"

	"dealer-portal/internal/domain/appointment"
	"dealer-portal/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AppointmentRepository struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

const createAppointmentSQL = `
INSERT INTO appointments (id, dealer_id, scheduled_start, status, customer_label, vehicle_label, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING id`

func (r *AppointmentRepository) Create(ctx context.Context, a *appointment.Appointment) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createAppointmentSQL,
		a.ID(), a.DealerID(), a.ScheduledStart(), a.Status().String(),
		a.CustomerLabel(), a.VehicleLabel(), a.Notes(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}

const findAppointmentByIDSQL = `
SELECT id, dealer_id, scheduled_start, status, customer_label, vehicle_label, notes, created_at, updated_at
FROM appointments
WHERE id = $1`

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	row := r.db.QueryRow(ctx, findAppointmentByIDSQL, id)
	a, err := scanAppointment(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return a, nil
}

const updateAppointmentStatusSQL = `
UPDATE appointments SET status = $2, updated_at = now()
WHERE id = $1`

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status appointment.Status) error {
	tag, err := r.db.Exec(ctx, updateAppointmentStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

const listAppointmentsSQL = `
SELECT id, dealer_id, scheduled_start, status, customer_label, vehicle_label, notes, created_at, updated_at
FROM appointments
WHERE dealer_id = $1 AND scheduled_start >= $2 AND scheduled_start < $3
ORDER BY scheduled_start`

// ListByDealerBetween returns the dealer's appointments with a scheduled
// start inside [from, to).
func (r *AppointmentRepository) ListByDealerBetween(ctx context.Context, dealerID uuid.UUID, from, to time.Time) ([]*appointment.Appointment, error) {
	rows, err := r.db.Query(ctx, listAppointmentsSQL, dealerID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var appts []*appointment.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		appts = append(appts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", err)
	}
	return appts, nil
}

func scanAppointment(row pgx.Row) (*appointment.Appointment, error) {
	var (
		id, dealerID                               uuid.UUID
		scheduledStart, createdAt, updatedAt       time.Time
		status, customerLabel, vehicleLabel, notes string
	)
	err := row.Scan(&id, &dealerID, &scheduledStart, &status, &customerLabel, &vehicleLabel, &notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return appointment.ReconstructAppointment(
		id, dealerID, scheduledStart, appointment.Status(status),
		customerLabel, vehicleLabel, notes, createdAt, updatedAt,
	), nil
}
