package repository

import (
	"context"
	"time"

	"fleet-booking/internal/domain/maintenance"
	"fleet-booking/internal/infra"

	"github.com/google/uuid"
)

type MaintenanceRepository struct {
	db DBTX
}

func NewMaintenanceRepository(db DBTX) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(ctx context.Context, e *maintenance.Event) error {
	query := `
		INSERT INTO maintenance_events (id, vehicle_id, scheduled_date, performed_date, odometer_km, cost_cents, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID(),
		e.VehicleID(),
		e.ScheduledDate(),
		e.PerformedDate(),
		e.OdometerKm(),
		e.CostCents(),
		e.Notes(),
		e.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create maintenance event", err)
	}
	return nil
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.Event, error) {
	query := `
		SELECT id, vehicle_id, scheduled_date, performed_date, odometer_km, cost_cents, notes, status, created_at, updated_at
		FROM maintenance_events
		WHERE id = $1
	`
	var (
		eventID, vehicleID       uuid.UUID
		scheduledDate, performed *time.Time
		odometerKm, costCents    int64
		notes                    *string
		status                   string
		createdAt, updatedAt     time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&eventID, &vehicleID, &scheduledDate, &performed, &odometerKm, &costCents, &notes, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find maintenance event", err)
	}
	n := ""
	if notes != nil {
		n = *notes
	}
	return maintenance.ReconstructEvent(eventID, vehicleID, scheduledDate, performed,
		odometerKm, costCents, n, maintenance.Status(status), createdAt, updatedAt), nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, e *maintenance.Event) error {
	query := `
		UPDATE maintenance_events
		SET scheduled_date = $2,
		    performed_date = $3,
		    odometer_km = $4,
		    cost_cents = $5,
		    notes = $6,
		    status = $7,
		    updated_at = now()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		e.ID(),
		e.ScheduledDate(),
		e.PerformedDate(),
		e.OdometerKm(),
		e.CostCents(),
		e.Notes(),
		e.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update maintenance event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("maintenance event not found", nil, infra.KindNotFound)
	}
	return nil
}
