package readstore

import (
	"context"
	"fmt"

	"fleet-booking/internal/infra"
	"fleet-booking/internal/infra/repository"
	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MaintenanceReadStore struct {
	db repository.DBTX
}

func NewMaintenanceReadStore(db repository.DBTX) *MaintenanceReadStore {
	return &MaintenanceReadStore{db: db}
}

const maintenanceViewSelect = `
	SELECT m.id, m.vehicle_id, v.plate AS vehicle_plate, m.scheduled_date, m.performed_date,
	       m.odometer_km, m.cost_cents, m.notes, m.status, m.created_at, m.updated_at
	FROM maintenance_events m
	JOIN vehicles v ON v.id = m.vehicle_id`

func (r *MaintenanceReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.MaintenanceView, error) {
	rows, err := r.db.Query(ctx, maintenanceViewSelect+` WHERE m.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find maintenance view", err)
	}
	views, err := scanMaintenanceViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("maintenance event not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return views[0], nil
}

func (r *MaintenanceReadStore) List(ctx context.Context, filter queries.MaintenanceFilter) ([]*queries.MaintenanceView, error) {
	query := maintenanceViewSelect + ` WHERE true`
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND m.status = $%d", len(args))
	}
	if filter.VehicleID != nil {
		args = append(args, *filter.VehicleID)
		query += fmt.Sprintf(" AND m.vehicle_id = $%d", len(args))
	}
	query += " ORDER BY m.scheduled_date DESC NULLS LAST, m.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list maintenance events", err)
	}
	return scanMaintenanceViews(rows)
}

func scanMaintenanceViews(rows pgx.Rows) ([]*queries.MaintenanceView, error) {
	defer rows.Close()

	var views []*queries.MaintenanceView
	for rows.Next() {
		var v queries.MaintenanceView
		err := rows.Scan(&v.ID, &v.VehicleID, &v.VehiclePlate, &v.ScheduledDate, &v.PerformedDate,
			&v.OdometerKm, &v.CostCents, &v.Notes, &v.Status, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan maintenance view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read maintenance views", err)
	}
	return views, nil
}
