package readstore

import (
	"context"

	"fleet-booking/internal/infra"
	"fleet-booking/internal/infra/repository"
	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VehicleReadStore struct {
	db repository.DBTX
}

func NewVehicleReadStore(db repository.DBTX) *VehicleReadStore {
	return &VehicleReadStore{db: db}
}

// maintenance_due is computed in SQL with the same expression the domain
// entity uses, so list views and the scan job agree with command-side checks.
const vehicleViewSelect = `
	SELECT id, plate, make, model, year, enabled, odometer_km, service_interval_km,
	       last_service_odometer_km, last_service_date, insurance_expiry, inspection_expiry,
	       (odometer_km - last_service_odometer_km) >= service_interval_km AS maintenance_due,
	       created_at, updated_at
	FROM vehicles`

func (r *VehicleReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	rows, err := r.db.Query(ctx, vehicleViewSelect+` WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find vehicle view", err)
	}
	views, err := scanVehicleViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("vehicle not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return views[0], nil
}

func (r *VehicleReadStore) List(ctx context.Context) ([]*queries.VehicleView, error) {
	rows, err := r.db.Query(ctx, vehicleViewSelect+` ORDER BY plate`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	return scanVehicleViews(rows)
}

func (r *VehicleReadStore) ListMaintenanceDue(ctx context.Context) ([]*queries.VehicleView, error) {
	query := vehicleViewSelect + `
	WHERE enabled
	  AND (odometer_km - last_service_odometer_km) >= service_interval_km
	ORDER BY plate`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list maintenance-due vehicles", err)
	}
	return scanVehicleViews(rows)
}

func scanVehicleViews(rows pgx.Rows) ([]*queries.VehicleView, error) {
	defer rows.Close()

	var views []*queries.VehicleView
	for rows.Next() {
		var v queries.VehicleView
		err := rows.Scan(&v.ID, &v.Plate, &v.Make, &v.Model, &v.Year, &v.Enabled,
			&v.OdometerKm, &v.ServiceIntervalKm, &v.LastServiceOdometerKm,
			&v.LastServiceDate, &v.InsuranceExpiry, &v.InspectionExpiry,
			&v.MaintenanceDue, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read vehicle views", err)
	}
	return views, nil
}
