package repository

import (
	"context"
	"time"

	"fleet-booking/internal/domain/vehicle"
	"fleet-booking/internal/infra"

	"github.com/google/uuid"
)

type VehicleRepository struct {
	db DBTX
}

func NewVehicleRepository(db DBTX) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, plate, make, model, year, enabled, odometer_km, service_interval_km,
		                      last_service_odometer_km, last_service_date, insurance_expiry, inspection_expiry)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		v.ID(),
		v.Plate(),
		v.Make(),
		v.Model(),
		v.Year(),
		v.Enabled(),
		v.OdometerKm(),
		v.ServiceIntervalKm(),
		v.LastServiceOdometerKm(),
		v.LastServiceDate(),
		v.InsuranceExpiry(),
		v.InspectionExpiry(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create vehicle", err)
	}
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	query := `
		SELECT id, plate, make, model, year, enabled, odometer_km, service_interval_km,
		       last_service_odometer_km, last_service_date, insurance_expiry, inspection_expiry,
		       created_at, updated_at
		FROM vehicles
		WHERE id = $1
	`
	var (
		vID                                                  uuid.UUID
		plate, makeName, model                               string
		year                                                 int
		enabled                                              bool
		odometerKm, serviceIntervalKm, lastServiceOdometerKm int64
		lastServiceDate, insuranceExpiry, inspectionExpiry   *time.Time
		createdAt, updatedAt                                 time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&vID, &plate, &makeName, &model, &year, &enabled, &odometerKm, &serviceIntervalKm,
		&lastServiceOdometerKm, &lastServiceDate, &insuranceExpiry, &inspectionExpiry,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find vehicle", err)
	}
	return vehicle.ReconstructVehicle(vID, plate, makeName, model, year, enabled,
		odometerKm, serviceIntervalKm, lastServiceOdometerKm,
		lastServiceDate, insuranceExpiry, inspectionExpiry, createdAt, updatedAt), nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		UPDATE vehicles
		SET plate = $2,
		    make = $3,
		    model = $4,
		    year = $5,
		    enabled = $6,
		    odometer_km = $7,
		    service_interval_km = $8,
		    last_service_odometer_km = $9,
		    last_service_date = $10,
		    insurance_expiry = $11,
		    inspection_expiry = $12,
		    updated_at = now()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		v.ID(),
		v.Plate(),
		v.Make(),
		v.Model(),
		v.Year(),
		v.Enabled(),
		v.OdometerKm(),
		v.ServiceIntervalKm(),
		v.LastServiceOdometerKm(),
		v.LastServiceDate(),
		v.InsuranceExpiry(),
		v.InspectionExpiry(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update vehicle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}
