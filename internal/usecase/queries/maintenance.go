package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type MaintenanceView struct {
	ID            uuid.UUID  `json:"id"`
	VehicleID     uuid.UUID  `json:"vehicleId"`
	VehiclePlate  string     `json:"vehiclePlate"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	PerformedDate *time.Time `json:"performedDate,omitempty"`
	OdometerKm    int64      `json:"odometerKm"`
	CostCents     int64      `json:"costCents"`
	Notes         *string    `json:"notes,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type MaintenanceFilter struct {
	Status    *string
	VehicleID *uuid.UUID
}

type MaintenanceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MaintenanceView, error)
	List(ctx context.Context, filter MaintenanceFilter) ([]*MaintenanceView, error)
}
