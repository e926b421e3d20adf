package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type VehicleView struct {
	ID                    uuid.UUID  `json:"id"`
	Plate                 string     `json:"plate"`
	Make                  string     `json:"make"`
	Model                 string     `json:"model"`
	Year                  int        `json:"year"`
	Enabled               bool       `json:"enabled"`
	OdometerKm            int64      `json:"odometerKm"`
	ServiceIntervalKm     int64      `json:"serviceIntervalKm"`
	LastServiceOdometerKm int64      `json:"lastServiceOdometerKm"`
	LastServiceDate       *time.Time `json:"lastServiceDate,omitempty"`
	InsuranceExpiry       *time.Time `json:"insuranceExpiry,omitempty"`
	InspectionExpiry      *time.Time `json:"inspectionExpiry,omitempty"`
	MaintenanceDue        bool       `json:"maintenanceDue"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

type VehicleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	List(ctx context.Context) ([]*VehicleView, error)
	// ListMaintenanceDue feeds the periodic maintenance scan.
	ListMaintenanceDue(ctx context.Context) ([]*VehicleView, error)
}
