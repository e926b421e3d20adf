package response

import (
	"time"

	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VehicleResponse struct {
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

func FromVehicleView(rm *queries.VehicleView) *VehicleResponse {
	var resp VehicleResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromVehicleViews(rms []*queries.VehicleView) []*VehicleResponse {
	resp := make([]*VehicleResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromVehicleView(rm)
	}
	return resp
}

type AvailableVehicleResponse struct {
	ID    uuid.UUID `json:"id"`
	Plate string    `json:"plate"`
	Make  string    `json:"make"`
	Model string    `json:"model"`
}

func FromAvailableVehicleViews(rms []*queries.AvailableVehicleView) []*AvailableVehicleResponse {
	resp := make([]*AvailableVehicleResponse, len(rms))
	for i, rm := range rms {
		var r AvailableVehicleResponse
		_ = copier.Copy(&r, rm)
		resp[i] = &r
	}
	return resp
}
