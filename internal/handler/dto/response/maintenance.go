package response

import (
	"time"

	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MaintenanceResponse struct {
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

func FromMaintenanceView(rm *queries.MaintenanceView) *MaintenanceResponse {
	var resp MaintenanceResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromMaintenanceViews(rms []*queries.MaintenanceView) []*MaintenanceResponse {
	resp := make([]*MaintenanceResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromMaintenanceView(rm)
	}
	return resp
}
