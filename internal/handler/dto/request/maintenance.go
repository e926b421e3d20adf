package request

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleMaintenanceRequest struct {
	VehicleID     uuid.UUID `json:"vehicleId" binding:"required"`
	ScheduledDate string    `json:"scheduledDate" binding:"required"`
	OdometerKm    int64     `json:"odometerKm"`
	CostCents     int64     `json:"costCents"`
	Notes         string    `json:"notes"`
}

func (r ScheduleMaintenanceRequest) Date() (time.Time, error) {
	return time.Parse(time.DateOnly, r.ScheduledDate)
}

type RescheduleMaintenanceRequest struct {
	ScheduledDate string `json:"scheduledDate" binding:"required"`
}

func (r RescheduleMaintenanceRequest) Date() (time.Time, error) {
	return time.Parse(time.DateOnly, r.ScheduledDate)
}

type CompleteMaintenanceRequest struct {
	PerformedDate string `json:"performedDate" binding:"required"`
	OdometerKm    int64  `json:"odometerKm" binding:"required"`
	CostCents     int64  `json:"costCents"`
}

func (r CompleteMaintenanceRequest) Date() (time.Time, error) {
	return time.Parse(time.DateOnly, r.PerformedDate)
}
