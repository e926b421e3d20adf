//go:build unit || e2e

package builder

import (
	"time"

	dommaintenance "fleet-booking/internal/domain/maintenance"
	reqdto "fleet-booking/internal/handler/dto/request"
	"fleet-booking/internal/usecase/commands"
	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type MaintenanceBuilder struct {
	VehicleID     uuid.UUID
	VehiclePlate  string
	ScheduledDate time.Time
	Today         time.Time
	OdometerKm    int64
	CostCents     int64
	Notes         string
}

func NewMaintenanceBuilder() *MaintenanceBuilder {
	today := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	return &MaintenanceBuilder{
		VehicleID:     uuid.New(),
		VehiclePlate:  "ABC-1234",
		ScheduledDate: today.AddDate(0, 0, 3),
		Today:         today,
		OdometerKm:    52000,
		CostCents:     120_00,
		Notes:         "oil change",
	}
}

func (b *MaintenanceBuilder) With(mutate func(*MaintenanceBuilder)) *MaintenanceBuilder {
	mutate(b)
	return b
}

func (b *MaintenanceBuilder) BuildDomain() (*dommaintenance.Event, error) {
	d := b.ScheduledDate
	return dommaintenance.Schedule(b.VehicleID, &d, b.OdometerKm, b.CostCents, b.Notes, b.Today)
}

func (b *MaintenanceBuilder) BuildScheduleInput() commands.ScheduleMaintenanceInput {
	return commands.ScheduleMaintenanceInput{
		VehicleID:     b.VehicleID,
		ScheduledDate: b.ScheduledDate,
		OdometerKm:    b.OdometerKm,
		CostCents:     b.CostCents,
		Notes:         b.Notes,
	}
}

func (b *MaintenanceBuilder) BuildScheduleRequestDTO() reqdto.ScheduleMaintenanceRequest {
	return reqdto.ScheduleMaintenanceRequest{
		VehicleID:     b.VehicleID,
		ScheduledDate: b.ScheduledDate.Format(time.DateOnly),
		OdometerKm:    b.OdometerKm,
		CostCents:     b.CostCents,
		Notes:         b.Notes,
	}
}

func (b *MaintenanceBuilder) BuildView() *queries.MaintenanceView {
	now := time.Now()
	d := b.ScheduledDate
	notes := b.Notes
	return &queries.MaintenanceView{
		ID:            uuid.New(),
		VehicleID:     b.VehicleID,
		VehiclePlate:  b.VehiclePlate,
		ScheduledDate: &d,
		OdometerKm:    b.OdometerKm,
		CostCents:     b.CostCents,
		Notes:         &notes,
		Status:        dommaintenance.StatusScheduled.String(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
