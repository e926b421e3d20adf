//go:build unit || e2e

package builder

import (
	"time"

	domrental "fleet-booking/internal/domain/rental"
	reqdto "fleet-booking/internal/handler/dto/request"
	"fleet-booking/internal/usecase/commands"
	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalBuilder struct {
	ClientID           uuid.UUID
	ClientName         string
	VehicleID          uuid.UUID
	VehiclePlate       string
	ReservationID      *uuid.UUID
	StartDate          time.Time
	ExpectedReturnDate time.Time
	OdometerOutKm      int64
	Notes              string
}

func NewRentalBuilder() *RentalBuilder {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return &RentalBuilder{
		ClientID:           uuid.New(),
		ClientName:         "Alice Driver",
		VehicleID:          uuid.New(),
		VehiclePlate:       "ABC-1234",
		StartDate:          start,
		ExpectedReturnDate: start.AddDate(0, 0, 4),
		OdometerOutKm:      42000,
	}
}

func (b *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(b)
	return b
}

func (b *RentalBuilder) BuildDomain() (*domrental.Rental, error) {
	return domrental.NewRental(b.ClientID, b.VehicleID, b.ReservationID, b.StartDate, b.ExpectedReturnDate, b.OdometerOutKm, b.Notes)
}

func (b *RentalBuilder) BuildCreateInput() commands.CreateRentalInput {
	return commands.CreateRentalInput{
		ClientID:           b.ClientID,
		VehicleID:          b.VehicleID,
		StartDate:          b.StartDate,
		ExpectedReturnDate: b.ExpectedReturnDate,
		OdometerOutKm:      b.OdometerOutKm,
		Notes:              b.Notes,
	}
}

func (b *RentalBuilder) BuildCreateRequestDTO() reqdto.CreateRentalRequest {
	return reqdto.CreateRentalRequest{
		ClientID:           b.ClientID,
		VehicleID:          b.VehicleID,
		StartDate:          b.StartDate.Format(time.DateOnly),
		ExpectedReturnDate: b.ExpectedReturnDate.Format(time.DateOnly),
		OdometerOutKm:      b.OdometerOutKm,
		Notes:              b.Notes,
	}
}

func (b *RentalBuilder) BuildView() *queries.RentalView {
	now := time.Now()
	return &queries.RentalView{
		ID:                 uuid.New(),
		ClientID:           b.ClientID,
		ClientName:         b.ClientName,
		VehicleID:          b.VehicleID,
		VehiclePlate:       b.VehiclePlate,
		ReservationID:      b.ReservationID,
		StartDate:          b.StartDate,
		ExpectedReturnDate: b.ExpectedReturnDate,
		OdometerOutKm:      b.OdometerOutKm,
		Status:             domrental.StatusOpen.String(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
