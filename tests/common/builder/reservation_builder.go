//go:build unit || e2e

package builder

import (
	"time"

	domreservation "fleet-booking/internal/domain/reservation"
	reqdto "fleet-booking/internal/handler/dto/request"
	"fleet-booking/internal/usecase/commands"
	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ClientID           uuid.UUID
	ClientName         string
	VehicleID          uuid.UUID
	VehiclePlate       string
	ReservedDate       time.Time
	ExpectedRentalDate time.Time
	DepositCents       int64
}

func NewReservationBuilder() *ReservationBuilder {
	reserved := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ClientID:           uuid.New(),
		ClientName:         "Alice Driver",
		VehicleID:          uuid.New(),
		VehiclePlate:       "ABC-1234",
		ReservedDate:       reserved,
		ExpectedRentalDate: reserved.AddDate(0, 0, 7),
		DepositCents:       50_00,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	return domreservation.NewReservation(b.ClientID, b.VehicleID, b.ReservedDate, b.ExpectedRentalDate, b.DepositCents)
}

func (b *ReservationBuilder) BuildCreateInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ClientID:           b.ClientID,
		VehicleID:          b.VehicleID,
		ReservedDate:       b.ReservedDate,
		ExpectedRentalDate: b.ExpectedRentalDate,
		DepositCents:       b.DepositCents,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ClientID:           b.ClientID,
		VehicleID:          b.VehicleID,
		ReservedDate:       b.ReservedDate.Format(time.DateOnly),
		ExpectedRentalDate: b.ExpectedRentalDate.Format(time.DateOnly),
		DepositCents:       b.DepositCents,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	now := time.Now()
	return &queries.ReservationView{
		ID:                 uuid.New(),
		ClientID:           b.ClientID,
		ClientName:         b.ClientName,
		VehicleID:          b.VehicleID,
		VehiclePlate:       b.VehiclePlate,
		ReservedDate:       b.ReservedDate,
		ExpectedRentalDate: b.ExpectedRentalDate,
		DepositCents:       b.DepositCents,
		Status:             domreservation.StatusPending.String(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
