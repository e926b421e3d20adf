package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ClientID           uuid.UUID `json:"clientId" binding:"required"`
	VehicleID          uuid.UUID `json:"vehicleId" binding:"required"`
	ReservedDate       string    `json:"reservedDate" binding:"required"`
	ExpectedRentalDate string    `json:"expectedRentalDate" binding:"required"`
	DepositCents       int64     `json:"depositCents"`
}

func (r CreateReservationRequest) Dates() (reserved, expected time.Time, err error) {
	reserved, err = time.Parse(time.DateOnly, r.ReservedDate)
	if err != nil {
		return
	}
	expected, err = time.Parse(time.DateOnly, r.ExpectedRentalDate)
	return
}
