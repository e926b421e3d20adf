package request

import (
	"time"

	"github.com/google/uuid"
)

// Booking windows are whole days, so every date travels as "2006-01-02".

type CreateRentalRequest struct {
	ClientID           uuid.UUID `json:"clientId" binding:"required"`
	VehicleID          uuid.UUID `json:"vehicleId" binding:"required"`
	StartDate          string    `json:"startDate" binding:"required"`
	ExpectedReturnDate string    `json:"expectedReturnDate" binding:"required"`
	OdometerOutKm      int64     `json:"odometerOutKm"`
	Notes              string    `json:"notes"`
}

func (r CreateRentalRequest) Dates() (start, expected time.Time, err error) {
	start, err = time.Parse(time.DateOnly, r.StartDate)
	if err != nil {
		return
	}
	expected, err = time.Parse(time.DateOnly, r.ExpectedReturnDate)
	return
}

type CloseRentalRequest struct {
	ActualReturnDate string `json:"actualReturnDate" binding:"required"`
	OdometerInKm     int64  `json:"odometerInKm" binding:"required"`
}

func (r CloseRentalRequest) Date() (time.Time, error) {
	return time.Parse(time.DateOnly, r.ActualReturnDate)
}
