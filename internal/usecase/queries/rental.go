package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type RentalView struct {
	ID                 uuid.UUID  `json:"id"`
	ClientID           uuid.UUID  `json:"clientId"`
	ClientName         string     `json:"clientName"`
	VehicleID          uuid.UUID  `json:"vehicleId"`
	VehiclePlate       string     `json:"vehiclePlate"`
	ReservationID      *uuid.UUID `json:"reservationId,omitempty"`
	StartDate          time.Time  `json:"startDate"`
	ExpectedReturnDate time.Time  `json:"expectedReturnDate"`
	ActualReturnDate   *time.Time `json:"actualReturnDate,omitempty"`
	OdometerOutKm      int64      `json:"odometerOutKm"`
	OdometerInKm       *int64     `json:"odometerInKm,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type RentalFilter struct {
	Status   *string
	DateFrom *time.Time
	DateTo   *time.Time
}

type RentalQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	List(ctx context.Context, filter RentalFilter) ([]*RentalView, error)
}
