package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReservationView struct {
	ID                 uuid.UUID `json:"id"`
	ClientID           uuid.UUID `json:"clientId"`
	ClientName         string    `json:"clientName"`
	VehicleID          uuid.UUID `json:"vehicleId"`
	VehiclePlate       string    `json:"vehiclePlate"`
	ReservedDate       time.Time `json:"reservedDate"`
	ExpectedRentalDate time.Time `json:"expectedRentalDate"`
	DepositCents       int64     `json:"depositCents"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type ReservationFilter struct {
	Status   *string
	DateFrom *time.Time
	DateTo   *time.Time
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
}
