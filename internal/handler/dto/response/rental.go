package response

import (
	"time"

	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RentalResponse struct {
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

func FromRentalView(rm *queries.RentalView) *RentalResponse {
	var resp RentalResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromRentalViews(rms []*queries.RentalView) []*RentalResponse {
	resp := make([]*RentalResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromRentalView(rm)
	}
	return resp
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
