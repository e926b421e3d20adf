package response

import (
	"time"

	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
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

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	resp := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromReservationView(rm)
	}
	return resp
}

type ConfirmReservationResponse struct {
	RentalID uuid.UUID `json:"rentalId"`
}
