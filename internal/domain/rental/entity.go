package rental

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDates    = errors.New("rental start date must not be after its expected return date")
	ErrReturnTooEarly  = errors.New("actual return date is before the rental start date")
	ErrInvalidOdometer = errors.New("odometer in must not be less than odometer out")
)

// Rental is a vehicle that is out with a client. While OPEN its actual
// return date is unknown, so the interval it owns stays open-ended and
// blocks the vehicle until closure.
type Rental struct {
	id                 uuid.UUID
	clientID           uuid.UUID
	vehicleID          uuid.UUID
	reservationID      *uuid.UUID
	startDate          time.Time
	expectedReturnDate time.Time
	actualReturnDate   *time.Time
	odometerOutKm      int64
	odometerInKm       *int64
	notes              string
	status             Status
	createdAt          time.Time
	updatedAt          time.Time
}

func NewRental(clientID, vehicleID uuid.UUID, reservationID *uuid.UUID, startDate, expectedReturnDate time.Time, odometerOutKm int64, notes string) (*Rental, error) {
	if startDate.After(expectedReturnDate) {
		return nil, ErrInvalidDates
	}
	if odometerOutKm < 0 {
		return nil, ErrInvalidOdometer
	}
	return &Rental{
		id:                 uuid.New(),
		clientID:           clientID,
		vehicleID:          vehicleID,
		reservationID:      reservationID,
		startDate:          startDate,
		expectedReturnDate: expectedReturnDate,
		odometerOutKm:      odometerOutKm,
		notes:              notes,
		status:             StatusOpen,
	}, nil
}

func ReconstructRental(
	id, clientID, vehicleID uuid.UUID,
	reservationID *uuid.UUID,
	startDate, expectedReturnDate time.Time,
	actualReturnDate *time.Time,
	odometerOutKm int64,
	odometerInKm *int64,
	notes string,
	status Status,
	createdAt, updatedAt time.Time,
) *Rental {
	return &Rental{
		id:                 id,
		clientID:           clientID,
		vehicleID:          vehicleID,
		reservationID:      reservationID,
		startDate:          startDate,
		expectedReturnDate: expectedReturnDate,
		actualReturnDate:   actualReturnDate,
		odometerOutKm:      odometerOutKm,
		odometerInKm:       odometerInKm,
		notes:              notes,
		status:             status,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Close records the vehicle's return. Requires OPEN; the interval shrink
// and the vehicle odometer update belong to the caller's transaction.
func (r *Rental) Close(actualReturnDate time.Time, odometerInKm int64) error {
	next, err := transition(r.status, eventClose)
	if err != nil {
		return err
	}
	if actualReturnDate.Before(r.startDate) {
		return ErrReturnTooEarly
	}
	if odometerInKm < r.odometerOutKm {
		return ErrInvalidOdometer
	}
	r.status = next
	d := actualReturnDate
	r.actualReturnDate = &d
	in := odometerInKm
	r.odometerInKm = &in
	return nil
}

// Cancel voids an OPEN rental as if it never happened.
func (r *Rental) Cancel() error {
	next, err := transition(r.status, eventCancel)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

func (r *Rental) IsOpen() bool {
	return r.status == StatusOpen
}

func (r *Rental) ID() uuid.UUID                 { return r.id }
func (r *Rental) ClientID() uuid.UUID           { return r.clientID }
func (r *Rental) VehicleID() uuid.UUID          { return r.vehicleID }
func (r *Rental) ReservationID() *uuid.UUID     { return r.reservationID }
func (r *Rental) StartDate() time.Time          { return r.startDate }
func (r *Rental) ExpectedReturnDate() time.Time { return r.expectedReturnDate }
func (r *Rental) ActualReturnDate() *time.Time  { return r.actualReturnDate }
func (r *Rental) OdometerOutKm() int64          { return r.odometerOutKm }
func (r *Rental) OdometerInKm() *int64          { return r.odometerInKm }
func (r *Rental) Notes() string                 { return r.notes }
func (r *Rental) Status() Status                { return r.status }
func (r *Rental) CreatedAt() time.Time          { return r.createdAt }
func (r *Rental) UpdatedAt() time.Time          { return r.updatedAt }
