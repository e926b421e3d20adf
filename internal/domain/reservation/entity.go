package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDates    = errors.New("reservation date must not be after the expected rental date")
	ErrNegativeDeposit = errors.New("deposit cannot be negative")
)

// Reservation is an advance hold on a vehicle for a known window. Unlike
// an open rental it always has an upper bound: the day the client is
// expected to pick the vehicle up.
type Reservation struct {
	id                 uuid.UUID
	clientID           uuid.UUID
	vehicleID          uuid.UUID
	reservedDate       time.Time
	expectedRentalDate time.Time
	depositCents       int64
	status             Status
	createdAt          time.Time
	updatedAt          time.Time
}

func NewReservation(clientID, vehicleID uuid.UUID, reservedDate, expectedRentalDate time.Time, depositCents int64) (*Reservation, error) {
	if reservedDate.After(expectedRentalDate) {
		return nil, ErrInvalidDates
	}
	if depositCents < 0 {
		return nil, ErrNegativeDeposit
	}
	return &Reservation{
		id:                 uuid.New(),
		clientID:           clientID,
		vehicleID:          vehicleID,
		reservedDate:       reservedDate,
		expectedRentalDate: expectedRentalDate,
		depositCents:       depositCents,
		status:             StatusPending,
	}, nil
}

func ReconstructReservation(
	id, clientID, vehicleID uuid.UUID,
	reservedDate, expectedRentalDate time.Time,
	depositCents int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                 id,
		clientID:           clientID,
		vehicleID:          vehicleID,
		reservedDate:       reservedDate,
		expectedRentalDate: expectedRentalDate,
		depositCents:       depositCents,
		status:             status,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Confirm promotes the hold. Exactly one rental descends from a confirmed
// reservation; firing confirm twice fails on the state machine, so a
// second rental can never be created.
func (r *Reservation) Confirm() error {
	next, err := transition(r.status, eventConfirm)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// Complete is driven by the derived rental's closure.
func (r *Reservation) Complete() error {
	next, err := transition(r.status, eventComplete)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

func (r *Reservation) Cancel() error {
	next, err := transition(r.status, eventCancel)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

func (r *Reservation) IsPending() bool   { return r.status == StatusPending }
func (r *Reservation) IsConfirmed() bool { return r.status == StatusConfirmed }

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) ClientID() uuid.UUID           { return r.clientID }
func (r *Reservation) VehicleID() uuid.UUID          { return r.vehicleID }
func (r *Reservation) ReservedDate() time.Time       { return r.reservedDate }
func (r *Reservation) ExpectedRentalDate() time.Time { return r.expectedRentalDate }
func (r *Reservation) DepositCents() int64           { return r.depositCents }
func (r *Reservation) Status() Status                { return r.status }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time          { return r.updatedAt }
