package maintenance

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeCost       = errors.New("maintenance cost cannot be negative")
	ErrNegativeOdometer   = errors.New("maintenance odometer cannot be negative")
	ErrPerformedTooEarly  = errors.New("performed date is before the scheduled date")
	ErrVehicleReassigning = errors.New("maintenance vehicle cannot be reassigned")
)

// Event is a service window on a vehicle's calendar. The vehicle it is
// scheduled against is fixed at creation.
type Event struct {
	id            uuid.UUID
	vehicleID     uuid.UUID
	scheduledDate *time.Time
	performedDate *time.Time
	odometerKm    int64
	costCents     int64
	notes         string
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

// Schedule validates against the SCHEDULED row of the field table:
// scheduled date required and not before today, no performed date yet.
func Schedule(vehicleID uuid.UUID, scheduledDate *time.Time, odometerKm, costCents int64, notes string, today time.Time) (*Event, error) {
	if odometerKm < 0 {
		return nil, ErrNegativeOdometer
	}
	if costCents < 0 {
		return nil, ErrNegativeCost
	}
	if err := validateFields(StatusScheduled, scheduledDate, nil, today); err != nil {
		return nil, err
	}
	return &Event{
		id:            uuid.New(),
		vehicleID:     vehicleID,
		scheduledDate: scheduledDate,
		odometerKm:    odometerKm,
		costCents:     costCents,
		notes:         notes,
		status:        StatusScheduled,
	}, nil
}

func ReconstructEvent(
	id, vehicleID uuid.UUID,
	scheduledDate, performedDate *time.Time,
	odometerKm, costCents int64,
	notes string,
	status Status,
	createdAt, updatedAt time.Time,
) *Event {
	return &Event{
		id:            id,
		vehicleID:     vehicleID,
		scheduledDate: scheduledDate,
		performedDate: performedDate,
		odometerKm:    odometerKm,
		costCents:     costCents,
		notes:         notes,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Start locks scheduled-date edits; the interval is untouched.
func (e *Event) Start() error {
	next, err := transition(e.status, eventStart)
	if err != nil {
		return err
	}
	e.status = next
	return nil
}

func (e *Event) Complete(performedDate time.Time, odometerKm, costCents int64) error {
	next, err := transition(e.status, eventComplete)
	if err != nil {
		return err
	}
	if e.scheduledDate != nil && performedDate.Before(*e.scheduledDate) {
		return ErrPerformedTooEarly
	}
	if odometerKm < 0 {
		return ErrNegativeOdometer
	}
	if costCents < 0 {
		return ErrNegativeCost
	}
	d := performedDate
	if err := validateFields(next, e.scheduledDate, &d, time.Time{}); err != nil {
		return err
	}
	e.status = next
	e.performedDate = &d
	e.odometerKm = odometerKm
	e.costCents = costCents
	return nil
}

func (e *Event) Cancel() error {
	next, err := transition(e.status, eventCancel)
	if err != nil {
		return err
	}
	e.status = next
	return nil
}

// Reschedule moves the service window while it is still editable.
func (e *Event) Reschedule(scheduledDate time.Time, today time.Time) error {
	if e.status != StatusScheduled {
		return ErrScheduledDateLocked
	}
	d := scheduledDate
	if err := validateFields(e.status, &d, nil, today); err != nil {
		return err
	}
	e.scheduledDate = &d
	return nil
}

func (e *Event) IsScheduled() bool { return e.status == StatusScheduled }

func (e *Event) ID() uuid.UUID             { return e.id }
func (e *Event) VehicleID() uuid.UUID      { return e.vehicleID }
func (e *Event) ScheduledDate() *time.Time { return e.scheduledDate }
func (e *Event) PerformedDate() *time.Time { return e.performedDate }
func (e *Event) OdometerKm() int64         { return e.odometerKm }
func (e *Event) CostCents() int64          { return e.costCents }
func (e *Event) Notes() string             { return e.notes }
func (e *Event) Status() Status            { return e.status }
func (e *Event) CreatedAt() time.Time      { return e.createdAt }
func (e *Event) UpdatedAt() time.Time      { return e.updatedAt }
