package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind     = errors.New("invalid booking kind")
	ErrEndBeforeStart  = errors.New("interval end date is before its start date")
	ErrMissingVehicle  = errors.New("interval requires a vehicle")
	ErrMissingSource   = errors.New("interval requires an owning source")
	ErrOverlap         = errors.New("interval overlaps an existing booking")
	ErrShrinkPastStart = errors.New("cannot shrink interval past its start date")
)

// Kind tags which lifecycle owns an interval. All three kinds consume the
// same per-vehicle timeline; overlap checks ignore the tag.
type Kind string

const (
	KindRental      Kind = "RENTAL"
	KindReservation Kind = "RESERVATION"
	KindMaintenance Kind = "MAINTENANCE"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindRental, KindReservation, KindMaintenance:
		return true
	default:
		return false
	}
}

// Interval is a span of days a vehicle is unavailable for new bookings.
// A nil end means the owning rental or maintenance is still open and the
// vehicle is blocked for any future request until it closes.
type Interval struct {
	id        uuid.UUID
	vehicleID uuid.UUID
	kind      Kind
	sourceID  uuid.UUID
	start     time.Time
	end       *time.Time
}

func NewInterval(vehicleID uuid.UUID, kind Kind, sourceID uuid.UUID, start time.Time, end *time.Time) (Interval, error) {
	if vehicleID == uuid.Nil {
		return Interval{}, ErrMissingVehicle
	}
	if sourceID == uuid.Nil {
		return Interval{}, ErrMissingSource
	}
	if !kind.IsValid() {
		return Interval{}, ErrInvalidKind
	}
	if end != nil && end.Before(start) {
		return Interval{}, ErrEndBeforeStart
	}
	return Interval{
		id:        uuid.New(),
		vehicleID: vehicleID,
		kind:      kind,
		sourceID:  sourceID,
		start:     start,
		end:       end,
	}, nil
}

func ReconstructInterval(id, vehicleID uuid.UUID, kind Kind, sourceID uuid.UUID, start time.Time, end *time.Time) Interval {
	return Interval{
		id:        id,
		vehicleID: vehicleID,
		kind:      kind,
		sourceID:  sourceID,
		start:     start,
		end:       end,
	}
}

func (iv Interval) ID() uuid.UUID        { return iv.id }
func (iv Interval) VehicleID() uuid.UUID { return iv.vehicleID }
func (iv Interval) Kind() Kind           { return iv.kind }
func (iv Interval) SourceID() uuid.UUID  { return iv.sourceID }
func (iv Interval) Start() time.Time     { return iv.start }
func (iv Interval) End() *time.Time      { return iv.end }

func (iv Interval) IsOpenEnded() bool {
	return iv.end == nil
}

// OverlapsWindow reports whether the interval collides with the closed day
// range [start, end]. Boundaries are inclusive on both sides: a rental that
// ends the day another one starts is still a collision, so same-day
// handover is rejected.
func (iv Interval) OverlapsWindow(start, end time.Time) bool {
	if end.Before(start) {
		return false
	}
	if iv.end == nil {
		// Open-ended intervals block everything from their start onward.
		return !end.Before(iv.start)
	}
	return !iv.start.After(end) && !start.After(*iv.end)
}

func (iv Interval) Overlaps(other Interval) bool {
	if other.end == nil {
		if iv.end == nil {
			return true
		}
		return other.OverlapsWindow(iv.start, *iv.end)
	}
	return iv.OverlapsWindow(other.start, *other.end)
}
