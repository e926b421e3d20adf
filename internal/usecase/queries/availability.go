package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AvailableVehicleView is one fleet vehicle free for a requested window.
type AvailableVehicleView struct {
	ID    uuid.UUID `json:"id"`
	Plate string    `json:"plate"`
	Make  string    `json:"make"`
	Model string    `json:"model"`
}

// AvailabilityQueries answers "which vehicles are free for [start, end]".
// A pure read against the interval store: callers poll it while adjusting
// dates, so it must never write. start == end is a valid single-day
// request; disabled vehicles are never returned.
type AvailabilityQueries interface {
	Available(ctx context.Context, start, end time.Time) ([]*AvailableVehicleView, error)
}
