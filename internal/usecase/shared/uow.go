package shared

import (
	"context"
	"time"

	"fleet-booking/internal/domain/booking"
	"fleet-booking/internal/domain/client"
	"fleet-booking/internal/domain/maintenance"
	"fleet-booking/internal/domain/rental"
	"fleet-booking/internal/domain/reservation"
	"fleet-booking/internal/domain/vehicle"

	"github.com/google/uuid"
)

// UnitOfWork scopes every write-side command to one transaction so a
// failed booking leaves no partial state: no orphaned interval, no
// half-created record.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Intervals() IntervalRepository
	Rentals() RentalRepository
	Reservations() ReservationRepository
	Maintenance() MaintenanceRepository
	Vehicles() VehicleRepository
	Clients() ClientRepository
}

// IntervalRepository is the single source of truth for vehicle occupancy.
// Reserve must be atomic per vehicle: the overlap check and the insert
// are one storage-layer operation, never a read-then-write.
type IntervalRepository interface {
	Reserve(ctx context.Context, iv booking.Interval) error
	ReleaseBySource(ctx context.Context, kind booking.Kind, sourceID uuid.UUID) error
	Shrink(ctx context.Context, kind booking.Kind, sourceID uuid.UUID, newEnd time.Time) error
	FindByVehicle(ctx context.Context, vehicleID uuid.UUID, start, end time.Time) ([]booking.Interval, error)
}

type RentalRepository interface {
	Create(ctx context.Context, r *rental.Rental) error
	FindByID(ctx context.Context, id uuid.UUID) (*rental.Rental, error)
	FindOpenByReservation(ctx context.Context, reservationID uuid.UUID) (*rental.Rental, error)
	Update(ctx context.Context, r *rental.Rental) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, r *reservation.Reservation) error
}

type MaintenanceRepository interface {
	Create(ctx context.Context, e *maintenance.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*maintenance.Event, error)
	Update(ctx context.Context, e *maintenance.Event) error
}

type VehicleRepository interface {
	Create(ctx context.Context, v *vehicle.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	Update(ctx context.Context, v *vehicle.Vehicle) error
}

type ClientRepository interface {
	Create(ctx context.Context, c *client.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
	Update(ctx context.Context, c *client.Client) error
}
