//go:build unit

package commands_test

import (
	"context"
	"time"

	"fleet-booking/internal/domain/booking"
	"fleet-booking/internal/domain/client"
	"fleet-booking/internal/domain/maintenance"
	"fleet-booking/internal/domain/rental"
	"fleet-booking/internal/domain/reservation"
	"fleet-booking/internal/domain/vehicle"
	"fleet-booking/internal/infra"
	"fleet-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW backs the command tests with plain maps. Entities are stored as
// reconstructed copies so a transaction function mutating an aggregate
// only takes effect through an explicit Update, the same contract the
// real repositories give. On error the pre-transaction snapshot is
// restored, mirroring a rollback.
type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{store: newFakeStore()}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	snapshot := u.store.snapshot()
	if err := fn(ctx, &fakeTx{store: u.store}); err != nil {
		u.store.restore(snapshot)
		return err
	}
	return nil
}

type fakeStore struct {
	intervals    map[uuid.UUID]booking.Interval
	rentals      map[uuid.UUID]*rental.Rental
	reservations map[uuid.UUID]*reservation.Reservation
	maintenance  map[uuid.UUID]*maintenance.Event
	vehicles     map[uuid.UUID]*vehicle.Vehicle
	clients      map[uuid.UUID]*client.Client
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		intervals:    map[uuid.UUID]booking.Interval{},
		rentals:      map[uuid.UUID]*rental.Rental{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		maintenance:  map[uuid.UUID]*maintenance.Event{},
		vehicles:     map[uuid.UUID]*vehicle.Vehicle{},
		clients:      map[uuid.UUID]*client.Client{},
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	c := newFakeStore()
	for k, v := range s.intervals {
		c.intervals[k] = v
	}
	for k, v := range s.rentals {
		c.rentals[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.maintenance {
		c.maintenance[k] = v
	}
	for k, v := range s.vehicles {
		c.vehicles[k] = v
	}
	for k, v := range s.clients {
		c.clients[k] = v
	}
	return c
}

func (s *fakeStore) restore(snapshot *fakeStore) {
	s.intervals = snapshot.intervals
	s.rentals = snapshot.rentals
	s.reservations = snapshot.reservations
	s.maintenance = snapshot.maintenance
	s.vehicles = snapshot.vehicles
	s.clients = snapshot.clients
}

func (s *fakeStore) putVehicle(v *vehicle.Vehicle) {
	s.vehicles[v.ID()] = copyVehicle(v)
}

func (s *fakeStore) putClient(c *client.Client) {
	s.clients[c.ID()] = copyClient(c)
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Intervals() shared.IntervalRepository       { return &fakeIntervals{t.store} }
func (t *fakeTx) Rentals() shared.RentalRepository           { return &fakeRentals{t.store} }
func (t *fakeTx) Reservations() shared.ReservationRepository { return &fakeReservations{t.store} }
func (t *fakeTx) Maintenance() shared.MaintenanceRepository  { return &fakeMaintenance{t.store} }
func (t *fakeTx) Vehicles() shared.VehicleRepository         { return &fakeVehicles{t.store} }
func (t *fakeTx) Clients() shared.ClientRepository           { return &fakeClients{t.store} }

type fakeIntervals struct{ store *fakeStore }

func (r *fakeIntervals) Reserve(_ context.Context, iv booking.Interval) error {
	for _, existing := range r.store.intervals {
		if existing.VehicleID() == iv.VehicleID() && existing.Overlaps(iv) {
			return infra.WrapRepoErr("interval overlaps", nil, infra.KindConflict)
		}
	}
	r.store.intervals[iv.ID()] = iv
	return nil
}

func (r *fakeIntervals) ReleaseBySource(_ context.Context, kind booking.Kind, sourceID uuid.UUID) error {
	for id, iv := range r.store.intervals {
		if iv.Kind() == kind && iv.SourceID() == sourceID {
			delete(r.store.intervals, id)
		}
	}
	return nil
}

func (r *fakeIntervals) Shrink(_ context.Context, kind booking.Kind, sourceID uuid.UUID, newEnd time.Time) error {
	for id, iv := range r.store.intervals {
		if iv.Kind() == kind && iv.SourceID() == sourceID {
			end := newEnd
			r.store.intervals[id] = booking.ReconstructInterval(iv.ID(), iv.VehicleID(), iv.Kind(), iv.SourceID(), iv.Start(), &end)
			return nil
		}
	}
	return infra.WrapRepoErr("interval not found", nil, infra.KindNotFound)
}

func (r *fakeIntervals) FindByVehicle(_ context.Context, vehicleID uuid.UUID, start, end time.Time) ([]booking.Interval, error) {
	var out []booking.Interval
	for _, iv := range r.store.intervals {
		if iv.VehicleID() == vehicleID && iv.OverlapsWindow(start, end) {
			out = append(out, iv)
		}
	}
	return out, nil
}

type fakeRentals struct{ store *fakeStore }

func (r *fakeRentals) Create(_ context.Context, rt *rental.Rental) error {
	r.store.rentals[rt.ID()] = copyRental(rt)
	return nil
}

func (r *fakeRentals) FindByID(_ context.Context, id uuid.UUID) (*rental.Rental, error) {
	rt, ok := r.store.rentals[id]
	if !ok {
		return nil, infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	return copyRental(rt), nil
}

func (r *fakeRentals) FindOpenByReservation(_ context.Context, reservationID uuid.UUID) (*rental.Rental, error) {
	for _, rt := range r.store.rentals {
		if rt.ReservationID() != nil && *rt.ReservationID() == reservationID && rt.IsOpen() {
			return copyRental(rt), nil
		}
	}
	return nil, infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
}

func (r *fakeRentals) Update(_ context.Context, rt *rental.Rental) error {
	if _, ok := r.store.rentals[rt.ID()]; !ok {
		return infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	r.store.rentals[rt.ID()] = copyRental(rt)
	return nil
}

func (r *fakeRentals) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.rentals[id]; !ok {
		return infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	delete(r.store.rentals, id)
	return nil
}

type fakeReservations struct{ store *fakeStore }

func (r *fakeReservations) Create(_ context.Context, res *reservation.Reservation) error {
	r.store.reservations[res.ID()] = copyReservation(res)
	return nil
}

func (r *fakeReservations) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return copyReservation(res), nil
}

func (r *fakeReservations) Update(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.store.reservations[res.ID()]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	r.store.reservations[res.ID()] = copyReservation(res)
	return nil
}

type fakeMaintenance struct{ store *fakeStore }

func (r *fakeMaintenance) Create(_ context.Context, ev *maintenance.Event) error {
	r.store.maintenance[ev.ID()] = copyEvent(ev)
	return nil
}

func (r *fakeMaintenance) FindByID(_ context.Context, id uuid.UUID) (*maintenance.Event, error) {
	ev, ok := r.store.maintenance[id]
	if !ok {
		return nil, infra.WrapRepoErr("maintenance event not found", nil, infra.KindNotFound)
	}
	return copyEvent(ev), nil
}

func (r *fakeMaintenance) Update(_ context.Context, ev *maintenance.Event) error {
	if _, ok := r.store.maintenance[ev.ID()]; !ok {
		return infra.WrapRepoErr("maintenance event not found", nil, infra.KindNotFound)
	}
	r.store.maintenance[ev.ID()] = copyEvent(ev)
	return nil
}

type fakeVehicles struct{ store *fakeStore }

func (r *fakeVehicles) Create(_ context.Context, v *vehicle.Vehicle) error {
	r.store.vehicles[v.ID()] = copyVehicle(v)
	return nil
}

func (r *fakeVehicles) FindByID(_ context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	v, ok := r.store.vehicles[id]
	if !ok {
		return nil, infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return copyVehicle(v), nil
}

func (r *fakeVehicles) Update(_ context.Context, v *vehicle.Vehicle) error {
	if _, ok := r.store.vehicles[v.ID()]; !ok {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	r.store.vehicles[v.ID()] = copyVehicle(v)
	return nil
}

type fakeClients struct{ store *fakeStore }

func (r *fakeClients) Create(_ context.Context, c *client.Client) error {
	r.store.clients[c.ID()] = copyClient(c)
	return nil
}

func (r *fakeClients) FindByID(_ context.Context, id uuid.UUID) (*client.Client, error) {
	c, ok := r.store.clients[id]
	if !ok {
		return nil, infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return copyClient(c), nil
}

func (r *fakeClients) Update(_ context.Context, c *client.Client) error {
	if _, ok := r.store.clients[c.ID()]; !ok {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	r.store.clients[c.ID()] = copyClient(c)
	return nil
}

func copyRental(r *rental.Rental) *rental.Rental {
	return rental.ReconstructRental(r.ID(), r.ClientID(), r.VehicleID(), r.ReservationID(),
		r.StartDate(), r.ExpectedReturnDate(), r.ActualReturnDate(),
		r.OdometerOutKm(), r.OdometerInKm(), r.Notes(), r.Status(), r.CreatedAt(), r.UpdatedAt())
}

func copyReservation(r *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(r.ID(), r.ClientID(), r.VehicleID(),
		r.ReservedDate(), r.ExpectedRentalDate(), r.DepositCents(), r.Status(), r.CreatedAt(), r.UpdatedAt())
}

func copyEvent(e *maintenance.Event) *maintenance.Event {
	return maintenance.ReconstructEvent(e.ID(), e.VehicleID(), e.ScheduledDate(), e.PerformedDate(),
		e.OdometerKm(), e.CostCents(), e.Notes(), e.Status(), e.CreatedAt(), e.UpdatedAt())
}

func copyVehicle(v *vehicle.Vehicle) *vehicle.Vehicle {
	return vehicle.ReconstructVehicle(v.ID(), v.Plate(), v.Make(), v.Model(), v.Year(), v.Enabled(),
		v.OdometerKm(), v.ServiceIntervalKm(), v.LastServiceOdometerKm(),
		v.LastServiceDate(), v.InsuranceExpiry(), v.InspectionExpiry(), v.CreatedAt(), v.UpdatedAt())
}

func copyClient(c *client.Client) *client.Client {
	return client.ReconstructClient(c.ID(), c.Name(), c.Enabled(), c.LicenseNumber(), c.LicenseExpiry(),
		c.CreatedAt(), c.UpdatedAt())
}
