//go:build unit

package commands_test

import (
	"context"
	"testing"

	"fleet-booking/internal/domain/booking"
	"fleet-booking/internal/domain/rental"
	"fleet-booking/internal/domain/reservation"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("holds the window with a closed interval", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewReservationCommands(uow, testClock(), testLogger())

		id, err := cmd.Create(ctx, commands.CreateReservationInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			ReservedDate:       day(1),
			ExpectedRentalDate: day(5),
			DepositCents:       10_000,
		})

		require.NoError(t, err)
		res := uow.store.reservations[id]
		require.NotNil(t, res)
		assert.Equal(t, reservation.StatusPending, res.Status())

		iv, ok := findInterval(uow, booking.KindReservation, id)
		require.True(t, ok)
		assert.Equal(t, day(1), iv.Start())
		require.NotNil(t, iv.End())
		assert.Equal(t, day(5), *iv.End())
	})

	t.Run("open rental blocks the hold", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		rentalCmd := commands.NewRentalCommands(uow, testClock(), testLogger())
		cmd := commands.NewReservationCommands(uow, testClock(), testLogger())

		_, err := rentalCmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			StartDate:          day(10),
			ExpectedReturnDate: day(12),
			OdometerOutKm:      42000,
		})
		require.NoError(t, err)

		_, err = cmd.Create(ctx, commands.CreateReservationInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			ReservedDate:       day(20),
			ExpectedRentalDate: day(22),
		})

		assert.True(t, errs.Is(err, commands.ErrVehicleUnavailable))
		assert.Empty(t, uow.store.reservations)
	})

	t.Run("disabled client leaves no partial state", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cl := uow.store.clients[clientID]
		cl.Disable()
		uow.store.putClient(cl)
		cmd := commands.NewReservationCommands(uow, testClock(), testLogger())

		_, err := cmd.Create(ctx, commands.CreateReservationInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			ReservedDate:       day(1),
			ExpectedRentalDate: day(5),
		})

		assert.True(t, errs.Is(err, commands.ErrIneligibleClient))
		assert.Empty(t, uow.store.reservations)
		assert.Empty(t, uow.store.intervals)
	})

	t.Run("reserved date after the pickup date is rejected", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewReservationCommands(uow, testClock(), testLogger())

		_, err := cmd.Create(ctx, commands.CreateReservationInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			ReservedDate:       day(5),
			ExpectedRentalDate: day(1),
		})

		assert.True(t, errs.Is(err, commands.ErrInvalidDates))
	})

	t.Run("negative deposit fails validation", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewReservationCommands(uow, testClock(), testLogger())

		_, err := cmd.Create(ctx, commands.CreateReservationInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			ReservedDate:       day(1),
			ExpectedRentalDate: day(5),
			DepositCents:       -1,
		})

		assert.True(t, errs.Is(err, commands.ErrValidation))
	})
}

func TestReservationCommands_Confirm(t *testing.T) {
	ctx := context.Background()

	createPending := func(t *testing.T, uow *fakeUoW, cmd commands.ReservationCommands, clientID, vehicleID uuid.UUID) uuid.UUID {
		t.Helper()
		id, err := cmd.Create(ctx, commands.CreateReservationInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			ReservedDate:       day(1),
			ExpectedRentalDate: day(5),
			DepositCents:       10_000,
		})
		require.NoError(t, err)
		return id
	}

	t.Run("swaps the hold for an open rental", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewReservationCommands(uow, testClock(), testLogger())
		id := createPending(t, uow, cmd, clientID, vehicleID)

		result, err := cmd.Confirm(ctx, id)

		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, result.RentalID)

		assert.Equal(t, reservation.StatusConfirmed, uow.store.reservations[id].Status())

		r := uow.store.rentals[result.RentalID]
		require.NotNil(t, r)
		assert.Equal(t, rental.StatusOpen, r.Status())
		require.NotNil(t, r.ReservationID())
		assert.Equal(t, id, *r.ReservationID())
		assert.Equal(t, day(5), r.StartDate())
		// Odometer out is snapshotted from the vehicle at pickup.
		assert.Equal(t, uow.store.vehicles[vehicleID].OdometerKm(), r.OdometerOutKm())

		_, held := findInterval(uow, booking.KindReservation, id)
		assert.False(t, held)
		iv, ok := findInterval(uow, booking.KindRental, result.RentalID)
		require.True(t, ok)
		assert.True(t, iv.IsOpenEnded())
		assert.Equal(t, day(5), iv.Start())
	})

	t.Run("confirming twice never creates a second rental", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewReservationCommands(uow, testClock(), testLogger())
		id := createPending(t, uow, cmd, clientID, vehicleID)

		_, err := cmd.Confirm(ctx, id)
		require.NoError(t, err)

		_, err = cmd.Confirm(ctx, id)
		assert.True(t, errs.Is(err, commands.ErrIllegalTransition))
		assert.Len(t, uow.store.rentals, 1)
	})

	t.Run("unknown reservation is not found", func(t *testing.T) {
		uow := newFakeUoW()
		seedFleet(t, uow)
		cmd := commands.NewReservationCommands(uow, testClock(), testLogger())

		_, err := cmd.Confirm(ctx, uuid.New())
		assert.True(t, errs.Is(err, commands.ErrNotFound))
	})
}

func TestReservationCommands_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("pending cancel releases the hold", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewReservationCommands(uow, testClock(), testLogger())

		id, err := cmd.Create(ctx, commands.CreateReservationInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			ReservedDate:       day(1),
			ExpectedRentalDate: day(5),
		})
		require.NoError(t, err)

		require.NoError(t, cmd.Cancel(ctx, id))

		assert.Equal(t, reservation.StatusCancelled, uow.store.reservations[id].Status())
		assert.Empty(t, uow.store.intervals)

		_, err = cmd.Create(ctx, commands.CreateReservationInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			ReservedDate:       day(1),
			ExpectedRentalDate: day(5),
		})
		assert.NoError(t, err)
	})

	t.Run("confirmed cancel cascades to the derived rental", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewReservationCommands(uow, testClock(), testLogger())

		id, err := cmd.Create(ctx, commands.CreateReservationInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			ReservedDate:       day(1),
			ExpectedRentalDate: day(5),
		})
		require.NoError(t, err)
		result, err := cmd.Confirm(ctx, id)
		require.NoError(t, err)

		require.NoError(t, cmd.Cancel(ctx, id))

		assert.Equal(t, reservation.StatusCancelled, uow.store.reservations[id].Status())
		assert.Equal(t, rental.StatusCancelled, uow.store.rentals[result.RentalID].Status())
		assert.Empty(t, uow.store.intervals)
	})

	t.Run("cancelling the derived rental cancels the reservation too", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewReservationCommands(uow, testClock(), testLogger())
		rentalCmd := commands.NewRentalCommands(uow, testClock(), testLogger())

		id, err := cmd.Create(ctx, commands.CreateReservationInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			ReservedDate:       day(1),
			ExpectedRentalDate: day(5),
		})
		require.NoError(t, err)
		result, err := cmd.Confirm(ctx, id)
		require.NoError(t, err)

		require.NoError(t, rentalCmd.Cancel(ctx, result.RentalID))

		assert.Equal(t, rental.StatusCancelled, uow.store.rentals[result.RentalID].Status())
		assert.Equal(t, reservation.StatusCancelled, uow.store.reservations[id].Status())
		assert.Empty(t, uow.store.intervals)

		// Cancelling the reservation afterwards is an illegal transition,
		// not a lookup failure: nothing is left stranded in CONFIRMED.
		err = cmd.Cancel(ctx, id)
		assert.True(t, errs.Is(err, commands.ErrIllegalTransition))

		_, err = cmd.Create(ctx, commands.CreateReservationInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			ReservedDate:       day(1),
			ExpectedRentalDate: day(5),
		})
		assert.NoError(t, err)
	})

	t.Run("rental closure completes the reservation", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewReservationCommands(uow, testClock(), testLogger())
		rentalCmd := commands.NewRentalCommands(uow, testClock(), testLogger())

		id, err := cmd.Create(ctx, commands.CreateReservationInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			ReservedDate:       day(1),
			ExpectedRentalDate: day(5),
		})
		require.NoError(t, err)
		result, err := cmd.Confirm(ctx, id)
		require.NoError(t, err)

		require.NoError(t, rentalCmd.Close(ctx, result.RentalID, commands.CloseRentalInput{
			ActualReturnDate: day(8),
			OdometerInKm:     42600,
		}))

		assert.Equal(t, reservation.StatusCompleted, uow.store.reservations[id].Status())
		assert.Equal(t, int64(42600), uow.store.vehicles[vehicleID].OdometerKm())

		// A completed reservation is terminal.
		err = cmd.Cancel(ctx, id)
		assert.True(t, errs.Is(err, commands.ErrIllegalTransition))
	})
}
