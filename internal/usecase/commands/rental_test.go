//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fleet-booking/internal/domain/booking"
	"fleet-booking/internal/domain/rental"
	"fleet-booking/internal/pkg/clock"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/usecase/commands"
	"fleet-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClock() clock.Clock {
	return clock.NewMockClock(day(1))
}

// seedFleet puts one enabled client and one enabled vehicle into the fake
// store, the minimum for a booking to go through.
func seedFleet(t *testing.T, uow *fakeUoW) (clientID, vehicleID uuid.UUID) {
	t.Helper()
	cl, err := builder.NewClientBuilder().BuildDomain()
	require.NoError(t, err)
	v, err := builder.NewVehicleBuilder().BuildDomain()
	require.NoError(t, err)
	uow.store.putClient(cl)
	uow.store.putVehicle(v)
	return cl.ID(), v.ID()
}

func findInterval(uow *fakeUoW, kind booking.Kind, sourceID uuid.UUID) (booking.Interval, bool) {
	for _, iv := range uow.store.intervals {
		if iv.Kind() == kind && iv.SourceID() == sourceID {
			return iv, true
		}
	}
	return booking.Interval{}, false
}

func TestRentalCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the rental with an open-ended hold", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())

		id, err := cmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			StartDate:          day(10),
			ExpectedReturnDate: day(12),
			OdometerOutKm:      42000,
		})

		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)

		r := uow.store.rentals[id]
		require.NotNil(t, r)
		assert.Equal(t, rental.StatusOpen, r.Status())

		iv, ok := findInterval(uow, booking.KindRental, id)
		require.True(t, ok)
		assert.True(t, iv.IsOpenEnded())
		assert.Equal(t, day(10), iv.Start())
	})

	t.Run("unknown client is not found", func(t *testing.T) {
		uow := newFakeUoW()
		_, vehicleID := seedFleet(t, uow)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())

		_, err := cmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           uuid.New(),
			VehicleID:          vehicleID,
			StartDate:          day(10),
			ExpectedReturnDate: day(12),
		})

		assert.True(t, errs.Is(err, commands.ErrNotFound))
	})

	t.Run("disabled client leaves no partial state", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cl := uow.store.clients[clientID]
		cl.Disable()
		uow.store.putClient(cl)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())

		_, err := cmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			StartDate:          day(10),
			ExpectedReturnDate: day(12),
			OdometerOutKm:      42000,
		})

		assert.True(t, errs.Is(err, commands.ErrIneligibleClient))
		assert.Empty(t, uow.store.rentals)
		assert.Empty(t, uow.store.intervals)
	})

	t.Run("disabled vehicle is unavailable", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		v := uow.store.vehicles[vehicleID]
		v.Disable()
		uow.store.putVehicle(v)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())

		_, err := cmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			StartDate:          day(10),
			ExpectedReturnDate: day(12),
		})

		assert.True(t, errs.Is(err, commands.ErrVehicleUnavailable))
	})

	t.Run("second booking for an occupied vehicle is rejected", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())

		_, err := cmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			StartDate:          day(10),
			ExpectedReturnDate: day(12),
			OdometerOutKm:      42000,
		})
		require.NoError(t, err)

		// Open-ended hold blocks any later window on the same vehicle.
		_, err = cmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			StartDate:          day(20),
			ExpectedReturnDate: day(22),
			OdometerOutKm:      42000,
		})

		assert.True(t, errs.Is(err, commands.ErrVehicleUnavailable))
		assert.Len(t, uow.store.rentals, 1)
		assert.Len(t, uow.store.intervals, 1)
	})

	t.Run("start after expected return is rejected", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())

		_, err := cmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			StartDate:          day(12),
			ExpectedReturnDate: day(10),
		})

		assert.True(t, errs.Is(err, commands.ErrInvalidDates))
	})

	t.Run("negative odometer out is rejected", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())

		_, err := cmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			StartDate:          day(10),
			ExpectedReturnDate: day(12),
			OdometerOutKm:      -1,
		})

		assert.True(t, errs.Is(err, commands.ErrInvalidOdometer))
	})
}

func TestRentalCommands_Close(t *testing.T) {
	ctx := context.Background()

	createOpen := func(t *testing.T, uow *fakeUoW, cmd commands.RentalCommands, clientID, vehicleID uuid.UUID) uuid.UUID {
		t.Helper()
		id, err := cmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			StartDate:          day(10),
			ExpectedReturnDate: day(12),
			OdometerOutKm:      42000,
		})
		require.NoError(t, err)
		return id
	}

	t.Run("shrinks the hold and advances the odometer", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())
		id := createOpen(t, uow, cmd, clientID, vehicleID)

		err := cmd.Close(ctx, id, commands.CloseRentalInput{
			ActualReturnDate: day(12),
			OdometerInKm:     42500,
		})

		require.NoError(t, err)
		r := uow.store.rentals[id]
		assert.Equal(t, rental.StatusClosed, r.Status())
		require.NotNil(t, r.ActualReturnDate())
		assert.Equal(t, day(12), *r.ActualReturnDate())

		iv, ok := findInterval(uow, booking.KindRental, id)
		require.True(t, ok)
		require.NotNil(t, iv.End())
		assert.Equal(t, day(12), *iv.End())

		assert.Equal(t, int64(42500), uow.store.vehicles[vehicleID].OdometerKm())
	})

	t.Run("vehicle is bookable again after the return day", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())
		id := createOpen(t, uow, cmd, clientID, vehicleID)

		require.NoError(t, cmd.Close(ctx, id, commands.CloseRentalInput{
			ActualReturnDate: day(12),
			OdometerInKm:     42500,
		}))

		// Same-day handover is still a collision; the day after is free.
		_, err := cmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			StartDate:          day(12),
			ExpectedReturnDate: day(14),
			OdometerOutKm:      42500,
		})
		assert.True(t, errs.Is(err, commands.ErrVehicleUnavailable))

		_, err = cmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			StartDate:          day(13),
			ExpectedReturnDate: day(14),
			OdometerOutKm:      42500,
		})
		assert.NoError(t, err)
	})

	t.Run("odometer rollback rolls the whole close back", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())
		id := createOpen(t, uow, cmd, clientID, vehicleID)

		err := cmd.Close(ctx, id, commands.CloseRentalInput{
			ActualReturnDate: day(12),
			OdometerInKm:     100,
		})

		assert.True(t, errs.Is(err, commands.ErrInvalidOdometer))
		assert.Equal(t, rental.StatusOpen, uow.store.rentals[id].Status())
		iv, ok := findInterval(uow, booking.KindRental, id)
		require.True(t, ok)
		assert.True(t, iv.IsOpenEnded())
	})

	t.Run("return before the start date is rejected", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())
		id := createOpen(t, uow, cmd, clientID, vehicleID)

		err := cmd.Close(ctx, id, commands.CloseRentalInput{
			ActualReturnDate: day(9),
			OdometerInKm:     42500,
		})

		assert.True(t, errs.Is(err, commands.ErrInvalidDates))
	})

	t.Run("closing twice is an illegal transition", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())
		id := createOpen(t, uow, cmd, clientID, vehicleID)

		in := commands.CloseRentalInput{ActualReturnDate: day(12), OdometerInKm: 42500}
		require.NoError(t, cmd.Close(ctx, id, in))

		err := cmd.Close(ctx, id, in)
		assert.True(t, errs.Is(err, commands.ErrIllegalTransition))
	})

	t.Run("unknown rental is not found", func(t *testing.T) {
		uow := newFakeUoW()
		seedFleet(t, uow)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())

		err := cmd.Close(ctx, uuid.New(), commands.CloseRentalInput{
			ActualReturnDate: day(12),
			OdometerInKm:     42500,
		})

		assert.True(t, errs.Is(err, commands.ErrNotFound))
	})
}

func TestRentalCommands_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel frees the vehicle entirely", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())

		id, err := cmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			StartDate:          day(10),
			ExpectedReturnDate: day(12),
			OdometerOutKm:      42000,
		})
		require.NoError(t, err)

		require.NoError(t, cmd.Cancel(ctx, id))

		assert.Equal(t, rental.StatusCancelled, uow.store.rentals[id].Status())
		assert.Empty(t, uow.store.intervals)

		// The original window is open again, as if the rental never happened.
		_, err = cmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			StartDate:          day(10),
			ExpectedReturnDate: day(12),
			OdometerOutKm:      42000,
		})
		assert.NoError(t, err)
	})

	t.Run("cancelling a closed rental is an illegal transition", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())

		id, err := cmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			StartDate:          day(10),
			ExpectedReturnDate: day(12),
			OdometerOutKm:      42000,
		})
		require.NoError(t, err)
		require.NoError(t, cmd.Close(ctx, id, commands.CloseRentalInput{
			ActualReturnDate: day(12),
			OdometerInKm:     42500,
		}))

		err = cmd.Cancel(ctx, id)
		assert.True(t, errs.Is(err, commands.ErrIllegalTransition))
	})
}

func TestRentalCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the record and its hold", func(t *testing.T) {
		uow := newFakeUoW()
		clientID, vehicleID := seedFleet(t, uow)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())

		id, err := cmd.Create(ctx, commands.CreateRentalInput{
			ClientID:           clientID,
			VehicleID:          vehicleID,
			StartDate:          day(10),
			ExpectedReturnDate: day(12),
			OdometerOutKm:      42000,
		})
		require.NoError(t, err)

		require.NoError(t, cmd.Delete(ctx, id))
		assert.Empty(t, uow.store.rentals)
		assert.Empty(t, uow.store.intervals)
	})

	t.Run("unknown rental is not found", func(t *testing.T) {
		uow := newFakeUoW()
		seedFleet(t, uow)
		cmd := commands.NewRentalCommands(uow, testClock(), testLogger())

		err := cmd.Delete(ctx, uuid.New())
		assert.True(t, errs.Is(err, commands.ErrNotFound))
	})
}
