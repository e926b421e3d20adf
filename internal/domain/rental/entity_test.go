//go:build unit

package rental_test

import (
	"testing"
	"time"

	"fleet-booking/internal/domain/rental"
	"fleet-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRental(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, r)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, rental.StatusOpen, r.Status())
		assert.True(t, r.IsOpen())
		assert.Nil(t, r.ActualReturnDate())
		assert.Nil(t, r.OdometerInKm())
	})

	t.Run("same-day rental is valid", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
			b.ExpectedReturnDate = b.StartDate
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, r.StartDate(), r.ExpectedReturnDate())
	})

	t.Run("start after expected return", func(t *testing.T) {
		_, err := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
			b.ExpectedReturnDate = b.StartDate.AddDate(0, 0, -1)
		}).BuildDomain()
		assert.ErrorIs(t, err, rental.ErrInvalidDates)
	})

	t.Run("negative odometer out", func(t *testing.T) {
		_, err := builder.NewRentalBuilder().With(func(b *builder.RentalBuilder) {
			b.OdometerOutKm = -1
		}).BuildDomain()
		assert.ErrorIs(t, err, rental.ErrInvalidOdometer)
	})
}

func TestRentalClose(t *testing.T) {
	newOpen := func(t *testing.T) *rental.Rental {
		t.Helper()
		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)
		return r
	}

	t.Run("closes with return data", func(t *testing.T) {
		r := newOpen(t)
		returnDate := r.StartDate().AddDate(0, 0, 3)

		require.NoError(t, r.Close(returnDate, 42350))

		assert.Equal(t, rental.StatusClosed, r.Status())
		require.NotNil(t, r.ActualReturnDate())
		assert.Equal(t, returnDate, *r.ActualReturnDate())
		require.NotNil(t, r.OdometerInKm())
		assert.Equal(t, int64(42350), *r.OdometerInKm())
	})

	t.Run("same-day return is valid", func(t *testing.T) {
		r := newOpen(t)
		require.NoError(t, r.Close(r.StartDate(), r.OdometerOutKm()))
	})

	t.Run("return before start", func(t *testing.T) {
		r := newOpen(t)
		err := r.Close(r.StartDate().AddDate(0, 0, -1), 42350)
		assert.ErrorIs(t, err, rental.ErrReturnTooEarly)
		assert.True(t, r.IsOpen())
	})

	t.Run("odometer rollback", func(t *testing.T) {
		r := newOpen(t)
		err := r.Close(r.StartDate().AddDate(0, 0, 3), r.OdometerOutKm()-1)
		assert.ErrorIs(t, err, rental.ErrInvalidOdometer)
		assert.True(t, r.IsOpen())
	})

	t.Run("close twice", func(t *testing.T) {
		r := newOpen(t)
		require.NoError(t, r.Close(r.StartDate().AddDate(0, 0, 3), 42350))
		err := r.Close(r.StartDate().AddDate(0, 0, 4), 42400)
		assert.ErrorIs(t, err, rental.ErrIllegalTransition)
	})

	t.Run("close after cancel", func(t *testing.T) {
		r := newOpen(t)
		require.NoError(t, r.Cancel())
		err := r.Close(r.StartDate().AddDate(0, 0, 3), 42350)
		assert.ErrorIs(t, err, rental.ErrIllegalTransition)
	})
}

func TestRentalCancel(t *testing.T) {
	t.Run("cancels open rental", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Cancel())
		assert.Equal(t, rental.StatusCancelled, r.Status())
	})

	t.Run("cancel twice", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Cancel())
		assert.ErrorIs(t, r.Cancel(), rental.ErrIllegalTransition)
	})

	t.Run("cancel closed rental", func(t *testing.T) {
		r, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, r.Close(r.StartDate().AddDate(0, 0, 1), 43000))
		assert.ErrorIs(t, r.Cancel(), rental.ErrIllegalTransition)
	})
}

func TestReconstructRental(t *testing.T) {
	id := uuid.New()
	resID := uuid.New()
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	in := int64(42500)
	ret := start.AddDate(0, 0, 2)
	now := time.Now()

	r := rental.ReconstructRental(id, uuid.New(), uuid.New(), &resID, start, start.AddDate(0, 0, 4),
		&ret, 42000, &in, "note", rental.StatusClosed, now, now)

	assert.Equal(t, id, r.ID())
	assert.Equal(t, &resID, r.ReservationID())
	assert.Equal(t, rental.StatusClosed, r.Status())
	assert.False(t, r.IsOpen())
}
