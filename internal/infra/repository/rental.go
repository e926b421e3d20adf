package repository

import (
	"context"
	"time"

	"fleet-booking/internal/domain/rental"
	"fleet-booking/internal/infra"

	"github.com/google/uuid"
)

type RentalRepository struct {
	db DBTX
}

func NewRentalRepository(db DBTX) *RentalRepository {
	return &RentalRepository{db: db}
}

func (r *RentalRepository) Create(ctx context.Context, rt *rental.Rental) error {
	query := `
		INSERT INTO rentals (id, client_id, vehicle_id, reservation_id, start_date, expected_return_date,
		                     actual_return_date, odometer_out_km, odometer_in_km, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		rt.ID(),
		rt.ClientID(),
		rt.VehicleID(),
		rt.ReservationID(),
		rt.StartDate(),
		rt.ExpectedReturnDate(),
		rt.ActualReturnDate(),
		rt.OdometerOutKm(),
		rt.OdometerInKm(),
		rt.Notes(),
		rt.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create rental", err)
	}
	return nil
}

func (r *RentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	query := rentalSelect + ` WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// FindOpenByReservation locates the rental a confirmed reservation spawned.
// The reservation_id column is unique, so at most one row can match.
func (r *RentalRepository) FindOpenByReservation(ctx context.Context, reservationID uuid.UUID) (*rental.Rental, error) {
	query := rentalSelect + ` WHERE reservation_id = $1 AND status = 'OPEN'`
	return r.scanOne(r.db.QueryRow(ctx, query, reservationID))
}

func (r *RentalRepository) Update(ctx context.Context, rt *rental.Rental) error {
	query := `
		UPDATE rentals
		SET actual_return_date = $2,
		    odometer_in_km = $3,
		    notes = $4,
		    status = $5,
		    updated_at = now()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		rt.ID(),
		rt.ActualReturnDate(),
		rt.OdometerInKm(),
		rt.Notes(),
		rt.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update rental", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RentalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete rental", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	return nil
}

const rentalSelect = `
	SELECT id, client_id, vehicle_id, reservation_id, start_date, expected_return_date,
	       actual_return_date, odometer_out_km, odometer_in_km, notes, status, created_at, updated_at
	FROM rentals`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *RentalRepository) scanOne(row rowScanner) (*rental.Rental, error) {
	var (
		id, clientID, vehicleID uuid.UUID
		reservationID           *uuid.UUID
		startDate, expected     time.Time
		actualReturn            *time.Time
		odometerOut             int64
		odometerIn              *int64
		notes                   *string
		status                  string
		createdAt, updatedAt    time.Time
	)
	err := row.Scan(&id, &clientID, &vehicleID, &reservationID, &startDate, &expected,
		&actualReturn, &odometerOut, &odometerIn, &notes, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rental", err)
	}
	n := ""
	if notes != nil {
		n = *notes
	}
	return rental.ReconstructRental(id, clientID, vehicleID, reservationID, startDate, expected,
		actualReturn, odometerOut, odometerIn, n, rental.Status(status), createdAt, updatedAt), nil
}
