package repository

import (
	"context"
	"time"

	"fleet-booking/internal/domain/reservation"
	"fleet-booking/internal/infra"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	query := `
		INSERT INTO reservations (id, client_id, vehicle_id, reserved_date, expected_rental_date, deposit_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		res.ID(),
		res.ClientID(),
		res.VehicleID(),
		res.ReservedDate(),
		res.ExpectedRentalDate(),
		res.DepositCents(),
		res.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	query := `
		SELECT id, client_id, vehicle_id, reserved_date, expected_rental_date, deposit_cents, status, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`
	var (
		resID, clientID, vehicleID uuid.UUID
		reservedDate, expected     time.Time
		depositCents               int64
		status                     string
		createdAt, updatedAt       time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resID, &clientID, &vehicleID, &reservedDate, &expected, &depositCents, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return reservation.ReconstructReservation(resID, clientID, vehicleID, reservedDate, expected,
		depositCents, reservation.Status(status), createdAt, updatedAt), nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	query := `
		UPDATE reservations
		SET status = $2, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, res.ID(), res.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
