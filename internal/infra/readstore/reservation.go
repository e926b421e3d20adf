package readstore

import (
	"context"
	"fmt"

	"fleet-booking/internal/infra"
	"fleet-booking/internal/infra/repository"
	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db repository.DBTX
}

func NewReservationReadStore(db repository.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const reservationViewSelect = `
	SELECT r.id, r.client_id, c.name AS client_name, r.vehicle_id, v.plate AS vehicle_plate,
	       r.reserved_date, r.expected_rental_date, r.deposit_cents, r.status, r.created_at, r.updated_at
	FROM reservations r
	JOIN clients c ON c.id = r.client_id
	JOIN vehicles v ON v.id = r.vehicle_id`

func (r *ReservationReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationViewSelect+` WHERE r.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation view", err)
	}
	views, err := scanReservationViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return views[0], nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	query := reservationViewSelect + ` WHERE true`
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND r.status = $%d", len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += fmt.Sprintf(" AND r.expected_rental_date >= $%d", len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += fmt.Sprintf(" AND r.expected_rental_date <= $%d", len(args))
	}
	query += " ORDER BY r.expected_rental_date DESC, r.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return scanReservationViews(rows)
}

func scanReservationViews(rows pgx.Rows) ([]*queries.ReservationView, error) {
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		var v queries.ReservationView
		err := rows.Scan(&v.ID, &v.ClientID, &v.ClientName, &v.VehicleID, &v.VehiclePlate,
			&v.ReservedDate, &v.ExpectedRentalDate, &v.DepositCents, &v.Status, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation views", err)
	}
	return views, nil
}
