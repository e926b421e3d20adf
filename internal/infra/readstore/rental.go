package readstore

import (
	"context"
	"fmt"
	"time"

	"fleet-booking/internal/infra"
	"fleet-booking/internal/infra/repository"
	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RentalReadStore struct {
	db repository.DBTX
}

func NewRentalReadStore(db repository.DBTX) *RentalReadStore {
	return &RentalReadStore{db: db}
}

const rentalViewSelect = `
	SELECT r.id, r.client_id, c.name AS client_name, r.vehicle_id, v.plate AS vehicle_plate,
	       r.reservation_id, r.start_date, r.expected_return_date, r.actual_return_date,
	       r.odometer_out_km, r.odometer_in_km, r.notes, r.status, r.created_at, r.updated_at
	FROM rentals r
	JOIN clients c ON c.id = r.client_id
	JOIN vehicles v ON v.id = r.vehicle_id`

func (r *RentalReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	rows, err := r.db.Query(ctx, rentalViewSelect+` WHERE r.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rental view", err)
	}
	views, err := scanRentalViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("rental not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return views[0], nil
}

func (r *RentalReadStore) List(ctx context.Context, filter queries.RentalFilter) ([]*queries.RentalView, error) {
	query := rentalViewSelect + ` WHERE true`
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND r.status = $%d", len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += fmt.Sprintf(" AND r.start_date >= $%d", len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += fmt.Sprintf(" AND r.start_date <= $%d", len(args))
	}
	query += " ORDER BY r.start_date DESC, r.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals", err)
	}
	return scanRentalViews(rows)
}

func scanRentalViews(rows pgx.Rows) ([]*queries.RentalView, error) {
	defer rows.Close()

	var views []*queries.RentalView
	for rows.Next() {
		var v queries.RentalView
		var (
			actualReturn *time.Time
			odometerIn   *int64
			notes        *string
		)
		err := rows.Scan(&v.ID, &v.ClientID, &v.ClientName, &v.VehicleID, &v.VehiclePlate,
			&v.ReservationID, &v.StartDate, &v.ExpectedReturnDate, &actualReturn,
			&v.OdometerOutKm, &odometerIn, &notes, &v.Status, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan rental view", err)
		}
		v.ActualReturnDate = actualReturn
		v.OdometerInKm = odometerIn
		v.Notes = notes
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rental views", err)
	}
	return views, nil
}
