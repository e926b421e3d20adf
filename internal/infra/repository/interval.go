package repository

import (
	"context"
	"time"

	"fleet-booking/internal/domain/booking"
	"fleet-booking/internal/infra"

	"github.com/google/uuid"
)

// IntervalRepository persists vehicle occupancy. The table's EXCLUDE
// constraint does the overlap check inside the insert itself, so Reserve
// is atomic per vehicle without any advisory locking.
type IntervalRepository struct {
	db DBTX
}

func NewIntervalRepository(db DBTX) *IntervalRepository {
	return &IntervalRepository{db: db}
}

func (r *IntervalRepository) Reserve(ctx context.Context, iv booking.Interval) error {
	query := `
		INSERT INTO booking_intervals (id, vehicle_id, kind, source_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		iv.ID(),
		iv.VehicleID(),
		iv.Kind().String(),
		iv.SourceID(),
		iv.Start(),
		iv.End(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve interval", err)
	}
	return nil
}

func (r *IntervalRepository) ReleaseBySource(ctx context.Context, kind booking.Kind, sourceID uuid.UUID) error {
	query := `DELETE FROM booking_intervals WHERE kind = $1 AND source_id = $2`
	if _, err := r.db.Exec(ctx, query, kind.String(), sourceID); err != nil {
		return infra.WrapRepoErr("failed to release interval", err)
	}
	return nil
}

func (r *IntervalRepository) Shrink(ctx context.Context, kind booking.Kind, sourceID uuid.UUID, newEnd time.Time) error {
	query := `UPDATE booking_intervals SET end_date = $3 WHERE kind = $1 AND source_id = $2`
	tag, err := r.db.Exec(ctx, query, kind.String(), sourceID, newEnd)
	if err != nil {
		return infra.WrapRepoErr("failed to shrink interval", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("interval not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *IntervalRepository) FindByVehicle(ctx context.Context, vehicleID uuid.UUID, start, end time.Time) ([]booking.Interval, error) {
	query := `
		SELECT id, vehicle_id, kind, source_id, start_date, end_date
		FROM booking_intervals
		WHERE vehicle_id = $1
		  AND daterange(start_date, COALESCE(end_date, DATE '9999-12-31'), '[]') && daterange($2, $3, '[]')
		ORDER BY start_date
	`
	rows, err := r.db.Query(ctx, query, vehicleID, start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query intervals", err)
	}
	defer rows.Close()

	var intervals []booking.Interval
	for rows.Next() {
		var (
			id, vID, sourceID uuid.UUID
			kind              string
			startDate         time.Time
			endDate           *time.Time
		)
		if err := rows.Scan(&id, &vID, &kind, &sourceID, &startDate, &endDate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan interval", err)
		}
		intervals = append(intervals, booking.ReconstructInterval(id, vID, booking.Kind(kind), sourceID, startDate, endDate))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read intervals", err)
	}
	return intervals, nil
}
