package readstore

import (
	"context"
	"time"

	"fleet-booking/internal/infra"
	"fleet-booking/internal/infra/repository"
	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityReadStore struct {
	db repository.DBTX
}

func NewAvailabilityReadStore(db repository.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: db}
}

// Available lists enabled vehicles with no interval touching [start, end].
// The NOT EXISTS probe uses the same inclusive daterange expression the
// overlap constraint indexes, so the read and the write agree on what a
// collision is.
func (r *AvailabilityReadStore) Available(ctx context.Context, start, end time.Time) ([]*queries.AvailableVehicleView, error) {
	query := `
		SELECT v.id, v.plate, v.make, v.model
		FROM vehicles v
		WHERE v.enabled
		  AND NOT EXISTS (
		      SELECT 1
		      FROM booking_intervals bi
		      WHERE bi.vehicle_id = v.id
		        AND daterange(bi.start_date, COALESCE(bi.end_date, DATE '9999-12-31'), '[]') && daterange($1, $2, '[]')
		  )
		ORDER BY v.plate
	`
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query availability", err)
	}
	defer rows.Close()

	var result []*queries.AvailableVehicleView
	for rows.Next() {
		var (
			id                     uuid.UUID
			plate, makeName, model string
		)
		if err := rows.Scan(&id, &plate, &makeName, &model); err != nil {
			return nil, infra.WrapRepoErr("failed to scan available vehicle", err)
		}
		result = append(result, &queries.AvailableVehicleView{
			ID:    id,
			Plate: plate,
			Make:  makeName,
			Model: model,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability", err)
	}
	return result, nil
}
