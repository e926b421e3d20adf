package readstore

import (
	"context"

	"fleet-booking/internal/infra"
	"fleet-booking/internal/infra/repository"
	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ClientReadStore struct {
	db repository.DBTX
}

func NewClientReadStore(db repository.DBTX) *ClientReadStore {
	return &ClientReadStore{db: db}
}

const clientViewSelect = `
	SELECT id, name, enabled, license_number, license_expiry, created_at, updated_at
	FROM clients`

func (r *ClientReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.ClientView, error) {
	rows, err := r.db.Query(ctx, clientViewSelect+` WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find client view", err)
	}
	views, err := scanClientViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("client not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return views[0], nil
}

func (r *ClientReadStore) List(ctx context.Context) ([]*queries.ClientView, error) {
	rows, err := r.db.Query(ctx, clientViewSelect+` ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	return scanClientViews(rows)
}

func scanClientViews(rows pgx.Rows) ([]*queries.ClientView, error) {
	defer rows.Close()

	var views []*queries.ClientView
	for rows.Next() {
		var v queries.ClientView
		err := rows.Scan(&v.ID, &v.Name, &v.Enabled, &v.LicenseNumber, &v.LicenseExpiry, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan client view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read client views", err)
	}
	return views, nil
}
