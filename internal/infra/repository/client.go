package repository

import (
	"context"
	"time"

	"fleet-booking/internal/domain/client"
	"fleet-booking/internal/infra"

	"github.com/google/uuid"
)

type ClientRepository struct {
	db DBTX
}

func NewClientRepository(db DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (id, name, enabled, license_number, license_expiry)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		c.ID(),
		c.Name(),
		c.Enabled(),
		c.LicenseNumber(),
		c.LicenseExpiry(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create client", err)
	}
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	query := `
		SELECT id, name, enabled, license_number, license_expiry, created_at, updated_at
		FROM clients
		WHERE id = $1
	`
	var (
		cID                  uuid.UUID
		name                 string
		enabled              bool
		licenseNumber        string
		licenseExpiry        *time.Time
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&cID, &name, &enabled, &licenseNumber, &licenseExpiry, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find client", err)
	}
	return client.ReconstructClient(cID, name, enabled, licenseNumber, licenseExpiry, createdAt, updatedAt), nil
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	query := `
		UPDATE clients
		SET name = $2,
		    enabled = $3,
		    license_number = $4,
		    license_expiry = $5,
		    updated_at = now()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		c.ID(),
		c.Name(),
		c.Enabled(),
		c.LicenseNumber(),
		c.LicenseExpiry(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update client", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}
