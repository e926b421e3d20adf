package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ClientView struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Enabled       bool       `json:"enabled"`
	LicenseNumber string     `json:"licenseNumber"`
	LicenseExpiry *time.Time `json:"licenseExpiry,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type ClientQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
	List(ctx context.Context) ([]*ClientView, error)
}
