package commands

import (
	"context"
	"time"

	"fleet-booking/internal/domain/client"
	"fleet-booking/internal/infra"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateClientInput struct {
	Name          string
	LicenseNumber string
	LicenseExpiry *time.Time
}

type UpdateClientInput struct {
	Name          string
	LicenseNumber string
	LicenseExpiry *time.Time
}

type ClientCommands interface {
	Create(ctx context.Context, in CreateClientInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateClientInput) error
	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error
}

type clientCommands struct {
	uow shared.UnitOfWork
}

func NewClientCommands(uow shared.UnitOfWork) ClientCommands {
	return &clientCommands{uow: uow}
}

func (c *clientCommands) Create(ctx context.Context, in CreateClientInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cl, err := client.NewClient(in.Name, in.LicenseNumber, in.LicenseExpiry)
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}
		if err := tx.Clients().Create(ctx, cl); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicate)
			}
			return errs.Mark(err, ErrStorage)
		}
		id = cl.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *clientCommands) Update(ctx context.Context, id uuid.UUID, in UpdateClientInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cl, err := tx.Clients().FindByID(ctx, id)
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}
		updated, err := client.NewClient(in.Name, in.LicenseNumber, in.LicenseExpiry)
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}
		merged := client.ReconstructClient(
			cl.ID(), updated.Name(), cl.Enabled(), updated.LicenseNumber(), updated.LicenseExpiry(),
			cl.CreatedAt(), cl.UpdatedAt(),
		)
		if err := tx.Clients().Update(ctx, merged); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		return nil
	})
}

// SetEnabled administers eligibility; existing bookings are unaffected.
func (c *clientCommands) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cl, err := tx.Clients().FindByID(ctx, id)
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}
		if enabled {
			cl.Enable()
		} else {
			cl.Disable()
		}
		if err := tx.Clients().Update(ctx, cl); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		return nil
	})
}
