package commands

import (
	"context"
	"time"

	"fleet-booking/internal/domain/vehicle"
	"fleet-booking/internal/infra"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateVehicleInput struct {
	Plate             string
	Make              string
	Model             string
	Year              int
	OdometerKm        int64
	ServiceIntervalKm int64
	InsuranceExpiry   *time.Time
	InspectionExpiry  *time.Time
}

type UpdateVehicleInput struct {
	InsuranceExpiry  *time.Time
	InspectionExpiry *time.Time
}

type VehicleCommands interface {
	Create(ctx context.Context, in CreateVehicleInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateVehicleInput) error
	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error
}

type vehicleCommands struct {
	uow shared.UnitOfWork
}

func NewVehicleCommands(uow shared.UnitOfWork) VehicleCommands {
	return &vehicleCommands{uow: uow}
}

func (c *vehicleCommands) Create(ctx context.Context, in CreateVehicleInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := vehicle.NewVehicle(in.Plate, in.Make, in.Model, in.Year, in.OdometerKm, in.ServiceIntervalKm, in.InsuranceExpiry, in.InspectionExpiry)
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}
		if err := tx.Vehicles().Create(ctx, v); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicate)
			}
			return errs.Mark(err, ErrStorage)
		}
		id = v.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *vehicleCommands) Update(ctx context.Context, id uuid.UUID, in UpdateVehicleInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Vehicles().FindByID(ctx, id)
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}
		updated := vehicle.ReconstructVehicle(
			v.ID(), v.Plate(), v.Make(), v.Model(), v.Year(), v.Enabled(),
			v.OdometerKm(), v.ServiceIntervalKm(), v.LastServiceOdometerKm(),
			v.LastServiceDate(), in.InsuranceExpiry, in.InspectionExpiry,
			v.CreatedAt(), v.UpdatedAt(),
		)
		if err := tx.Vehicles().Update(ctx, updated); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		return nil
	})
}

func (c *vehicleCommands) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Vehicles().FindByID(ctx, id)
		if err != nil {
			return markRepoErr(err, ErrNotFound)
		}
		if enabled {
			v.Enable()
		} else {
			v.Disable()
		}
		if err := tx.Vehicles().Update(ctx, v); err != nil {
			return errs.Mark(err, ErrStorage)
		}
		return nil
	})
}
