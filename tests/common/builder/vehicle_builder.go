//go:build unit || e2e

package builder

import (
	"time"

	domvehicle "fleet-booking/internal/domain/vehicle"
	reqdto "fleet-booking/internal/handler/dto/request"
	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleBuilder struct {
	Plate             string
	Make              string
	Model             string
	Year              int
	OdometerKm        int64
	ServiceIntervalKm int64
	InsuranceExpiry   *time.Time
	InspectionExpiry  *time.Time
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		Plate:             "ABC-1234",
		Make:              "Toyota",
		Model:             "Corolla",
		Year:              2022,
		OdometerKm:        42000,
		ServiceIntervalKm: 10000,
	}
}

func (b *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(b)
	return b
}

func (b *VehicleBuilder) BuildDomain() (*domvehicle.Vehicle, error) {
	return domvehicle.NewVehicle(b.Plate, b.Make, b.Model, b.Year, b.OdometerKm, b.ServiceIntervalKm, b.InsuranceExpiry, b.InspectionExpiry)
}

func (b *VehicleBuilder) BuildCreateRequestDTO() reqdto.CreateVehicleRequest {
	return reqdto.CreateVehicleRequest{
		Plate:             b.Plate,
		Make:              b.Make,
		Model:             b.Model,
		Year:              b.Year,
		OdometerKm:        b.OdometerKm,
		ServiceIntervalKm: b.ServiceIntervalKm,
	}
}

func (b *VehicleBuilder) BuildView() *queries.VehicleView {
	now := time.Now()
	return &queries.VehicleView{
		ID:                    uuid.New(),
		Plate:                 b.Plate,
		Make:                  b.Make,
		Model:                 b.Model,
		Year:                  b.Year,
		Enabled:               true,
		OdometerKm:            b.OdometerKm,
		ServiceIntervalKm:     b.ServiceIntervalKm,
		LastServiceOdometerKm: b.OdometerKm,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}
