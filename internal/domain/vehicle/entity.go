package vehicle

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPlate             = errors.New("vehicle plate cannot be empty")
	ErrEmptyMake              = errors.New("vehicle make cannot be empty")
	ErrEmptyModel             = errors.New("vehicle model cannot be empty")
	ErrNegativeOdometer       = errors.New("odometer cannot be negative")
	ErrOdometerRollback       = errors.New("odometer cannot decrease")
	ErrInvalidServiceInterval = errors.New("service interval must be positive")
)

// Vehicle is the fleet registry aggregate. The odometer only ever moves
// forward: rental closure and maintenance completion are its two writers.
type Vehicle struct {
	id                    uuid.UUID
	plate                 string
	make                  string
	model                 string
	year                  int
	enabled               bool
	odometerKm            int64
	serviceIntervalKm     int64
	lastServiceOdometerKm int64
	lastServiceDate       *time.Time
	insuranceExpiry       *time.Time
	inspectionExpiry      *time.Time
	createdAt             time.Time
	updatedAt             time.Time
}

func NewVehicle(plate, makeName, model string, year int, odometerKm, serviceIntervalKm int64, insuranceExpiry, inspectionExpiry *time.Time) (*Vehicle, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return nil, ErrEmptyPlate
	}
	if strings.TrimSpace(makeName) == "" {
		return nil, ErrEmptyMake
	}
	if strings.TrimSpace(model) == "" {
		return nil, ErrEmptyModel
	}
	if odometerKm < 0 {
		return nil, ErrNegativeOdometer
	}
	if serviceIntervalKm <= 0 {
		return nil, ErrInvalidServiceInterval
	}

	return &Vehicle{
		id:                    uuid.New(),
		plate:                 plate,
		make:                  strings.TrimSpace(makeName),
		model:                 strings.TrimSpace(model),
		year:                  year,
		enabled:               true,
		odometerKm:            odometerKm,
		serviceIntervalKm:     serviceIntervalKm,
		lastServiceOdometerKm: odometerKm,
		insuranceExpiry:       insuranceExpiry,
		inspectionExpiry:      inspectionExpiry,
	}, nil
}

func ReconstructVehicle(
	id uuid.UUID,
	plate, makeName, model string,
	year int,
	enabled bool,
	odometerKm, serviceIntervalKm, lastServiceOdometerKm int64,
	lastServiceDate, insuranceExpiry, inspectionExpiry *time.Time,
	createdAt, updatedAt time.Time,
) *Vehicle {
	return &Vehicle{
		id:                    id,
		plate:                 plate,
		make:                  makeName,
		model:                 model,
		year:                  year,
		enabled:               enabled,
		odometerKm:            odometerKm,
		serviceIntervalKm:     serviceIntervalKm,
		lastServiceOdometerKm: lastServiceOdometerKm,
		lastServiceDate:       lastServiceDate,
		insuranceExpiry:       insuranceExpiry,
		inspectionExpiry:      inspectionExpiry,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

// AdvanceOdometer enforces the monotonic odometer invariant.
func (v *Vehicle) AdvanceOdometer(readingKm int64) error {
	if readingKm < v.odometerKm {
		return ErrOdometerRollback
	}
	v.odometerKm = readingKm
	return nil
}

// RecordService is applied on maintenance completion.
func (v *Vehicle) RecordService(odometerKm int64, performedAt time.Time) error {
	if err := v.AdvanceOdometer(odometerKm); err != nil {
		return err
	}
	v.lastServiceOdometerKm = odometerKm
	d := performedAt
	v.lastServiceDate = &d
	return nil
}

// MaintenanceDue reports whether the vehicle has run past its service
// interval since the last recorded service.
func (v *Vehicle) MaintenanceDue() bool {
	return v.odometerKm-v.lastServiceOdometerKm >= v.serviceIntervalKm
}

func (v *Vehicle) Enable()  { v.enabled = true }
func (v *Vehicle) Disable() { v.enabled = false }

func (v *Vehicle) ID() uuid.UUID                { return v.id }
func (v *Vehicle) Plate() string                { return v.plate }
func (v *Vehicle) Make() string                 { return v.make }
func (v *Vehicle) Model() string                { return v.model }
func (v *Vehicle) Year() int                    { return v.year }
func (v *Vehicle) Enabled() bool                { return v.enabled }
func (v *Vehicle) OdometerKm() int64            { return v.odometerKm }
func (v *Vehicle) ServiceIntervalKm() int64     { return v.serviceIntervalKm }
func (v *Vehicle) LastServiceOdometerKm() int64 { return v.lastServiceOdometerKm }
func (v *Vehicle) LastServiceDate() *time.Time  { return v.lastServiceDate }
func (v *Vehicle) InsuranceExpiry() *time.Time  { return v.insuranceExpiry }
func (v *Vehicle) InspectionExpiry() *time.Time { return v.inspectionExpiry }
func (v *Vehicle) CreatedAt() time.Time         { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time         { return v.updatedAt }
