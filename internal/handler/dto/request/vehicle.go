package request

import (
	"time"
)

type CreateVehicleRequest struct {
	Plate             string  `json:"plate" binding:"required"`
	Make              string  `json:"make" binding:"required"`
	Model             string  `json:"model" binding:"required"`
	Year              int     `json:"year"`
	OdometerKm        int64   `json:"odometerKm"`
	ServiceIntervalKm int64   `json:"serviceIntervalKm" binding:"required"`
	InsuranceExpiry   *string `json:"insuranceExpiry,omitempty"`
	InspectionExpiry  *string `json:"inspectionExpiry,omitempty"`
}

func (r CreateVehicleRequest) Expiries() (insurance, inspection *time.Time, err error) {
	insurance, err = parseOptionalDate(r.InsuranceExpiry)
	if err != nil {
		return
	}
	inspection, err = parseOptionalDate(r.InspectionExpiry)
	return
}

type UpdateVehicleRequest struct {
	InsuranceExpiry  *string `json:"insuranceExpiry,omitempty"`
	InspectionExpiry *string `json:"inspectionExpiry,omitempty"`
}

func (r UpdateVehicleRequest) Expiries() (insurance, inspection *time.Time, err error) {
	insurance, err = parseOptionalDate(r.InsuranceExpiry)
	if err != nil {
		return
	}
	inspection, err = parseOptionalDate(r.InspectionExpiry)
	return
}

type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
