package request

import (
	"time"
)

type CreateClientRequest struct {
	Name          string  `json:"name" binding:"required"`
	LicenseNumber string  `json:"licenseNumber" binding:"required"`
	LicenseExpiry *string `json:"licenseExpiry,omitempty"`
}

func (r CreateClientRequest) Expiry() (*time.Time, error) {
	return parseOptionalDate(r.LicenseExpiry)
}

type UpdateClientRequest struct {
	Name          string  `json:"name" binding:"required"`
	LicenseNumber string  `json:"licenseNumber" binding:"required"`
	LicenseExpiry *string `json:"licenseExpiry,omitempty"`
}

func (r UpdateClientRequest) Expiry() (*time.Time, error) {
	return parseOptionalDate(r.LicenseExpiry)
}
