package response

import (
	"time"

	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ClientResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Enabled       bool       `json:"enabled"`
	LicenseNumber string     `json:"licenseNumber"`
	LicenseExpiry *time.Time `json:"licenseExpiry,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func FromClientView(rm *queries.ClientView) *ClientResponse {
	var resp ClientResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromClientViews(rms []*queries.ClientView) []*ClientResponse {
	resp := make([]*ClientResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromClientView(rm)
	}
	return resp
}
