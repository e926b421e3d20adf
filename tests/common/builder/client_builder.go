//go:build unit || e2e

package builder

import (
	"time"

	domclient "fleet-booking/internal/domain/client"
	reqdto "fleet-booking/internal/handler/dto/request"
	"fleet-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientBuilder struct {
	Name          string
	LicenseNumber string
	LicenseExpiry *time.Time
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		Name:          "Alice Driver",
		LicenseNumber: "LIC-0001",
	}
}

func (b *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(b)
	return b
}

func (b *ClientBuilder) BuildDomain() (*domclient.Client, error) {
	return domclient.NewClient(b.Name, b.LicenseNumber, b.LicenseExpiry)
}

func (b *ClientBuilder) BuildCreateRequestDTO() reqdto.CreateClientRequest {
	return reqdto.CreateClientRequest{
		Name:          b.Name,
		LicenseNumber: b.LicenseNumber,
	}
}

func (b *ClientBuilder) BuildView() *queries.ClientView {
	now := time.Now()
	return &queries.ClientView{
		ID:            uuid.New(),
		Name:          b.Name,
		Enabled:       true,
		LicenseNumber: b.LicenseNumber,
		LicenseExpiry: b.LicenseExpiry,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
