package client

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("client name cannot be empty")
	ErrEmptyLicenseNumber = errors.New("license number cannot be empty")
	ErrClientDisabled     = errors.New("client is disabled")
)

// Client is the read-mostly directory entry the eligibility gate consults.
// Enablement is administered outside the booking flows; disabling a client
// never touches their existing rentals or reservations.
type Client struct {
	id            uuid.UUID
	name          string
	enabled       bool
	licenseNumber string
	licenseExpiry *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewClient(name, licenseNumber string, licenseExpiry *time.Time) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	licenseNumber = strings.TrimSpace(licenseNumber)
	if licenseNumber == "" {
		return nil, ErrEmptyLicenseNumber
	}
	return &Client{
		id:            uuid.New(),
		name:          name,
		enabled:       true,
		licenseNumber: licenseNumber,
		licenseExpiry: licenseExpiry,
	}, nil
}

func ReconstructClient(id uuid.UUID, name string, enabled bool, licenseNumber string, licenseExpiry *time.Time, createdAt, updatedAt time.Time) *Client {
	return &Client{
		id:            id,
		name:          name,
		enabled:       enabled,
		licenseNumber: licenseNumber,
		licenseExpiry: licenseExpiry,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// CheckEligible gates every new rental and reservation.
func (c *Client) CheckEligible() error {
	if !c.enabled {
		return ErrClientDisabled
	}
	return nil
}

func (c *Client) Enable()  { c.enabled = true }
func (c *Client) Disable() { c.enabled = false }

func (c *Client) ID() uuid.UUID             { return c.id }
func (c *Client) Name() string              { return c.name }
func (c *Client) Enabled() bool             { return c.enabled }
func (c *Client) LicenseNumber() string     { return c.licenseNumber }
func (c *Client) LicenseExpiry() *time.Time { return c.licenseExpiry }
func (c *Client) CreatedAt() time.Time      { return c.createdAt }
func (c *Client) UpdatedAt() time.Time      { return c.updatedAt }
