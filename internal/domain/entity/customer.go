package entity

import "time"

// Customer representa un cliente de la organización. Nombre único por organización.
type Customer struct {
	ID             string
	OrganizationID int64
	CompanyID      *string // sede que lo atiende, opcional
	Name           string
	TaxID          string
	Email          string
	Phone          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TenantID implementa tenancy.Owned.
func (c *Customer) TenantID() int64 { return c.OrganizationID }
