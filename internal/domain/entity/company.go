package entity

import "time"

// Company representa una razón social o sede propia de la organización.
// Nombre único por organización (constraint en DB).
type Company struct {
	ID             string
	OrganizationID int64
	Name           string
	TaxID          string // NIT u otro identificador fiscal
	Address        string
	Phone          string
	Email          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TenantID implementa tenancy.Owned.
func (c *Company) TenantID() int64 { return c.OrganizationID }
