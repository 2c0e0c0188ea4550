package entity

import "time"

// Vendor representa un proveedor de la organización. Nombre único por organización.
type Vendor struct {
	ID             string
	OrganizationID int64
	CompanyID      *string // sede que lo gestiona, opcional
	Name           string
	TaxID          string
	Email          string
	Phone          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TenantID implementa tenancy.Owned.
func (v *Vendor) TenantID() int64 { return v.OrganizationID }
