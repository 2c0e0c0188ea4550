package entity

import "time"

// PaymentTerm representa una condición de pago pactada con un proveedor o un
// cliente (uno de los dos, nunca ambos). Nombre único por organización.
type PaymentTerm struct {
	ID             string
	OrganizationID int64
	VendorID       *string
	CustomerID     *string
	Name           string
	Days           int // días de plazo
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TenantID implementa tenancy.Owned.
func (p *PaymentTerm) TenantID() int64 { return p.OrganizationID }
