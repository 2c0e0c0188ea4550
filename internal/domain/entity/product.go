package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo. SKU único por organización.
type Product struct {
	ID             string
	OrganizationID int64
	VendorID       *string // proveedor preferente, opcional
	SKU            string
	Name           string
	Description    string
	Price          decimal.Decimal // precio de venta
	Cost           decimal.Decimal // costo de reposición
	UnitMeasure    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TenantID implementa tenancy.Owned.
func (p *Product) TenantID() int64 { return p.OrganizationID }
