package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa la existencia de un producto en una sede (única por
// organización + producto + sede).
type Stock struct {
	ID             string
	OrganizationID int64
	ProductID      string
	CompanyID      string
	Quantity       decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TenantID implementa tenancy.Owned.
func (s *Stock) TenantID() int64 { return s.OrganizationID }
