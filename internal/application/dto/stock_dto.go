package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpsertStockRequest entrada para fijar la existencia de un producto en una sede.
type UpsertStockRequest struct {
	OrganizationID int64           `json:"organization_id,omitempty"`
	ProductID      string          `json:"product_id" validate:"required,uuid"`
	CompanyID      string          `json:"company_id" validate:"required,uuid"`
	Quantity       decimal.Decimal `json:"quantity"`
}

// StockResponse salida de una existencia.
type StockResponse struct {
	ID             string          `json:"id"`
	OrganizationID int64           `json:"organization_id"`
	ProductID      string          `json:"product_id"`
	CompanyID      string          `json:"company_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// StockListResponse lista paginada de existencias.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
