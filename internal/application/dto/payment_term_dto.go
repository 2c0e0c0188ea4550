package dto

import "time"

// CreatePaymentTermRequest entrada para crear una condición de pago. Debe
// referir a un proveedor o a un cliente, nunca ambos.
type CreatePaymentTermRequest struct {
	OrganizationID int64   `json:"organization_id,omitempty"`
	VendorID       *string `json:"vendor_id"`
	CustomerID     *string `json:"customer_id"`
	Name           string  `json:"name" validate:"required,min=1,max=200"`
	Days           int     `json:"days" validate:"gte=0"`
}

// PaymentTermResponse salida de una condición de pago.
type PaymentTermResponse struct {
	ID             string    `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	VendorID       *string   `json:"vendor_id,omitempty"`
	CustomerID     *string   `json:"customer_id,omitempty"`
	Name           string    `json:"name"`
	Days           int       `json:"days"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PaymentTermListResponse lista paginada de condiciones de pago.
type PaymentTermListResponse struct {
	Items []PaymentTermResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
