package dto

import "time"

// CreateVendorRequest entrada para crear un proveedor.
type CreateVendorRequest struct {
	OrganizationID int64   `json:"organization_id,omitempty"`
	CompanyID      *string `json:"company_id"`
	Name           string  `json:"name" validate:"required,min=1,max=200"`
	TaxID          string  `json:"tax_id"`
	Email          string  `json:"email" validate:"omitempty,email"`
	Phone          string  `json:"phone"`
}

// UpdateVendorRequest entrada para actualizar un proveedor.
type UpdateVendorRequest struct {
	CompanyID *string `json:"company_id"`
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	TaxID     *string `json:"tax_id"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
}

// VendorResponse salida de un proveedor.
type VendorResponse struct {
	ID             string    `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	CompanyID      *string   `json:"company_id,omitempty"`
	Name           string    `json:"name"`
	TaxID          string    `json:"tax_id"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// VendorListResponse lista paginada de proveedores.
type VendorListResponse struct {
	Items []VendorResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
