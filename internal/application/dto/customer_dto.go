package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	OrganizationID int64   `json:"organization_id,omitempty"`
	CompanyID      *string `json:"company_id"`
	Name           string  `json:"name" validate:"required,min=1,max=200"`
	TaxID          string  `json:"tax_id"`
	Email          string  `json:"email" validate:"omitempty,email"`
	Phone          string  `json:"phone"`
}

// UpdateCustomerRequest entrada para actualizar un cliente.
type UpdateCustomerRequest struct {
	CompanyID *string `json:"company_id"`
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	TaxID     *string `json:"tax_id"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
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

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
