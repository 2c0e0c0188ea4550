package dto

import "time"

// CreateCompanyRequest entrada para crear una sede.
// OrganizationID es opcional: el enforcer lo fija al scope del principal y
// rechaza valores que lo contradigan.
type CreateCompanyRequest struct {
	OrganizationID int64  `json:"organization_id,omitempty"`
	Name           string `json:"name" validate:"required,min=1,max=200"`
	TaxID          string `json:"tax_id"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email" validate:"omitempty,email"`
}

// UpdateCompanyRequest entrada para actualizar una sede (campos opcionales).
type UpdateCompanyRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	TaxID   *string `json:"tax_id"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

// CompanyResponse salida de una sede.
type CompanyResponse struct {
	ID             string    `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	Name           string    `json:"name"`
	TaxID          string    `json:"tax_id"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de sedes.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
