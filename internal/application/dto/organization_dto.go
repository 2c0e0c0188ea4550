package dto

import "time"

// CreateOrganizationRequest alta de una organización (operación de plataforma).
// Si Subdomain viene vacío se deriva del nombre, normalizado.
type CreateOrganizationRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Subdomain    string `json:"subdomain" validate:"omitempty,min=1,max=63"`
	ContactName  string `json:"contact_name" validate:"required,min=1,max=200"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	Address      string `json:"address" validate:"required"`
	City         string `json:"city" validate:"required"`
	Country      string `json:"country" validate:"required"`
}

// UpdateOrganizationStatusRequest cambio de estado de ciclo de vida.
type UpdateOrganizationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=trial active suspended expired"`
}

// OrganizationResponse salida completa (operaciones de plataforma).
type OrganizationResponse struct {
	ID                    int64     `json:"id"`
	Subdomain             string    `json:"subdomain"`
	Name                  string    `json:"name"`
	Status                string    `json:"status"`
	ContactName           string    `json:"contact_name"`
	ContactEmail          string    `json:"contact_email"`
	Address               string    `json:"address"`
	City                  string    `json:"city"`
	Country               string    `json:"country"`
	OnboardingCompanyDone bool      `json:"onboarding_company_done"`
	OnboardingCatalogDone bool      `json:"onboarding_catalog_done"`
	OnboardingTeamDone    bool      `json:"onboarding_team_done"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// PublicOrganizationResponse salida del lookup público por subdominio:
// lo mínimo para que el front monte la pantalla de acceso del tenant.
type PublicOrganizationResponse struct {
	ID        int64  `json:"id"`
	Subdomain string `json:"subdomain"`
	Name      string `json:"name"`
}

// OrganizationListResponse lista paginada de organizaciones.
type OrganizationListResponse struct {
	Items []OrganizationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
