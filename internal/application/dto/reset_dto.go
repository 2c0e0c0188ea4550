package dto

// ResetRequest entrada para un reinicio de datos.
//
// Scope "organization" borra los datos de negocio de una organización y
// conserva usuarios y la organización misma. Scope "all" vacía la plataforma
// completa y sólo puede ejecutarlo un administrador de plataforma.
type ResetRequest struct {
	Scope          string `json:"scope" validate:"required,oneof=organization all"`
	OrganizationID int64  `json:"organization_id,omitempty"`
}

// ResetResponse resultado de un reinicio: filas borradas por colección, en el
// orden en que se ejecutaron.
type ResetResponse struct {
	Success bool             `json:"success"`
	Deleted map[string]int64 `json:"deleted"`
}
