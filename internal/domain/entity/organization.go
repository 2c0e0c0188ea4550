package entity

import "time"

// Estados de ciclo de vida de una organización (tenant).
const (
	OrgStatusTrial     = "trial"
	OrgStatusActive    = "active"
	OrgStatusSuspended = "suspended"
	OrgStatusExpired   = "expired"
)

// Organization representa un tenant: una cuenta independiente cuyos datos están
// aislados del resto. El subdominio es único, en minúsculas e inmutable una vez
// asignado. Solo las organizaciones en estado active resuelven como tenant de
// una petición entrante; una organización en trial ya permite iniciar sesión a
// sus usuarios pero todavía no resuelve.
type Organization struct {
	ID           int64
	Subdomain    string
	Name         string
	Status       string // trial, active, suspended, expired
	ContactName  string
	ContactEmail string
	Address      string
	City         string
	Country      string

	// Flags de onboarding: el reset de negocio los devuelve a false.
	OnboardingCompanyDone bool
	OnboardingCatalogDone bool
	OnboardingTeamDone    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive indica si la organización puede resolverse para peticiones
// entrantes. Solo el estado active habilita la resolución.
func (o *Organization) IsActive() bool {
	return o.Status == OrgStatusActive
}

// IsOperational indica si los usuarios de la organización pueden iniciar
// sesión: trial y active son estados operativos, suspended y expired no.
func (o *Organization) IsOperational() bool {
	return o.Status == OrgStatusActive || o.Status == OrgStatusTrial
}
