package entity

import "time"

// Roles válidos para User dentro de una organización.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
	RoleConsulta = "consulta"
)

// User representa un principal del sistema. OrganizationID es nil si y solo si
// el usuario es de plataforma (opera entre tenants con target explícito).
type User struct {
	ID             string
	OrganizationID *int64 // nil = principal de plataforma
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Name           string
	Role           string // admin, operador, consulta
	PlatformAdmin  bool
	Status         string // active, inactive, suspended
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsPlatform indica si el usuario no pertenece a ninguna organización.
func (u *User) IsPlatform() bool {
	return u.OrganizationID == nil
}
