package tenancy

// Principal es el actor autenticado de la petición, tal como lo entrega la capa
// HTTP. OrganizationID es nil si y solo si el principal es de plataforma.
type Principal struct {
	ID             string
	OrganizationID *int64
	PlatformAdmin  bool
	Role           string
}

// IsPlatform indica si el principal no pertenece a ninguna organización.
func (p Principal) IsPlatform() bool { return p.OrganizationID == nil }

// Scope deriva el scope de acceso a datos del principal: tenant fijado a su
// organización, o plataforma sin objetivo (el objetivo se fija con WithTarget).
func (p Principal) Scope() Scope {
	if p.OrganizationID != nil {
		return TenantScope(*p.OrganizationID)
	}
	return PlatformScope()
}
