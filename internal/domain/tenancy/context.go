package tenancy

import "github.com/jhoicas/multiempresa-api/internal/domain"

// RequestContext es el estado de tenancy de UNA petición en curso: organización
// resuelta y principal autenticado. Se crea al entrar la petición, se lee durante
// la lógica de negocio y se limpia con defer en todas las salidas (éxito, error
// de negocio o panic recuperado). Cada petición tiene su propia instancia, nunca
// se comparte entre peticiones concurrentes.
type RequestContext struct {
	orgID     *int64
	principal *Principal
}

// NewRequestContext crea un contexto vacío para una petición.
func NewRequestContext() *RequestContext {
	return &RequestContext{}
}

// SetOrganization fija la organización resuelta. Idempotente dentro de la misma
// petición: una segunda llamada sobreescribe.
func (rc *RequestContext) SetOrganization(id int64) {
	rc.orgID = &id
}

// Organization devuelve la organización resuelta, si la hay.
func (rc *RequestContext) Organization() (int64, bool) {
	if rc.orgID == nil {
		return 0, false
	}
	return *rc.orgID, true
}

// RequireOrganization devuelve la organización resuelta o
// domain.ErrMissingTenantContext si la petición no tiene ninguna.
func (rc *RequestContext) RequireOrganization() (int64, error) {
	org, ok := rc.Organization()
	if !ok {
		return 0, domain.ErrMissingTenantContext
	}
	return org, nil
}

// SetPrincipal fija el principal autenticado de la petición.
func (rc *RequestContext) SetPrincipal(p Principal) {
	rc.principal = &p
}

// Principal devuelve el principal autenticado, si lo hay.
func (rc *RequestContext) Principal() (Principal, bool) {
	if rc.principal == nil {
		return Principal{}, false
	}
	return *rc.principal, true
}

// Scope deriva el scope de acceso a datos de la petición: el scope del principal,
// con la organización resuelta como objetivo cuando el principal es de plataforma.
// Sin principal no hay scope posible (domain.ErrMissingTenantContext).
func (rc *RequestContext) Scope() (Scope, error) {
	p, ok := rc.Principal()
	if !ok {
		return Scope{}, domain.ErrMissingTenantContext
	}
	s := p.Scope()
	if s.IsPlatform() {
		if org, resolved := rc.Organization(); resolved {
			return s.WithTarget(org)
		}
	}
	return s, nil
}

// Clear devuelve el contexto a vacío. Lo invoca exactamente una vez el middleware
// de frontera vía defer, también cuando el handler termina en error o panic.
func (rc *RequestContext) Clear() {
	rc.orgID = nil
	rc.principal = nil
}
