package tenancy

import (
	"github.com/jhoicas/multiempresa-api/internal/domain"
)

// Scope representa el alcance de acceso a datos de un principal. Es una variante
// etiquetada: scope de tenant (fijado a su organización) o scope de plataforma,
// con o sin organización objetivo explícita. Toda lectura/escritura de entidades
// de tenant pasa por un Scope; nunca se deriva ad hoc en los endpoints.
type Scope struct {
	platform bool
	orgID    int64
	targeted bool
}

// TenantScope construye el scope de un principal atado a una organización.
func TenantScope(orgID int64) Scope {
	return Scope{orgID: orgID, targeted: true}
}

// PlatformScope construye el scope de un principal de plataforma sin objetivo.
// Sin objetivo explícito las consultas se restringen a organization_id IS NULL:
// conjunto vacío, nunca acceso cross-tenant accidental.
func PlatformScope() Scope {
	return Scope{platform: true}
}

// IsPlatform indica si el scope pertenece a un principal de plataforma.
func (s Scope) IsPlatform() bool { return s.platform }

// OrganizationID devuelve la organización efectiva del scope. ok es false para
// un scope de plataforma sin objetivo.
func (s Scope) OrganizationID() (int64, bool) {
	if !s.targeted {
		return 0, false
	}
	return s.orgID, true
}

// RequireOrganizationID devuelve la organización efectiva o
// domain.ErrMissingTenantContext si el scope no tiene ninguna.
func (s Scope) RequireOrganizationID() (int64, error) {
	org, ok := s.OrganizationID()
	if !ok {
		return 0, domain.ErrMissingTenantContext
	}
	return org, nil
}

// WithTarget fija la organización objetivo. Para un scope de tenant solo es
// válido su propia organización (otra cosa es domain.ErrCrossTenantWrite); para
// plataforma el target es el opt-in explícito de acceso cross-tenant.
func (s Scope) WithTarget(orgID int64) (Scope, error) {
	if orgID <= 0 {
		return s, domain.ErrInvalidInput
	}
	if s.platform {
		return Scope{platform: true, orgID: orgID, targeted: true}, nil
	}
	if orgID != s.orgID {
		return s, domain.ErrCrossTenantWrite
	}
	return s, nil
}

// PinWrite resuelve la organización que debe llevar una escritura. La organización
// del payload se ignora salvo que contradiga el scope: requested == 0 se rellena,
// requested distinto al scope es domain.ErrCrossTenantWrite.
func (s Scope) PinWrite(requested int64) (int64, error) {
	own, err := s.RequireOrganizationID()
	if err != nil {
		return 0, err
	}
	if requested != 0 && requested != own {
		return 0, domain.ErrCrossTenantWrite
	}
	return own, nil
}

// Owned es la capacidad que implementa toda entidad de tenant: conocer a qué
// organización pertenece. Sustituye cualquier inspección en runtime por un
// contrato verificado en compilación.
type Owned interface {
	TenantID() int64
}

// EnsureAccess verifica que un registro ya cargado pertenece a la organización
// del scope. Un registro ajeno se reporta como domain.ErrNotFound, igual que un
// registro inexistente: quien sondea ids de otro tenant no puede distinguir
// "existe pero ajeno" de "no existe".
func EnsureAccess(rec Owned, s Scope) error {
	if rec == nil {
		return domain.ErrNotFound
	}
	org, ok := s.OrganizationID()
	if !ok || rec.TenantID() != org {
		return domain.ErrNotFound
	}
	return nil
}
