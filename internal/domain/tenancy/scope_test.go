package tenancy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multiempresa-api/internal/domain"
	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Scope de tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestTenantScope_OrganizationID(t *testing.T) {
	s := tenancy.TenantScope(7)

	assert.False(t, s.IsPlatform())
	org, ok := s.OrganizationID()
	require.True(t, ok)
	assert.Equal(t, int64(7), org)

	org, err := s.RequireOrganizationID()
	require.NoError(t, err)
	assert.Equal(t, int64(7), org)
}

func TestPlatformScope_SinOrganizacion(t *testing.T) {
	s := tenancy.PlatformScope()

	assert.True(t, s.IsPlatform())
	_, ok := s.OrganizationID()
	assert.False(t, ok, "scope de plataforma sin target no tiene organización")

	_, err := s.RequireOrganizationID()
	assert.ErrorIs(t, err, domain.ErrMissingTenantContext)
}

func TestWithTarget_SoloPlataforma(t *testing.T) {
	// Plataforma puede apuntar a una organización concreta.
	s, err := tenancy.PlatformScope().WithTarget(3)
	require.NoError(t, err)
	org, ok := s.OrganizationID()
	require.True(t, ok)
	assert.Equal(t, int64(3), org)

	// Un scope de tenant jamás cambia de organización.
	_, err = tenancy.TenantScope(7).WithTarget(3)
	assert.ErrorIs(t, err, domain.ErrCrossTenantWrite)
}

// ──────────────────────────────────────────────────────────────────────────────
// PinWrite — fijación de escrituras a la organización del scope
// ──────────────────────────────────────────────────────────────────────────────

func TestPinWrite_TenantIgnoraPayloadVacio(t *testing.T) {
	s := tenancy.TenantScope(7)

	// Sin organización en el payload: se fija la del scope.
	org, err := s.PinWrite(0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), org)

	// Payload redundante pero coincidente: permitido.
	org, err = s.PinWrite(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), org)
}

func TestPinWrite_TenantRechazaOtraOrganizacion(t *testing.T) {
	s := tenancy.TenantScope(7)

	_, err := s.PinWrite(3)
	assert.ErrorIs(t, err, domain.ErrCrossTenantWrite,
		"una escritura hacia otra organización debe rechazarse, nunca redirigirse")
}

func TestPinWrite_PlataformaRequiereTarget(t *testing.T) {
	// Plataforma sin target no puede escribir datos de tenant.
	_, err := tenancy.PlatformScope().PinWrite(0)
	assert.ErrorIs(t, err, domain.ErrMissingTenantContext)

	// Con target explícito la escritura va a ese tenant.
	s, err := tenancy.PlatformScope().WithTarget(5)
	require.NoError(t, err)
	org, err := s.PinWrite(0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), org)

	// Target y payload en conflicto: rechazo.
	_, err = s.PinWrite(9)
	assert.ErrorIs(t, err, domain.ErrCrossTenantWrite)
}

// ──────────────────────────────────────────────────────────────────────────────
// EnsureAccess — enmascarado de registros ajenos
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureAccess_RegistroPropio(t *testing.T) {
	c := &entity.Company{ID: "c1", OrganizationID: 7}
	assert.NoError(t, tenancy.EnsureAccess(c, tenancy.TenantScope(7)))
}

func TestEnsureAccess_RegistroAjenoSeEnmascara(t *testing.T) {
	c := &entity.Company{ID: "c1", OrganizationID: 3}
	err := tenancy.EnsureAccess(c, tenancy.TenantScope(7))

	// ErrNotFound, no ErrForbidden: la existencia del registro no se revela.
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, errors.Is(err, domain.ErrForbidden))
}

func TestEnsureAccess_PlataformaConTarget(t *testing.T) {
	c := &entity.Company{ID: "c1", OrganizationID: 3}

	s, err := tenancy.PlatformScope().WithTarget(3)
	require.NoError(t, err)
	assert.NoError(t, tenancy.EnsureAccess(c, s))

	otro, err := tenancy.PlatformScope().WithTarget(8)
	require.NoError(t, err)
	assert.ErrorIs(t, tenancy.EnsureAccess(c, otro), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Principal → Scope
// ──────────────────────────────────────────────────────────────────────────────

func TestPrincipal_Scope(t *testing.T) {
	org := int64(7)
	tenant := tenancy.Principal{ID: "u1", OrganizationID: &org, Role: entity.RoleAdmin}
	require.False(t, tenant.IsPlatform())
	got, ok := tenant.Scope().OrganizationID()
	require.True(t, ok)
	assert.Equal(t, int64(7), got)

	platform := tenancy.Principal{ID: "u2", PlatformAdmin: true}
	require.True(t, platform.IsPlatform())
	assert.True(t, platform.Scope().IsPlatform())
}
