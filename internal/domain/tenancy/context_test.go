package tenancy_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multiempresa-api/internal/domain"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

func TestRequestContext_Vacio(t *testing.T) {
	rc := tenancy.NewRequestContext()

	_, ok := rc.Organization()
	assert.False(t, ok)

	_, err := rc.RequireOrganization()
	assert.ErrorIs(t, err, domain.ErrMissingTenantContext)

	_, err = rc.Scope()
	assert.ErrorIs(t, err, domain.ErrMissingTenantContext, "sin principal no hay scope")
}

func TestRequestContext_SetYClear(t *testing.T) {
	rc := tenancy.NewRequestContext()
	org := int64(7)
	rc.SetOrganization(org)
	rc.SetPrincipal(tenancy.Principal{ID: "u1", OrganizationID: &org})

	got, err := rc.RequireOrganization()
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)

	rc.Clear()

	_, ok := rc.Organization()
	assert.False(t, ok, "Clear debe dejar el contexto vacío")
	_, ok = rc.Principal()
	assert.False(t, ok)
}

func TestRequestContext_ScopeTenantIgnoraOrganizacionResuelta(t *testing.T) {
	// Un principal de tenant conserva su propio scope aunque la petición haya
	// resuelto otra organización (el header no redirige escrituras).
	rc := tenancy.NewRequestContext()
	own := int64(3)
	rc.SetOrganization(9)
	rc.SetPrincipal(tenancy.Principal{ID: "u1", OrganizationID: &own})

	s, err := rc.Scope()
	require.NoError(t, err)
	org, ok := s.OrganizationID()
	require.True(t, ok)
	assert.Equal(t, int64(3), org)
}

func TestRequestContext_ScopePlataformaApuntaALaResuelta(t *testing.T) {
	rc := tenancy.NewRequestContext()
	rc.SetOrganization(9)
	rc.SetPrincipal(tenancy.Principal{ID: "admin", PlatformAdmin: true})

	s, err := rc.Scope()
	require.NoError(t, err)
	org, ok := s.OrganizationID()
	require.True(t, ok)
	assert.Equal(t, int64(9), org, "plataforma opera sobre la organización resuelta")
}

func TestRequestContext_ScopePlataformaSinResolver(t *testing.T) {
	rc := tenancy.NewRequestContext()
	rc.SetPrincipal(tenancy.Principal{ID: "admin", PlatformAdmin: true})

	s, err := rc.Scope()
	require.NoError(t, err)
	assert.True(t, s.IsPlatform())
	_, ok := s.OrganizationID()
	assert.False(t, ok, "sin organización resuelta el scope de plataforma queda sin target")
}

// Cada petición tiene su propia instancia: contextos concurrentes no se pisan.
func TestRequestContext_SinFugasEntreInstanciasConcurrentes(t *testing.T) {
	const n = 50
	var wg sync.WaitGroup
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			rc := tenancy.NewRequestContext()
			rc.SetOrganization(id)
			defer rc.Clear()

			got, err := rc.RequireOrganization()
			assert.NoError(t, err)
			assert.Equal(t, id, got)
		}(int64(i))
	}
	wg.Wait()
}
