package lifecycle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multiempresa-api/internal/application/dto"
	applifecycle "github.com/jhoicas/multiempresa-api/internal/application/lifecycle"
	"github.com/jhoicas/multiempresa-api/internal/domain"
	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/lifecycle"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
	"github.com/jhoicas/multiempresa-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeResetRepo registra los borrados en orden y permite inyectar un fallo en
// una colección concreta.
type fakeResetRepo struct {
	counts     map[lifecycle.Collection]int64
	failAt     lifecycle.Collection
	deleted    []lifecycle.Collection
	onboarding []int64
}

func (f *fakeResetRepo) DeleteByOrganization(_ context.Context, col lifecycle.Collection, _ int64) (int64, error) {
	if col == f.failAt {
		return 0, errors.New("deadlock detected")
	}
	f.deleted = append(f.deleted, col)
	return f.counts[col], nil
}

func (f *fakeResetRepo) DeleteAll(_ context.Context, col lifecycle.Collection) (int64, error) {
	if col == f.failAt {
		return 0, errors.New("deadlock detected")
	}
	f.deleted = append(f.deleted, col)
	return f.counts[col], nil
}

func (f *fakeResetRepo) ResetOnboarding(_ context.Context, orgID int64) error {
	f.onboarding = append(f.onboarding, orgID)
	return nil
}

// fakeRunner simula la transacción: committed sólo si fn no devolvió error.
type fakeRunner struct {
	repo      *fakeResetRepo
	committed bool
}

func (r *fakeRunner) RunReset(_ context.Context, fn func(reset repository.ResetRepository) error) error {
	if err := fn(r.repo); err != nil {
		return err
	}
	r.committed = true
	return nil
}

// fakeOrgRepo directorio mínimo en memoria.
type fakeOrgRepo struct {
	orgs map[int64]*entity.Organization
}

func (f *fakeOrgRepo) Create(_ context.Context, org *entity.Organization) error { return nil }
func (f *fakeOrgRepo) GetByID(_ context.Context, id int64) (*entity.Organization, error) {
	return f.orgs[id], nil
}
func (f *fakeOrgRepo) GetBySubdomain(_ context.Context, sub string) (*entity.Organization, error) {
	for _, o := range f.orgs {
		if o.Subdomain == sub {
			return o, nil
		}
	}
	return nil, nil
}
func (f *fakeOrgRepo) List(_ context.Context, _, _ int) ([]*entity.Organization, error) {
	return nil, nil
}
func (f *fakeOrgRepo) UpdateStatus(_ context.Context, _ int64, _ string) error { return nil }

func newFixture(failAt lifecycle.Collection) (*applifecycle.ResetUseCase, *fakeRunner, *fakeResetRepo) {
	repo := &fakeResetRepo{
		counts: map[lifecycle.Collection]int64{
			lifecycle.Notifications: 4,
			lifecycle.Stock:         10,
			lifecycle.Products:      6,
			lifecycle.Companies:     2,
		},
		failAt: failAt,
	}
	runner := &fakeRunner{repo: repo}
	orgs := &fakeOrgRepo{orgs: map[int64]*entity.Organization{
		7: {ID: 7, Subdomain: "acme", Name: "Acme", Status: entity.OrgStatusActive},
	}}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return applifecycle.NewResetUseCase(runner, orgs, log), runner, repo
}

func adminOf(orgID int64) tenancy.Principal {
	return tenancy.Principal{ID: "u1", OrganizationID: &orgID, Role: entity.RoleAdmin}
}

func platformAdmin() tenancy.Principal {
	return tenancy.Principal{ID: "root", PlatformAdmin: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reset de organización
// ──────────────────────────────────────────────────────────────────────────────

func TestReset_AdminReiniciaSuOrganizacion(t *testing.T) {
	uc, runner, repo := newFixture("")

	out, err := uc.Reset(context.Background(), adminOf(7), dto.ResetRequest{Scope: applifecycle.ScopeOrganization})
	require.NoError(t, err)
	require.True(t, out.Success)
	assert.True(t, runner.committed)

	// Borrado en orden de dependencias, sin users ni organizations.
	assert.Equal(t, lifecycle.BusinessOrder(), repo.deleted)

	// Conteos por colección, incluidas las que quedaron en cero.
	assert.Equal(t, int64(10), out.Deleted["stock"])
	assert.Equal(t, int64(0), out.Deleted["payment_terms"])
	assert.Len(t, out.Deleted, len(lifecycle.BusinessOrder()))

	// El onboarding vuelve a cero dentro de la misma transacción.
	assert.Equal(t, []int64{7}, repo.onboarding)
}

func TestReset_AdminNoReiniciaOtraOrganizacion(t *testing.T) {
	uc, runner, _ := newFixture("")

	_, err := uc.Reset(context.Background(), adminOf(7), dto.ResetRequest{
		Scope:          applifecycle.ScopeOrganization,
		OrganizationID: 3,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.False(t, runner.committed)
}

func TestReset_RolNoAdminRechazado(t *testing.T) {
	uc, _, _ := newFixture("")
	org := int64(7)
	operador := tenancy.Principal{ID: "u2", OrganizationID: &org, Role: entity.RoleOperador}

	_, err := uc.Reset(context.Background(), operador, dto.ResetRequest{Scope: applifecycle.ScopeOrganization})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReset_OrganizacionInexistente(t *testing.T) {
	uc, _, _ := newFixture("")

	_, err := uc.Reset(context.Background(), platformAdmin(), dto.ResetRequest{
		Scope:          applifecycle.ScopeOrganization,
		OrganizationID: 99,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReset_PlataformaRequiereOrganizationID(t *testing.T) {
	uc, _, _ := newFixture("")

	_, err := uc.Reset(context.Background(), platformAdmin(), dto.ResetRequest{Scope: applifecycle.ScopeOrganization})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un fallo a mitad de secuencia revierte todo: nada se confirma y el error se
// reporta como fallo de reset, sin reintentos.
func TestReset_FalloIntermedioRevierteTodo(t *testing.T) {
	uc, runner, _ := newFixture(lifecycle.Products)

	_, err := uc.Reset(context.Background(), adminOf(7), dto.ResetRequest{Scope: applifecycle.ScopeOrganization})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResetFailed)
	assert.False(t, runner.committed, "con error no puede haber commit")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reset total
// ──────────────────────────────────────────────────────────────────────────────

func TestReset_TotalSoloPlataforma(t *testing.T) {
	uc, runner, _ := newFixture("")

	_, err := uc.Reset(context.Background(), adminOf(7), dto.ResetRequest{Scope: applifecycle.ScopeAll})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.False(t, runner.committed)
}

func TestReset_TotalVaciaTodasLasColecciones(t *testing.T) {
	uc, runner, repo := newFixture("")

	out, err := uc.Reset(context.Background(), platformAdmin(), dto.ResetRequest{Scope: applifecycle.ScopeAll})
	require.NoError(t, err)
	assert.True(t, runner.committed)

	assert.Equal(t, lifecycle.FullOrder(), repo.deleted,
		"el reset total incluye users y organizations, al final")
	assert.Len(t, out.Deleted, len(lifecycle.FullOrder()))
}

func TestReset_ScopeDesconocido(t *testing.T) {
	uc, _, _ := newFixture("")

	_, err := uc.Reset(context.Background(), platformAdmin(), dto.ResetRequest{Scope: "tenant"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
