package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multiempresa-api/internal/application/dto"
	"github.com/jhoicas/multiempresa-api/internal/application/usecase"
	"github.com/jhoicas/multiempresa-api/internal/domain"
	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
)

// memOrgRepo directorio de organizaciones en memoria.
type memOrgRepo struct {
	seq  int64
	byID map[int64]*entity.Organization
}

func newMemOrgRepo() *memOrgRepo {
	return &memOrgRepo{byID: map[int64]*entity.Organization{}}
}

func (m *memOrgRepo) Create(_ context.Context, org *entity.Organization) error {
	m.seq++
	org.ID = m.seq
	m.byID[org.ID] = org
	return nil
}

func (m *memOrgRepo) GetByID(_ context.Context, id int64) (*entity.Organization, error) {
	return m.byID[id], nil
}

func (m *memOrgRepo) GetBySubdomain(_ context.Context, sub string) (*entity.Organization, error) {
	for _, o := range m.byID {
		if o.Subdomain == sub {
			return o, nil
		}
	}
	return nil, nil
}

func (m *memOrgRepo) List(_ context.Context, limit, offset int) ([]*entity.Organization, error) {
	out := make([]*entity.Organization, 0, len(m.byID))
	for _, o := range m.byID {
		out = append(out, o)
	}
	return out, nil
}

func (m *memOrgRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	if o, ok := m.byID[id]; ok {
		o.Status = status
	}
	return nil
}

func validCreate() dto.CreateOrganizationRequest {
	return dto.CreateOrganizationRequest{
		Name:         "Café Rincón",
		ContactName:  "Ana",
		ContactEmail: "ana@cafe-rincon.co",
		Address:      "Cra 1 # 2-3",
		City:         "Bogotá",
		Country:      "CO",
	}
}

func TestOrganizationCreate_DerivaYNormalizaSubdominio(t *testing.T) {
	uc := usecase.NewOrganizationUseCase(newMemOrgRepo(), nil)

	out, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.Equal(t, "cafe-rincon", out.Subdomain, "sin subdominio explícito se deriva del nombre")
	assert.Equal(t, entity.OrgStatusTrial, out.Status, "las organizaciones nacen en trial")
}

func TestOrganizationCreate_SubdominioTomado(t *testing.T) {
	repo := newMemOrgRepo()
	uc := usecase.NewOrganizationUseCase(repo, nil)

	_, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	in := validCreate()
	in.Name = "Otra"
	in.Subdomain = "Cafe-Rincón" // normaliza al mismo subdominio
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestOrganizationCreate_SubdominioInutilizable(t *testing.T) {
	uc := usecase.NewOrganizationUseCase(newMemOrgRepo(), nil)

	in := validCreate()
	in.Name = "!!!"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrganizationLookup_SoloActivas(t *testing.T) {
	repo := newMemOrgRepo()
	uc := usecase.NewOrganizationUseCase(repo, nil)

	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	// recién creada (trial) todavía no resuelve
	_, err = uc.Lookup(context.Background(), "cafe-rincon")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// activada resuelve
	require.NoError(t, repo.UpdateStatus(context.Background(), created.ID, entity.OrgStatusActive))
	out, err := uc.Lookup(context.Background(), "cafe-rincon")
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)

	// suspendida no resuelve: indistinguible de inexistente
	require.NoError(t, repo.UpdateStatus(context.Background(), created.ID, entity.OrgStatusSuspended))
	_, err = uc.Lookup(context.Background(), "cafe-rincon")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Lookup(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrganizationUpdateStatus_Inexistente(t *testing.T) {
	uc := usecase.NewOrganizationUseCase(newMemOrgRepo(), nil)

	_, err := uc.UpdateStatus(context.Background(), 99, dto.UpdateOrganizationStatusRequest{Status: entity.OrgStatusActive})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
