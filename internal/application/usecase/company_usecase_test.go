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
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

// memCompanyRepo réplica en memoria del contrato del repositorio: fija las
// escrituras a la organización del scope y filtra las lecturas por ella.
type memCompanyRepo struct {
	rows map[string]*entity.Company
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{rows: map[string]*entity.Company{}}
}

func (m *memCompanyRepo) visible(c *entity.Company, scope tenancy.Scope) bool {
	org, ok := scope.OrganizationID()
	return ok && c.OrganizationID == org
}

func (m *memCompanyRepo) Create(_ context.Context, scope tenancy.Scope, c *entity.Company) error {
	org, err := scope.PinWrite(c.OrganizationID)
	if err != nil {
		return err
	}
	c.OrganizationID = org
	m.rows[c.ID] = c
	return nil
}

func (m *memCompanyRepo) GetByID(_ context.Context, scope tenancy.Scope, id string) (*entity.Company, error) {
	c, ok := m.rows[id]
	if !ok || !m.visible(c, scope) {
		return nil, nil
	}
	return c, nil
}

func (m *memCompanyRepo) GetByName(_ context.Context, scope tenancy.Scope, name string) (*entity.Company, error) {
	for _, c := range m.rows {
		if c.Name == name && m.visible(c, scope) {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCompanyRepo) List(_ context.Context, scope tenancy.Scope, limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range m.rows {
		if m.visible(c, scope) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCompanyRepo) Update(_ context.Context, scope tenancy.Scope, c *entity.Company) error {
	existing, ok := m.rows[c.ID]
	if !ok || !m.visible(existing, scope) {
		return domain.ErrNotFound
	}
	m.rows[c.ID] = c
	return nil
}

func (m *memCompanyRepo) Delete(_ context.Context, scope tenancy.Scope, id string) error {
	c, ok := m.rows[id]
	if !ok || !m.visible(c, scope) {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func TestCompanyCreate_FijadaALaOrganizacionDelScope(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	out, err := uc.Create(context.Background(), tenancy.TenantScope(7), dto.CreateCompanyRequest{Name: "Sede Norte"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.OrganizationID, "el payload sin organización se fija a la del scope")
}

func TestCompanyCreate_OtraOrganizacionRechazada(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	_, err := uc.Create(context.Background(), tenancy.TenantScope(7), dto.CreateCompanyRequest{
		OrganizationID: 3,
		Name:           "Sede Ajena",
	})
	assert.ErrorIs(t, err, domain.ErrCrossTenantWrite)
}

func TestCompanyCreate_NombreDuplicadoEnLaOrganizacion(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)
	scope := tenancy.TenantScope(7)

	_, err := uc.Create(context.Background(), scope, dto.CreateCompanyRequest{Name: "Sede Norte"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), scope, dto.CreateCompanyRequest{Name: "Sede Norte"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// El mismo nombre en otra organización no colisiona.
	_, err = uc.Create(context.Background(), tenancy.TenantScope(3), dto.CreateCompanyRequest{Name: "Sede Norte"})
	assert.NoError(t, err)
}

func TestCompanyGetByID_RegistroAjenoEnmascarado(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	created, err := uc.Create(context.Background(), tenancy.TenantScope(7), dto.CreateCompanyRequest{Name: "Sede Norte"})
	require.NoError(t, err)

	// El dueño la ve.
	got, err := uc.GetByID(context.Background(), tenancy.TenantScope(7), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Otro tenant recibe not-found, no forbidden.
	_, err = uc.GetByID(context.Background(), tenancy.TenantScope(3), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyUpdateDelete_RegistroAjenoEnmascarado(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	created, err := uc.Create(context.Background(), tenancy.TenantScope(7), dto.CreateCompanyRequest{Name: "Sede Norte"})
	require.NoError(t, err)

	nuevo := "Sede Renombrada"
	_, err = uc.Update(context.Background(), tenancy.TenantScope(3), created.ID, dto.UpdateCompanyRequest{Name: &nuevo})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(context.Background(), tenancy.TenantScope(3), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// El registro sigue intacto para su dueño.
	got, err := uc.GetByID(context.Background(), tenancy.TenantScope(7), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sede Norte", got.Name)
}

func TestCompanyList_SoloDelScope(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	_, err := uc.Create(context.Background(), tenancy.TenantScope(7), dto.CreateCompanyRequest{Name: "A"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), tenancy.TenantScope(3), dto.CreateCompanyRequest{Name: "B"})
	require.NoError(t, err)

	out, err := uc.List(context.Background(), tenancy.TenantScope(7), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "A", out.Items[0].Name)
}

func TestCompany_PlataformaConTargetOpera(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	scope, err := tenancy.PlatformScope().WithTarget(7)
	require.NoError(t, err)

	created, err := uc.Create(context.Background(), scope, dto.CreateCompanyRequest{Name: "Sede Soporte"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.OrganizationID)
}
