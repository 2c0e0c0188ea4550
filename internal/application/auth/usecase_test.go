package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/multiempresa-api/internal/application/auth"
	"github.com/jhoicas/multiempresa-api/internal/application/dto"
	"github.com/jhoicas/multiempresa-api/internal/domain"
	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
	pkgjwt "github.com/jhoicas/multiempresa-api/pkg/jwt"
)

const testSecret = "auth-test-secret"

// memUserRepo usuarios en memoria, indexados por email.
type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo(users ...*entity.User) *memUserRepo {
	m := &memUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		m.users[u.Email] = u
	}
	return m
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	m.users[u.Email] = u
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return m.users[email], nil
}

func (m *memUserRepo) ListByOrganization(_ context.Context, orgID int64, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.users {
		if u.OrganizationID != nil && *u.OrganizationID == orgID {
			out = append(out, u)
		}
	}
	return out, nil
}

// memOrgRepo directorio mínimo en memoria.
type memOrgRepo struct {
	orgs map[int64]*entity.Organization
}

func (m *memOrgRepo) Create(_ context.Context, _ *entity.Organization) error { return nil }
func (m *memOrgRepo) GetByID(_ context.Context, id int64) (*entity.Organization, error) {
	return m.orgs[id], nil
}
func (m *memOrgRepo) GetBySubdomain(_ context.Context, _ string) (*entity.Organization, error) {
	return nil, nil
}
func (m *memOrgRepo) List(_ context.Context, _, _ int) ([]*entity.Organization, error) {
	return nil, nil
}
func (m *memOrgRepo) UpdateStatus(_ context.Context, _ int64, _ string) error { return nil }

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newAuthFixture(t *testing.T, orgStatus string) (*auth.AuthUseCase, *memUserRepo) {
	t.Helper()
	org := int64(7)
	users := newMemUserRepo(&entity.User{
		ID:             "u1",
		OrganizationID: &org,
		Email:          "ana@acme.co",
		PasswordHash:   hash(t, "secreta123"),
		Name:           "Ana",
		Role:           entity.RoleAdmin,
		Status:         "active",
	})
	orgs := &memOrgRepo{orgs: map[int64]*entity.Organization{
		7: {ID: 7, Subdomain: "acme", Status: orgStatus},
	}}
	uc := auth.NewAuthUseCase(users, orgs, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "multiempresa-test",
	})
	return uc, users
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, _ := newAuthFixture(t, entity.OrgStatusActive)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.co", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "u1", out.User.ID)

	// El token lleva la organización y el rol del usuario.
	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	require.NotNil(t, claims.OrganizationID)
	assert.Equal(t, int64(7), *claims.OrganizationID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthFixture(t, entity.OrgStatusActive)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.co", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthFixture(t, entity.OrgStatusActive)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@acme.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_OrganizacionEnTrial(t *testing.T) {
	// Trial es un estado operativo para el login aunque la organización
	// todavía no resuelva como tenant de peticiones entrantes.
	uc, _ := newAuthFixture(t, entity.OrgStatusTrial)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.co", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_OrganizacionSuspendida(t *testing.T) {
	uc, _ := newAuthFixture(t, entity.OrgStatusSuspended)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@acme.co", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"usuarios de organizaciones suspendidas no inician sesión")
}

func TestCreateUser_EnLaOrganizacionDelScope(t *testing.T) {
	uc, users := newAuthFixture(t, entity.OrgStatusActive)

	out, err := uc.CreateUser(context.Background(), tenancy.TenantScope(7), dto.CreateUserRequest{
		Email:    "luis@acme.co",
		Password: "clave-larga",
		Name:     "Luis",
		Role:     entity.RoleOperador,
	})
	require.NoError(t, err)
	require.NotNil(t, out.OrganizationID)
	assert.Equal(t, int64(7), *out.OrganizationID)

	stored, err := users.GetByEmail(context.Background(), "luis@acme.co")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-larga", stored.PasswordHash, "la password nunca se guarda en claro")
}

func TestCreateUser_EmailYaRegistrado(t *testing.T) {
	uc, _ := newAuthFixture(t, entity.OrgStatusActive)

	_, err := uc.CreateUser(context.Background(), tenancy.TenantScope(7), dto.CreateUserRequest{
		Email:    "ana@acme.co",
		Password: "clave-larga",
		Name:     "Otra Ana",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateUser_SinOrganizacionEnScope(t *testing.T) {
	uc, _ := newAuthFixture(t, entity.OrgStatusActive)

	_, err := uc.CreateUser(context.Background(), tenancy.PlatformScope(), dto.CreateUserRequest{
		Email:    "luis@acme.co",
		Password: "clave-larga",
		Name:     "Luis",
	})
	assert.ErrorIs(t, err, domain.ErrMissingTenantContext)
}
