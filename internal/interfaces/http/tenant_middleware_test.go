package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
	apphttp "github.com/jhoicas/multiempresa-api/internal/interfaces/http"
	"github.com/jhoicas/multiempresa-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes y helpers
// ──────────────────────────────────────────────────────────────────────────────

// fakeDirectory directorio de organizaciones en memoria.
type fakeDirectory struct {
	byID  map[int64]*entity.Organization
	bySub map[string]*entity.Organization
}

func newFakeDirectory(orgs ...*entity.Organization) *fakeDirectory {
	d := &fakeDirectory{byID: map[int64]*entity.Organization{}, bySub: map[string]*entity.Organization{}}
	for _, o := range orgs {
		d.byID[o.ID] = o
		d.bySub[o.Subdomain] = o
	}
	return d
}

func (d *fakeDirectory) Create(_ context.Context, _ *entity.Organization) error { return nil }
func (d *fakeDirectory) GetByID(_ context.Context, id int64) (*entity.Organization, error) {
	return d.byID[id], nil
}
func (d *fakeDirectory) GetBySubdomain(_ context.Context, sub string) (*entity.Organization, error) {
	return d.bySub[sub], nil
}
func (d *fakeDirectory) List(_ context.Context, _, _ int) ([]*entity.Organization, error) {
	return nil, nil
}
func (d *fakeDirectory) UpdateStatus(_ context.Context, _ int64, _ string) error { return nil }

var testLog = logger.New(logger.Config{Env: "development", Level: "error"})

// buildTenantApp monta contexto + resolución de tenant y un handler que expone
// la organización resuelta.
func buildTenantApp(dir *fakeDirectory, required bool) *fiber.App {
	app := fiber.New()
	app.Get("/who",
		apphttp.ContextMiddleware(),
		apphttp.TenantMiddleware(dir, testLog, required),
		func(c *fiber.Ctx) error {
			rc := apphttp.RequestTenancy(c)
			org, ok := rc.Organization()
			return c.JSON(fiber.Map{"resolved": ok, "organization_id": org})
		},
	)
	return app
}

func get(t *testing.T, app *fiber.App, host, header, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "http://"+host+path, nil)
	if header != "" {
		req.Header.Set(tenancy.HeaderOrganizationID, header)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución
// ──────────────────────────────────────────────────────────────────────────────

func TestTenantMiddleware_PorHeader(t *testing.T) {
	dir := newFakeDirectory(&entity.Organization{ID: 7, Subdomain: "acme", Status: entity.OrgStatusActive})
	app := buildTenantApp(dir, true)

	resp := get(t, app, "miapp.com", "7", "/who")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTenantMiddleware_HeaderGanaAlSubdominio(t *testing.T) {
	dir := newFakeDirectory(
		&entity.Organization{ID: 7, Subdomain: "otra", Status: entity.OrgStatusActive},
		&entity.Organization{ID: 3, Subdomain: "acme", Status: entity.OrgStatusActive},
	)
	app := fiber.New()
	app.Get("/who",
		apphttp.ContextMiddleware(),
		apphttp.TenantMiddleware(dir, testLog, true),
		func(c *fiber.Ctx) error {
			org, _ := apphttp.RequestTenancy(c).Organization()
			return c.SendString(fmt.Sprintf("%d", org))
		},
	)

	req := httptest.NewRequest(http.MethodGet, "http://acme.miapp.com/who", nil)
	req.Header.Set(tenancy.HeaderOrganizationID, "7")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	buf := make([]byte, 8)
	n, _ := resp.Body.Read(buf)
	assert.Equal(t, "7", string(buf[:n]), "con header y subdominio en conflicto decide el header")
}

func TestTenantMiddleware_PorSubdominio(t *testing.T) {
	dir := newFakeDirectory(&entity.Organization{ID: 3, Subdomain: "acme", Status: entity.OrgStatusActive})
	app := buildTenantApp(dir, true)

	resp := get(t, app, "acme.miapp.com", "", "/who")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTenantMiddleware_OrganizacionTrialNoResuelve(t *testing.T) {
	// Solo el estado active habilita la resolución: una organización en trial
	// todavía no atiende peticiones de tenant, ni por header ni por subdominio.
	dir := newFakeDirectory(&entity.Organization{ID: 9, Subdomain: "acme", Status: entity.OrgStatusTrial})
	app := buildTenantApp(dir, true)

	resp := get(t, app, "miapp.com", "9", "/who")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = get(t, app, "acme.miapp.com", "", "/who")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTenantMiddleware_OrganizacionSuspendida(t *testing.T) {
	dir := newFakeDirectory(&entity.Organization{ID: 3, Subdomain: "acme", Status: entity.OrgStatusSuspended})
	app := buildTenantApp(dir, true)

	resp := get(t, app, "acme.miapp.com", "", "/who")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"una organización suspendida no se distingue de una inexistente")
}

func TestTenantMiddleware_SinSenalRequerida(t *testing.T) {
	dir := newFakeDirectory()
	app := buildTenantApp(dir, true)

	resp := get(t, app, "miapp.com", "", "/who")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTenantMiddleware_SinSenalOpcional(t *testing.T) {
	dir := newFakeDirectory()
	app := buildTenantApp(dir, false)

	resp := get(t, app, "miapp.com", "", "/who")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"las rutas de plataforma siguen sin organización resuelta")
}

func TestTenantMiddleware_SenalInvalidaRequerida(t *testing.T) {
	dir := newFakeDirectory()
	app := buildTenantApp(dir, true)

	resp := get(t, app, "miapp.com", "99", "/who")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTenantMiddleware_SenalInvalidaOpcional(t *testing.T) {
	// En las rutas que toleran tenancy nula, una señal que no corresponde a
	// ninguna organización activa equivale a resolución nula: la petición se
	// atiende sin organización, nunca contra el tenant equivocado.
	dir := newFakeDirectory()
	app := buildTenantApp(dir, false)

	resp := get(t, app, "miapp.com", "999", "/who")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Resolved bool `json:"resolved"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Resolved, "la señal inválida no debe dejar organización resuelta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento entre peticiones concurrentes
// ──────────────────────────────────────────────────────────────────────────────

func TestTenantMiddleware_SinFugasEntrePeticionesConcurrentes(t *testing.T) {
	orgs := make([]*entity.Organization, 0, 20)
	for i := int64(1); i <= 20; i++ {
		orgs = append(orgs, &entity.Organization{
			ID: i, Subdomain: fmt.Sprintf("org%d", i), Status: entity.OrgStatusActive,
		})
	}
	dir := newFakeDirectory(orgs...)

	app := fiber.New()
	app.Get("/who",
		apphttp.ContextMiddleware(),
		apphttp.TenantMiddleware(dir, testLog, true),
		func(c *fiber.Ctx) error {
			org, _ := apphttp.RequestTenancy(c).Organization()
			return c.SendString(fmt.Sprintf("%d", org))
		},
	)

	var wg sync.WaitGroup
	for i := int64(1); i <= 20; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "http://miapp.com/who", nil)
			req.Header.Set(tenancy.HeaderOrganizationID, fmt.Sprintf("%d", id))
			resp, err := app.Test(req, -1)
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()
			buf := make([]byte, 8)
			n, _ := resp.Body.Read(buf)
			assert.Equal(t, fmt.Sprintf("%d", id), string(buf[:n]),
				"cada petición debe ver su propia organización")
		}(i)
	}
	wg.Wait()
}
