package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	apphttp "github.com/jhoicas/multiempresa-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/multiempresa-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "multiempresa-test"
	testExpMin    = 60
)

// tokenFor genera un JWT de tenant con el rol indicado.
func tokenFor(t *testing.T, orgID *int64, platformAdmin bool, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, orgID, platformAdmin, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doAuthRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware — extracción del principal
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraePrincipal(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.ContextMiddleware(), apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		p, ok := apphttp.GetPrincipal(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{
			"user_id":         p.ID,
			"organization_id": p.OrganizationID,
			"role":            p.Role,
		})
	})

	org := int64(7)
	resp := doAuthRequest(t, app, "/me", tokenFor(t, &org, false, entity.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, float64(7), body["organization_id"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp := doAuthRequest(t, app, "/me", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp := doAuthRequest(t, app, "/me", "Bearer token.invalido.aqui")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireAdmin / RequirePlatformAdmin
// ──────────────────────────────────────────────────────────────────────────────

func buildRoleApp(mw fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), mw, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestRequireAdmin_AdminDeTenantPasa(t *testing.T) {
	app := buildRoleApp(apphttp.RequireAdmin())
	org := int64(7)

	resp := doAuthRequest(t, app, "/protected", tokenFor(t, &org, false, entity.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_OperadorBloqueado(t *testing.T) {
	app := buildRoleApp(apphttp.RequireAdmin())
	org := int64(7)

	resp := doAuthRequest(t, app, "/protected", tokenFor(t, &org, false, entity.RoleOperador))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireAdmin_PlataformaPasa(t *testing.T) {
	app := buildRoleApp(apphttp.RequireAdmin())

	resp := doAuthRequest(t, app, "/protected", tokenFor(t, nil, true, ""))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequirePlatformAdmin_TenantBloqueado(t *testing.T) {
	app := buildRoleApp(apphttp.RequirePlatformAdmin())
	org := int64(7)

	resp := doAuthRequest(t, app, "/protected", tokenFor(t, &org, false, entity.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un admin de tenant no es administrador de plataforma")
}

func TestRequirePlatformAdmin_PlataformaPasa(t *testing.T) {
	app := buildRoleApp(apphttp.RequirePlatformAdmin())

	resp := doAuthRequest(t, app, "/protected", tokenFor(t, nil, true, ""))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// JWT pkg — generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	org := int64(7)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, &org, false, entity.RoleOperador, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	require.NotNil(t, claims.OrganizationID)
	assert.Equal(t, int64(7), *claims.OrganizationID)
	assert.False(t, claims.PlatformAdmin)
	assert.Equal(t, entity.RoleOperador, claims.Role)
}

func TestJWT_PrincipalDePlataforma(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, nil, true, "", testIssuer, testExpMin)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Nil(t, claims.OrganizationID)
	assert.True(t, claims.PlatformAdmin)
}

func TestJWT_TokenExpirado(t *testing.T) {
	org := int64(7)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, &org, false, entity.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto(t *testing.T) {
	org := int64(7)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, &org, false, entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
