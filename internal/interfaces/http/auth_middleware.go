package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/multiempresa-api/internal/application/dto"
	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
	"github.com/jhoicas/multiempresa-api/pkg/jwt"
)

// LocalPrincipal key del principal autenticado en c.Locals.
const LocalPrincipal = "principal"

// AuthMiddleware valida el Bearer Token JWT, construye el Principal y lo fija
// tanto en c.Locals como en el RequestContext de tenancy.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		p := tenancy.Principal{
			ID:             claims.UserID,
			OrganizationID: claims.OrganizationID,
			PlatformAdmin:  claims.PlatformAdmin,
			Role:           claims.Role,
		}
		c.Locals(LocalPrincipal, p)
		if rc := RequestTenancy(c); rc != nil {
			rc.SetPrincipal(p)
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el principal autenticado (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) (tenancy.Principal, bool) {
	p, ok := c.Locals(LocalPrincipal).(tenancy.Principal)
	return p, ok
}

// RequirePlatformAdmin exige un principal de plataforma.
func RequirePlatformAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := GetPrincipal(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
		}
		if !p.PlatformAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "requiere administrador de plataforma"})
		}
		return c.Next()
	}
}

// RequireAdmin exige rol admin de la organización (o un principal de plataforma).
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := GetPrincipal(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
		}
		if !p.PlatformAdmin && p.Role != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "requiere rol admin"})
		}
		return c.Next()
	}
}
