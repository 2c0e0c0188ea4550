package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/multiempresa-api/internal/domain"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
)

// Locals keys para el estado de tenancy en Fiber.
const (
	LocalRequestContext = "tenancy_request_context"
)

// ContextMiddleware crea el RequestContext de tenancy de la petición y
// garantiza su limpieza en todas las salidas: éxito, error de negocio o panic
// (el recover de Fiber corre por encima, el defer se ejecuta igual).
func ContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc := tenancy.NewRequestContext()
		c.Locals(LocalRequestContext, rc)
		defer rc.Clear()
		return c.Next()
	}
}

// RequestTenancy devuelve el RequestContext de la petición, o nil si el
// middleware de contexto no está montado en esta ruta.
func RequestTenancy(c *fiber.Ctx) *tenancy.RequestContext {
	rc, _ := c.Locals(LocalRequestContext).(*tenancy.RequestContext)
	return rc
}

// RequestScope deriva el scope de acceso a datos de la petición actual.
func RequestScope(c *fiber.Ctx) (tenancy.Scope, error) {
	rc := RequestTenancy(c)
	if rc == nil {
		return tenancy.Scope{}, domain.ErrMissingTenantContext
	}
	return rc.Scope()
}
