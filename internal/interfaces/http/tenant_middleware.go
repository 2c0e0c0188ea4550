package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/multiempresa-api/internal/application/dto"
	"github.com/jhoicas/multiempresa-api/internal/domain/entity"
	"github.com/jhoicas/multiempresa-api/internal/domain/repository"
	"github.com/jhoicas/multiempresa-api/internal/domain/tenancy"
	"github.com/jhoicas/multiempresa-api/pkg/logger"
)

// TenantMiddleware resuelve la organización de la petición con precedencia
// fija (header explícito, subdominio, path) y la valida contra el directorio.
// Con required=true una petición sin organización resoluble, o con una señal
// que no corresponde a ninguna organización activa, se rechaza. Con
// required=false la petición sigue sin organización en ambos casos: las rutas
// que toleran tenancy nula tratan la señal inválida como resolución nula.
func TenantMiddleware(orgs repository.OrganizationRepository, log *logger.Logger, required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cand := tenancy.ResolveCandidate(c.Get(tenancy.HeaderOrganizationID), c.Hostname(), c.Path())
		if cand.IsZero() {
			if required {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TENANT_NOT_RESOLVED", Message: "la petición no identifica ninguna organización"})
			}
			return c.Next()
		}

		var (
			org *entity.Organization
			err error
		)
		switch cand.Source {
		case tenancy.SourceSubdomain:
			org, err = orgs.GetBySubdomain(c.UserContext(), cand.Subdomain)
		default:
			org, err = orgs.GetByID(c.UserContext(), cand.ID)
		}
		if err != nil {
			log.Error().Err(err).Str("source", cand.Source).Msg("fallo consultando el directorio de organizaciones")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo resolver la organización"})
		}
		if org == nil || !org.IsActive() {
			if required {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORGANIZATION_NOT_FOUND", Message: "organización inexistente o inactiva"})
			}
			return c.Next()
		}

		if rc := RequestTenancy(c); rc != nil {
			rc.SetOrganization(org.ID)
		}
		log.WithOrganization(org.ID).Debug().Str("source", cand.Source).Msg("organización resuelta")
		return c.Next()
	}
}
