package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/multiempresa-api/internal/application/dto"
	"github.com/jhoicas/multiempresa-api/internal/application/lifecycle"
)

// ResetHandler maneja las peticiones de reinicio de datos.
type ResetHandler struct {
	uc *lifecycle.ResetUseCase
}

// NewResetHandler construye el handler de reset.
func NewResetHandler(uc *lifecycle.ResetUseCase) *ResetHandler {
	return &ResetHandler{uc: uc}
}

// ResetOrganization godoc
// @Summary      Reiniciar datos de negocio de la organización
// @Description  Borra en orden de dependencias todos los datos operativos de la
// @Description  organización del principal (o la indicada, si es plataforma).
// @Description  Usuarios y organización se conservan; el onboarding vuelve a cero.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetRequest  false  "organization_id opcional"
// @Success      200   {object}  dto.ResetResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/admin/reset [post]
func (h *ResetHandler) ResetOrganization(c *fiber.Ctx) error {
	p, ok := GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}
	var in dto.ResetRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	in.Scope = lifecycle.ScopeOrganization
	out, err := h.uc.Reset(c.UserContext(), p, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ResetPlatform godoc
// @Summary      Reiniciar la plataforma completa
// @Description  Vacía todas las colecciones de todas las organizaciones, usuarios
// @Description  y organizaciones incluidos. Sólo administradores de plataforma.
// @Tags         platform
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ResetResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/platform/reset [post]
func (h *ResetHandler) ResetPlatform(c *fiber.Ctx) error {
	p, ok := GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	}
	out, err := h.uc.Reset(c.UserContext(), p, dto.ResetRequest{Scope: lifecycle.ScopeAll})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
