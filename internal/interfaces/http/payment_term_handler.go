package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/multiempresa-api/internal/application/dto"
	"github.com/jhoicas/multiempresa-api/internal/application/usecase"
)

// PaymentTermHandler maneja las peticiones HTTP para condiciones de pago.
type PaymentTermHandler struct {
	uc *usecase.PaymentTermUseCase
}

// NewPaymentTermHandler construye el handler inyectando el caso de uso.
func NewPaymentTermHandler(uc *usecase.PaymentTermUseCase) *PaymentTermHandler {
	return &PaymentTermHandler{uc: uc}
}

// Create godoc
// @Summary      Crear condición de pago
// @Tags         payment-terms
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentTermRequest  true  "Datos de la condición"
// @Success      201   {object}  dto.PaymentTermResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payment-terms [post]
func (h *PaymentTermHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentTermRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	scope, err := RequestScope(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), scope, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener condición de pago por ID
// @Tags         payment-terms
// @Produce      json
// @Param        id   path  string  true  "ID de la condición"
// @Success      200  {object}  dto.PaymentTermResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payment-terms/{id} [get]
func (h *PaymentTermHandler) GetByID(c *fiber.Ctx) error {
	scope, err := RequestScope(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), scope, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar condiciones de pago
// @Tags         payment-terms
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PaymentTermListResponse
// @Router       /api/payment-terms [get]
func (h *PaymentTermHandler) List(c *fiber.Ctx) error {
	scope, err := RequestScope(c)
	if err != nil {
		return respondError(c, err)
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.UserContext(), scope, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar condición de pago
// @Tags         payment-terms
// @Param        id   path  string  true  "ID de la condición"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payment-terms/{id} [delete]
func (h *PaymentTermHandler) Delete(c *fiber.Ctx) error {
	scope, err := RequestScope(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), scope, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
