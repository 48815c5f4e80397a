package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/application/usecase"
)

// CourierHandler transferências entre lojas.
type CourierHandler struct {
	uc *usecase.CourierUseCase
}

// NewCourierHandler constrói o handler.
func NewCourierHandler(uc *usecase.CourierUseCase) *CourierHandler {
	return &CourierHandler{uc: uc}
}

// List godoc
// @Summary      Listar pedidos de courier
// @Tags         courier
// @Produce      json
// @Param        store_id  query  string  false  "Loja"
// @Success      200  {object}  dto.ListResponse[dto.CourierOrderResponse]
// @Router       /api/courier-orders [get]
func (h *CourierHandler) List(c *fiber.Ctx) error {
	storeID := GetStoreID(c)
	out, err := h.uc.List(c.Context(), storeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out, storeID))
}

// GetByID godoc
// @Summary      Obter pedido de courier
// @Tags         courier
// @Produce      json
// @Param        id   path  string  true  "ID do pedido"
// @Success      200  {object}  dto.CourierOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/courier-orders/{id} [get]
func (h *CourierHandler) GetByID(c *fiber.Ctx) error {
	return h.reply(c)(h.uc.GetByID(c.Context(), c.Params("id")))
}

// SetStatus godoc
// @Summary      Alterar status do pedido
// @Tags         courier
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do pedido"
// @Param        body  body  dto.SetCourierStatusRequest  true  "Novo status"
// @Success      200   {object}  dto.CourierOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/courier-orders/{id}/status [patch]
func (h *CourierHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.SetCourierStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.reply(c)(h.uc.SetStatus(c.Context(), c.Params("id"), in.Status))
}

// Advance godoc
// @Summary      Avançar pedido (aceitar, coletar, entregar)
// @Tags         courier
// @Produce      json
// @Param        id   path  string  true  "ID do pedido"
// @Success      200  {object}  dto.CourierOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/courier-orders/{id}/advance [post]
func (h *CourierHandler) Advance(c *fiber.Ctx) error {
	return h.reply(c)(h.uc.Advance(c.Context(), c.Params("id")))
}

// Cancel godoc
// @Summary      Cancelar pedido
// @Tags         courier
// @Produce      json
// @Param        id   path  string  true  "ID do pedido"
// @Success      200  {object}  dto.CourierOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/courier-orders/{id}/cancel [post]
func (h *CourierHandler) Cancel(c *fiber.Ctx) error {
	return h.reply(c)(h.uc.Cancel(c.Context(), c.Params("id")))
}

func (h *CourierHandler) reply(c *fiber.Ctx) func(*dto.CourierOrderResponse, error) error {
	return func(out *dto.CourierOrderResponse, err error) error {
		if err != nil {
			return writeError(c, err)
		}
		if out == nil {
			return notFound(c, "pedido de courier não encontrado")
		}
		return c.JSON(out)
	}
}
