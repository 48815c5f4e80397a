package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/application/usecase"
)

// ServiceOrderHandler quadro Kanban da oficina.
type ServiceOrderHandler struct {
	uc *usecase.ServiceOrderUseCase
}

// NewServiceOrderHandler constrói o handler.
func NewServiceOrderHandler(uc *usecase.ServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar ordens de serviço
// @Tags         service-orders
// @Produce      json
// @Param        store_id  query  string  false  "Loja"
// @Success      200  {object}  dto.ListResponse[dto.ServiceOrderResponse]
// @Router       /api/service-orders [get]
func (h *ServiceOrderHandler) List(c *fiber.Ctx) error {
	storeID := GetStoreID(c)
	out, err := h.uc.List(c.Context(), storeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out, storeID))
}

// Board godoc
// @Summary      Quadro Kanban (colunas por etapa)
// @Tags         service-orders
// @Produce      json
// @Param        store_id  query  string  false  "Loja"
// @Success      200  {object}  dto.KanbanBoardDTO
// @Router       /api/service-orders/board [get]
func (h *ServiceOrderHandler) Board(c *fiber.Ctx) error {
	out, err := h.uc.Board(c.Context(), GetStoreID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter ordem de serviço
// @Tags         service-orders
// @Produce      json
// @Param        id   path  string  true  "ID da O.S."
// @Success      200  {object}  dto.ServiceOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/service-orders/{id} [get]
func (h *ServiceOrderHandler) GetByID(c *fiber.Ctx) error {
	return h.reply(c)(h.uc.GetByID(c.Context(), c.Params("id")))
}

// Move godoc
// @Summary      Mover O.S. para uma etapa vizinha
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da O.S."
// @Param        body  body  dto.MoveServiceOrderRequest  true  "Novo status"
// @Success      200   {object}  dto.ServiceOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/service-orders/{id}/status [patch]
func (h *ServiceOrderHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveServiceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.reply(c)(h.uc.Move(c.Context(), c.Params("id"), in.Status))
}

// Advance godoc
// @Summary      Avançar O.S. para a próxima etapa
// @Tags         service-orders
// @Produce      json
// @Param        id   path  string  true  "ID da O.S."
// @Success      200  {object}  dto.ServiceOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/service-orders/{id}/advance [post]
func (h *ServiceOrderHandler) Advance(c *fiber.Ctx) error {
	return h.reply(c)(h.uc.Advance(c.Context(), c.Params("id")))
}

// Back godoc
// @Summary      Voltar O.S. para a etapa anterior
// @Tags         service-orders
// @Produce      json
// @Param        id   path  string  true  "ID da O.S."
// @Success      200  {object}  dto.ServiceOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/service-orders/{id}/back [post]
func (h *ServiceOrderHandler) Back(c *fiber.Ctx) error {
	return h.reply(c)(h.uc.Back(c.Context(), c.Params("id")))
}

func (h *ServiceOrderHandler) reply(c *fiber.Ctx) func(*dto.ServiceOrderResponse, error) error {
	return func(out *dto.ServiceOrderResponse, err error) error {
		if err != nil {
			return writeError(c, err)
		}
		if out == nil {
			return notFound(c, "ordem de serviço não encontrada")
		}
		return c.JSON(out)
	}
}
