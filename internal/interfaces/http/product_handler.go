package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/application/usecase"
)

// ProductHandler estoque: cadastro, conferência e ajuste de quantidade.
type ProductHandler struct {
	uc           *usecase.ProductUseCase
	defaultStore string
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *usecase.ProductUseCase, defaultStore string) *ProductHandler {
	return &ProductHandler{uc: uc, defaultStore: defaultStore}
}

// List godoc
// @Summary      Listar produtos
// @Tags         products
// @Produce      json
// @Param        store_id  query  string  false  "Loja"
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	storeID := GetStoreID(c)
	out, err := h.uc.List(c.Context(), storeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out, storeID))
}

// GetByID godoc
// @Summary      Obter produto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "produto não encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastrar produto (entra em conferência)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if strings.TrimSpace(in.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	if in.StoreID == "" {
		in.StoreID = storeOrDefault(c, h.defaultStore)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Atualizar produto (parcial)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "produto não encontrado")
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprovar produto em conferência
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/approve [patch]
func (h *ProductHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "produto não encontrado")
	}
	return c.JSON(out)
}

// UpdateStock godoc
// @Summary      Definir estoque do produto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.UpdateStockRequest  true  "Novo estoque"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [patch]
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Stock == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock é obrigatório"})
	}
	out, err := h.uc.UpdateStock(c.Context(), c.Params("id"), *in.Stock)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "produto não encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover produto
// @Tags         products
// @Param        id   path  string  true  "ID do produto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	found, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if !found {
		return notFound(c, "produto não encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
