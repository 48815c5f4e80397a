package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/application/usecase"
)

// TransactionHandler caixa: lançamentos e livro-caixa.
type TransactionHandler struct {
	uc           *usecase.TransactionUseCase
	defaultStore string
}

// NewTransactionHandler constrói o handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase, defaultStore string) *TransactionHandler {
	return &TransactionHandler{uc: uc, defaultStore: defaultStore}
}

// List godoc
// @Summary      Listar lançamentos (mais recentes primeiro)
// @Tags         transactions
// @Produce      json
// @Param        store_id  query  string  false  "Loja"
// @Success      200  {object}  dto.ListResponse[dto.TransactionResponse]
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	storeID := GetStoreID(c)
	out, err := h.uc.List(c.Context(), storeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewList(out, storeID))
}

// Create godoc
// @Summary      Registrar lançamento
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Lançamento"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
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

// Ledger godoc
// @Summary      Livro-caixa com totais
// @Tags         transactions
// @Produce      json
// @Param        store_id  query  string  false  "Loja"
// @Success      200  {object}  dto.LedgerDTO
// @Router       /api/transactions/ledger [get]
func (h *TransactionHandler) Ledger(c *fiber.Ctx) error {
	out, err := h.uc.Ledger(c.Context(), GetStoreID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
