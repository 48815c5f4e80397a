package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/application/pos"
	"github.com/jhoicas/edinho-pneus-api/pkg/logger"
)

// POSHandler PDV: vitrine e fechamento de venda.
type POSHandler struct {
	catalog      *pos.CatalogUseCase
	checkout     *pos.CheckoutUseCase
	defaultStore string
	log          *logger.Logger
}

// NewPOSHandler constrói o handler.
func NewPOSHandler(catalog *pos.CatalogUseCase, checkout *pos.CheckoutUseCase, defaultStore string, log *logger.Logger) *POSHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &POSHandler{catalog: catalog, checkout: checkout, defaultStore: defaultStore, log: log}
}

// Catalog godoc
// @Summary      Vitrine do PDV (só aprovados)
// @Tags         pos
// @Produce      json
// @Param        category  query  string  false  "Categoria (Todos = sem filtro)"
// @Param        q         query  string  false  "Busca por nome ou etiqueta"
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/pos/catalog [get]
func (h *POSHandler) Catalog(c *fiber.Ctx) error {
	out, err := h.catalog.List(c.Context(), storeOrDefault(c, h.defaultStore), c.Query("category"), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Categorias do PDV
// @Tags         pos
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/pos/categories [get]
func (h *POSHandler) Categories(c *fiber.Ctx) error {
	out, err := h.catalog.Categories(c.Context(), storeOrDefault(c, h.defaultStore))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Finalizar venda
// @Description  Registra uma RECEITA com o total do carrinho.
// @Tags         pos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Itens e forma de pagamento"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/checkout [post]
func (h *POSHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	storeID := storeOrDefault(c, h.defaultStore)
	cart, err := h.checkout.BuildCart(c.Context(), storeID, in.Items)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.checkout.Checkout(c.Context(), storeID, cart, in.Method)
	if err != nil {
		return writeError(c, err)
	}
	h.log.Info().
		Str("store_id", storeID).
		Str("transaction_id", out.Transaction.ID).
		Int("items", out.ItemCount).
		Str("total", out.Total.StringFixed(2)).
		Msg("venda registrada")
	return c.Status(fiber.StatusCreated).JSON(out)
}
