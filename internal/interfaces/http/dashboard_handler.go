package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/edinho-pneus-api/internal/application/analytics"
)

// DashboardHandler indicadores do painel.
type DashboardHandler struct {
	uc           *appanalytics.DashboardUseCase
	defaultStore string
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, defaultStore string) *DashboardHandler {
	return &DashboardHandler{uc: uc, defaultStore: defaultStore}
}

// GetSummary godoc
// @Summary      Resumo do painel
// @Description  Receita (hoje e total), serviços ativos, estoque baixo, mix de serviços e courier pendente.
// @Tags         dashboard
// @Produce      json
// @Param        store_id  query  string  false  "Loja (padrão STORE_DEFAULT_ID)"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context(), storeOrDefault(c, h.defaultStore))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
