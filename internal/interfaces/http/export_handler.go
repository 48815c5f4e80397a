package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/edinho-pneus-api/internal/application/export"
)

// ExportHandler downloads: PDF de estoque e XML do livro-caixa.
type ExportHandler struct {
	uc           *export.ExportUseCase
	defaultStore string
}

// NewExportHandler constrói o handler.
func NewExportHandler(uc *export.ExportUseCase, defaultStore string) *ExportHandler {
	return &ExportHandler{uc: uc, defaultStore: defaultStore}
}

// InventoryPDF godoc
// @Summary      Relatório de estoque em PDF
// @Tags         products
// @Produce      application/pdf
// @Param        store_id  query  string  false  "Loja"
// @Success      200  {file}  binary
// @Router       /api/products/export.pdf [get]
func (h *ExportHandler) InventoryPDF(c *fiber.Ctx) error {
	storeID := storeOrDefault(c, h.defaultStore)
	out, err := h.uc.InventoryPDF(c.Context(), storeID)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="estoque-loja-%s.pdf"`, storeID))
	return c.Send(out)
}

// LedgerXML godoc
// @Summary      Livro-caixa em XML
// @Description  O header X-Content-Digest traz o SHA-256 (base64) da forma canônica do documento.
// @Tags         transactions
// @Produce      application/xml
// @Param        store_id  query  string  false  "Loja"
// @Success      200  {file}  binary
// @Router       /api/transactions/export.xml [get]
func (h *ExportHandler) LedgerXML(c *fiber.Ctx) error {
	storeID := storeOrDefault(c, h.defaultStore)
	out, digest, err := h.uc.LedgerXML(c.Context(), storeID)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="caixa-loja-%s.xml"`, storeID))
	c.Set("X-Content-Digest", "SHA-256="+digest)
	return c.Send(out)
}
