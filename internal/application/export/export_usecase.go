// Package export gera os documentos para download: PDF de estoque e XML do caixa.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/edinho-pneus-api/internal/application/ports"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
)

// ExportUseCase reúne os dados da loja e delega a renderização às portas.
type ExportUseCase struct {
	products     repository.ProductRepository
	transactions repository.TransactionRepository
	pdf          ports.InventoryPDFGenerator
	xml          ports.LedgerXMLWriter
	now          func() time.Time
}

// NewExportUseCase constrói o caso de uso. now pode ser nil (time.Now).
func NewExportUseCase(
	products repository.ProductRepository,
	transactions repository.TransactionRepository,
	pdf ports.InventoryPDFGenerator,
	xml ports.LedgerXMLWriter,
	now func() time.Time,
) *ExportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ExportUseCase{products: products, transactions: transactions, pdf: pdf, xml: xml, now: now}
}

// InventoryPDF relatório de estoque da loja em PDF.
func (uc *ExportUseCase) InventoryPDF(ctx context.Context, storeID string) ([]byte, error) {
	list, err := uc.products.List(ctx, repository.StoreFilter{StoreID: storeID})
	if err != nil {
		return nil, fmt.Errorf("export: produtos: %w", err)
	}
	report := ports.InventoryReport{
		StoreID:     storeID,
		GeneratedAt: uc.now(),
		Products:    list,
		TotalValue:  decimal.Zero,
	}
	for _, p := range list {
		report.TotalStock += p.Stock
		report.TotalValue = report.TotalValue.Add(p.SuggestedPrice.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	report.TotalValue = report.TotalValue.Round(2)
	return uc.pdf.GenerateInventoryPDF(ctx, report)
}

// LedgerXML livro-caixa da loja em XML e o digest do documento canônico.
func (uc *ExportUseCase) LedgerXML(ctx context.Context, storeID string) ([]byte, string, error) {
	list, err := uc.transactions.List(ctx, repository.StoreFilter{StoreID: storeID})
	if err != nil {
		return nil, "", fmt.Errorf("export: lançamentos: %w", err)
	}
	totals := entity.SumLedger(list)
	doc := ports.LedgerDocument{
		StoreID:     storeID,
		GeneratedAt: uc.now(),
		Entries:     list,
		Income:      totals.Income,
		Expense:     totals.Expense,
		Balance:     totals.Balance,
	}
	return uc.xml.WriteLedgerXML(ctx, doc)
}
