package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
)

// InventoryReport dados do relatório de estoque de uma loja.
type InventoryReport struct {
	StoreID     string
	GeneratedAt time.Time
	Products    []entity.Product
	TotalStock  int
	// TotalValue soma de SuggestedPrice × Stock.
	TotalValue decimal.Decimal
}

// LedgerDocument dados do livro-caixa exportado.
type LedgerDocument struct {
	StoreID     string
	GeneratedAt time.Time
	Entries     []entity.Transaction
	Income      decimal.Decimal
	Expense     decimal.Decimal
	Balance     decimal.Decimal
}

// InventoryPDFGenerator porta de saída para o PDF de estoque.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, report InventoryReport) ([]byte, error)
}

// LedgerXMLWriter porta de saída para o XML do livro-caixa.
// digest é o SHA-256 (base64) da forma canônica do documento.
type LedgerXMLWriter interface {
	WriteLedgerXML(ctx context.Context, doc LedgerDocument) (xml []byte, digest string, err error)
}
