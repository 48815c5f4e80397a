package export_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/edinho-pneus-api/internal/application/export"
	"github.com/jhoicas/edinho-pneus-api/internal/application/ports"
	"github.com/jhoicas/edinho-pneus-api/internal/infrastructure/memory"
	"github.com/jhoicas/edinho-pneus-api/internal/infrastructure/pdf"
	"github.com/jhoicas/edinho-pneus-api/internal/infrastructure/xmlexport"
)

type capturePDF struct{ got ports.InventoryReport }

func (c *capturePDF) GenerateInventoryPDF(_ context.Context, r ports.InventoryReport) ([]byte, error) {
	c.got = r
	return []byte("%PDF-fake"), nil
}

func newUseCase(t *testing.T, gen ports.InventoryPDFGenerator) *export.ExportUseCase {
	t.Helper()
	now := func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }
	s := memory.NewStore(memory.WithClock(now))
	memory.Seed(s, memory.DefaultStoreID)
	return export.NewExportUseCase(
		memory.NewProductRepository(s),
		memory.NewTransactionRepository(s),
		gen,
		xmlexport.NewLedgerWriter(),
		now,
	)
}

func TestInventoryPDF_TotaisDoRelatorio(t *testing.T) {
	gen := &capturePDF{}
	uc := newUseCase(t, gen)

	_, err := uc.InventoryPDF(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, gen.got.Products, 3)
	assert.Equal(t, 129, gen.got.TotalStock)
	// 6×220 + 3×390 + 120×8
	assert.Equal(t, "3450", gen.got.TotalValue.String())
}

func TestInventoryPDF_Maroto(t *testing.T) {
	uc := newUseCase(t, pdf.NewMarotoInventoryReport(3))

	out, err := uc.InventoryPDF(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestLedgerXML(t *testing.T) {
	uc := newUseCase(t, &capturePDF{})

	out, digest, err := uc.LedgerXML(context.Background(), "1")
	require.NoError(t, err)
	assert.NotEmpty(t, digest)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Len(t, doc.FindElements("//Lancamento"), 2)
	assert.Equal(t, "320.00", doc.FindElement("//Totais/Receitas").Text())
	assert.Equal(t, "150.00", doc.FindElement("//Totais/Despesas").Text())
	assert.Equal(t, "170.00", doc.FindElement("//Totais/Saldo").Text())

	_, again, err := uc.LedgerXML(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, digest, again)
}
