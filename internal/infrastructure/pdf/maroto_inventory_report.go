// Package pdf gera o relatório de estoque da loja em PDF.
//
// Layout da página A4:
//
//	HEADER: Edinho Pneus + loja      | data de emissão
//	TABELA: Etiqueta | Produto | Categoria | Condição | Estoque | Preço | Status
//	TOTAIS: itens em estoque / valor em estoque (preço sugerido)
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/edinho-pneus-api/internal/application/ports"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 234, Green: 88, Blue: 12}
	colorGray    = &props.Color{Red: 100, Green: 116, Blue: 139}
	colorAlert   = &props.Color{Red: 220, Green: 38, Blue: 38}
)

var _ ports.InventoryPDFGenerator = (*MarotoInventoryReport)(nil)

// MarotoInventoryReport implementa ports.InventoryPDFGenerator com Maroto v2.
type MarotoInventoryReport struct {
	// LowStockThreshold destaca em vermelho o estoque <= limiar. Zero desliga.
	LowStockThreshold int
}

// NewMarotoInventoryReport constrói o gerador.
func NewMarotoInventoryReport(lowStockThreshold int) *MarotoInventoryReport {
	return &MarotoInventoryReport{LowStockThreshold: lowStockThreshold}
}

// GenerateInventoryPDF gera o PDF e devolve seus bytes.
func (g *MarotoInventoryReport) GenerateInventoryPDF(_ context.Context, report ports.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		WithAuthor("Edinho Pneus", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableRows(report.Products)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(report ports.InventoryReport) core.Row {
	store := report.StoreID
	if store == "" {
		store = "todas"
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("EDINHO PNEUS", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório de estoque | Loja "+store, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Emitido em", props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 2,
			}),
			text.New(report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Etiqueta", 2, align.Left),
		h("Produto", 3, align.Left),
		h("Categoria", 2, align.Left),
		h("Condição", 1, align.Center),
		h("Estoque", 1, align.Center),
		h("Preço", 2, align.Right),
		h("Status", 1, align.Center),
	)
}

func (g *MarotoInventoryReport) tableRows(products []entity.Product) []core.Row {
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		stockStyle := props.Text{Size: 8, Align: align.Center, Top: 1}
		if g.LowStockThreshold > 0 && p.Stock <= g.LowStockThreshold {
			stockStyle.Style = fontstyle.Bold
			stockStyle.Color = colorAlert
		}
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(p.LabelID, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(p.Category, "-"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(string(p.Condition), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", p.Stock), stockStyle)),
			col.New(2).Add(text.New(formatBRL(p.SuggestedPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(statusLabel(p.Status), props.Text{Size: 7, Align: align.Center, Top: 1})),
		))
	}
	if len(rows) == 0 {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Nenhum produto cadastrado.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	return rows
}

func totalsRow(report ports.InventoryReport) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: top})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			label("Itens em estoque:"),
			text.New("Valor em estoque:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6}),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d", report.TotalStock), 0),
			value(formatBRL(report.TotalValue), 6),
		),
	)
}

func statusLabel(s entity.ProductStatus) string {
	if s == entity.ProductAprovado {
		return "Aprovado"
	}
	return "Conferência"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatBRL formata em reais: 1234.5 → "R$ 1.234,50".
func formatBRL(v decimal.Decimal) string {
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Neg()
	}
	s := v.StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	return "R$ " + sign + groupThousands(intPart) + "," + frac
}

// groupThousands insere pontos de milhar: "1000000" → "1.000.000".
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
