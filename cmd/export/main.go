// export gera offline o PDF de estoque e o XML do livro-caixa a partir dos dados de exemplo.
//
// Uso: go run ./cmd/export [diretório-de-saída]
// Por padrão escreve em ./out: estoque-loja-<id>.pdf, caixa-loja-<id>.xml e caixa-loja-<id>.xml.sha256.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/edinho-pneus-api/internal/application/export"
	"github.com/jhoicas/edinho-pneus-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/edinho-pneus-api/internal/infrastructure/pdf"
	"github.com/jhoicas/edinho-pneus-api/internal/infrastructure/xmlexport"
	"github.com/jhoicas/edinho-pneus-api/pkg/config"
	"github.com/jhoicas/edinho-pneus-api/pkg/logger"
)

func main() {
	outDir := "out"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Carregar configuração: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("export")

	store := memory.NewStore()
	memory.Seed(store, cfg.Store.DefaultID)

	uc := export.NewExportUseCase(
		memory.NewProductRepository(store),
		memory.NewTransactionRepository(store),
		infrapdf.NewMarotoInventoryReport(cfg.Dashboard.LowStockThreshold),
		xmlexport.NewLedgerWriter(),
		store.Now,
	)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", outDir).Msg("criar diretório de saída")
	}

	ctx := context.Background()
	storeID := cfg.Store.DefaultID

	pdfBytes, err := uc.InventoryPDF(ctx, storeID)
	if err != nil {
		log.Fatal().Err(err).Msg("gerar PDF de estoque")
	}
	pdfPath := filepath.Join(outDir, fmt.Sprintf("estoque-loja-%s.pdf", storeID))
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		log.Fatal().Err(err).Str("file", pdfPath).Msg("escrever PDF")
	}

	xmlBytes, digest, err := uc.LedgerXML(ctx, storeID)
	if err != nil {
		log.Fatal().Err(err).Msg("gerar XML do caixa")
	}
	xmlPath := filepath.Join(outDir, fmt.Sprintf("caixa-loja-%s.xml", storeID))
	if err := os.WriteFile(xmlPath, xmlBytes, 0o644); err != nil {
		log.Fatal().Err(err).Str("file", xmlPath).Msg("escrever XML")
	}
	if err := os.WriteFile(xmlPath+".sha256", []byte(digest+"\n"), 0o644); err != nil {
		log.Fatal().Err(err).Str("file", xmlPath+".sha256").Msg("escrever digest")
	}

	log.Info().
		Str("pdf", pdfPath).
		Int("pdf_bytes", len(pdfBytes)).
		Str("xml", xmlPath).
		Str("digest", digest).
		Msg("exportação concluída")
}
