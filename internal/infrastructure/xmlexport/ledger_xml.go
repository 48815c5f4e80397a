// Package xmlexport serializa o livro-caixa em XML.
package xmlexport

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/edinho-pneus-api/internal/application/ports"
)

// Namespace do documento do livro-caixa.
const Namespace = "urn:edinho-pneus:livro-caixa:1"

var _ ports.LedgerXMLWriter = (*LedgerWriter)(nil)

// LedgerWriter implementa ports.LedgerXMLWriter com etree.
type LedgerWriter struct{}

// NewLedgerWriter constrói o writer.
func NewLedgerWriter() *LedgerWriter { return &LedgerWriter{} }

// WriteLedgerXML monta o documento e calcula o digest da forma canônica (C14N).
func (w *LedgerWriter) WriteLedgerXML(_ context.Context, in ports.LedgerDocument) ([]byte, string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("LivroCaixa")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("loja", in.StoreID)
	root.CreateAttr("geradoEm", in.GeneratedAt.UTC().Format(time.RFC3339))

	entries := root.CreateElement("Lancamentos")
	entries.CreateAttr("quantidade", fmt.Sprintf("%d", len(in.Entries)))
	for _, t := range in.Entries {
		e := entries.CreateElement("Lancamento")
		e.CreateAttr("id", t.ID)
		e.CreateElement("Tipo").SetText(string(t.Type))
		e.CreateElement("Forma").SetText(string(t.Method))
		e.CreateElement("Valor").SetText(t.Amount.StringFixed(2))
		e.CreateElement("Data").SetText(t.CreatedAt.UTC().Format(time.RFC3339))
		e.CreateElement("Descricao").SetText(t.Description)
		if t.ReferenceID != nil {
			e.CreateElement("Referencia").SetText(*t.ReferenceID)
		}
	}

	totals := root.CreateElement("Totais")
	totals.CreateElement("Receitas").SetText(in.Income.StringFixed(2))
	totals.CreateElement("Despesas").SetText(in.Expense.StringFixed(2))
	totals.CreateElement("Saldo").SetText(in.Balance.StringFixed(2))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("xml: serializar livro-caixa: %w", err)
	}

	// O digest cobre só o elemento raiz, sem a declaração XML.
	body := etree.NewDocument()
	body.SetRoot(root.Copy())
	rootBytes, err := body.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("xml: serializar raiz: %w", err)
	}
	digest, err := Digest(rootBytes)
	if err != nil {
		return nil, "", err
	}
	return out, digest, nil
}

// Digest SHA-256 em base64 da forma canônica de data.
// Documentos que diferem só em formatação de atributos ou declaração têm o mesmo digest.
func Digest(data []byte) (string, error) {
	canonical, err := canonicalize(data)
	if err != nil {
		return "", fmt.Errorf("xml: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}
