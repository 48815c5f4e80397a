package entity

import "github.com/shopspring/decimal"

// ProductStatus situação de conferência do produto.
type ProductStatus string

const (
	ProductEmConferencia ProductStatus = "EM_CONFERENCIA"
	ProductAprovado      ProductStatus = "APROVADO"
)

// ParseProductStatus converte texto em status; ok=false se desconhecido.
func ParseProductStatus(s string) (ProductStatus, bool) {
	st := ProductStatus(s)
	return st, st.Valid()
}

// Valid indica se o status é conhecido.
func (s ProductStatus) Valid() bool {
	return s == ProductEmConferencia || s == ProductAprovado
}

// CanMoveTo conferência é de mão única: EM_CONFERENCIA → APROVADO.
// Aprovar um produto já aprovado é permitido (idempotente).
func (s ProductStatus) CanMoveTo(target ProductStatus) bool {
	switch s {
	case ProductEmConferencia:
		return target == ProductEmConferencia || target == ProductAprovado
	case ProductAprovado:
		return target == ProductAprovado
	}
	return false
}

// Condition estado físico do item.
type Condition string

const (
	ConditionNovo  Condition = "Novo"
	ConditionUsado Condition = "Usado"
)

// Valid indica se a condição é conhecida.
func (c Condition) Valid() bool {
	return c == ConditionNovo || c == ConditionUsado
}

// Product representa uma unidade de estoque (pneu, peça).
// LabelID deveria ser único por loja, mas a unicidade não é verificada.
type Product struct {
	ID             string
	StoreID        string
	LabelID        string
	Name           string
	Condition      Condition
	Size           string
	CostPrice      decimal.Decimal
	SuggestedPrice decimal.Decimal
	Status         ProductStatus
	Stock          int
	Category       string
}

// Sellable só produtos aprovados aparecem no PDV.
func (p Product) Sellable() bool {
	return p.Status == ProductAprovado
}
