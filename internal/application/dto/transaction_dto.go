package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada de addTransaction (sem id nem created_at).
type CreateTransactionRequest struct {
	StoreID     string          `json:"store_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	ReferenceID *string         `json:"reference_id"`
	Description string          `json:"description"`
}

// TransactionResponse saída de um lançamento.
type TransactionResponse struct {
	ID          string          `json:"id"`
	StoreID     string          `json:"store_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	CreatedAt   time.Time       `json:"created_at"`
	ReferenceID *string         `json:"reference_id,omitempty"`
	Description string          `json:"description"`
}

// LedgerDTO livro-caixa com totais.
type LedgerDTO struct {
	StoreID string                `json:"store_id,omitempty"`
	Entries []TransactionResponse `json:"entries"`
	Income  decimal.Decimal       `json:"income"`
	Expense decimal.Decimal       `json:"expense"`
	Balance decimal.Decimal       `json:"balance"`
}
