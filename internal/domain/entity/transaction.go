package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType natureza do lançamento no caixa.
type TransactionType string

const (
	TransactionReceita TransactionType = "RECEITA"
	TransactionDespesa TransactionType = "DESPESA"
)

// Valid indica se o tipo é conhecido.
func (t TransactionType) Valid() bool {
	return t == TransactionReceita || t == TransactionDespesa
}

// PaymentMethod forma de pagamento.
type PaymentMethod string

const (
	PaymentPix      PaymentMethod = "PIX"
	PaymentCartao   PaymentMethod = "CARTAO"
	PaymentDinheiro PaymentMethod = "DINHEIRO"
	PaymentMisto    PaymentMethod = "MISTO"
)

// ParsePaymentMethod converte texto em forma de pagamento; ok=false se desconhecida.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	m := PaymentMethod(s)
	return m, m.Valid()
}

// Valid indica se a forma de pagamento é conhecida.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentPix, PaymentCartao, PaymentDinheiro, PaymentMisto:
		return true
	}
	return false
}

// Transaction lançamento do livro-caixa (somente inclusão).
// Amount é sempre positivo; o sinal vem de Type.
type Transaction struct {
	ID          string
	StoreID     string
	Type        TransactionType
	Amount      decimal.Decimal
	Method      PaymentMethod
	CreatedAt   time.Time
	ReferenceID *string
	Description string
}

// Signed valor com sinal: positivo para RECEITA, negativo para DESPESA.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionDespesa {
		return t.Amount.Neg()
	}
	return t.Amount
}

// LedgerTotals somatório de um conjunto de lançamentos.
type LedgerTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// SumLedger soma entradas, saídas e saldo, arredondados a 2 casas.
func SumLedger(txs []Transaction) LedgerTotals {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range txs {
		switch t.Type {
		case TransactionReceita:
			income = income.Add(t.Amount)
		case TransactionDespesa:
			expense = expense.Add(t.Amount)
		}
	}
	return LedgerTotals{
		Income:  income.Round(2),
		Expense: expense.Round(2),
		Balance: income.Sub(expense).Round(2),
	}
}
