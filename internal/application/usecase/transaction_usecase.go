package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/domain"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
)

// TransactionUseCase livro-caixa: listagem, lançamento e totais.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase constrói o caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// List lista os lançamentos da loja (storeID vazio = todas), mais recentes primeiro.
func (uc *TransactionUseCase) List(ctx context.Context, storeID string) ([]dto.TransactionResponse, error) {
	list, err := uc.repo.List(ctx, repository.StoreFilter{StoreID: storeID})
	if err != nil {
		return nil, fmt.Errorf("listar lançamentos: %w", err)
	}
	out := make([]dto.TransactionResponse, 0, len(list))
	for i := range list {
		out = append(out, *ToTransactionResponse(&list[i]))
	}
	return out, nil
}

// Create (addTransaction) registra um lançamento; o store atribui ID e CreatedAt.
// Amount deve ser positivo; o sinal vem do tipo.
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	txType := entity.TransactionType(strings.ToUpper(in.Type))
	method, ok := entity.ParsePaymentMethod(strings.ToUpper(in.Method))
	if !txType.Valid() || !ok || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	created, err := uc.repo.Append(ctx, entity.Transaction{
		StoreID:     in.StoreID,
		Type:        txType,
		Amount:      in.Amount,
		Method:      method,
		ReferenceID: in.ReferenceID,
		Description: in.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("registrar lançamento: %w", err)
	}
	return ToTransactionResponse(created), nil
}

// Ledger lançamentos da loja com entradas, saídas e saldo.
func (uc *TransactionUseCase) Ledger(ctx context.Context, storeID string) (*dto.LedgerDTO, error) {
	list, err := uc.repo.List(ctx, repository.StoreFilter{StoreID: storeID})
	if err != nil {
		return nil, fmt.Errorf("livro-caixa: %w", err)
	}
	totals := entity.SumLedger(list)
	ledger := &dto.LedgerDTO{
		StoreID: storeID,
		Entries: make([]dto.TransactionResponse, 0, len(list)),
		Income:  totals.Income,
		Expense: totals.Expense,
		Balance: totals.Balance,
	}
	for i := range list {
		ledger.Entries = append(ledger.Entries, *ToTransactionResponse(&list[i]))
	}
	return ledger, nil
}
