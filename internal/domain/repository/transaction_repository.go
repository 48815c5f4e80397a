package repository

import (
	"context"

	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
)

// TransactionRepository livro-caixa: só inclusão, sem update nem delete.
// Append atribui ID e CreatedAt.
type TransactionRepository interface {
	List(ctx context.Context, filter StoreFilter) ([]entity.Transaction, error)
	Append(ctx context.Context, tx entity.Transaction) (*entity.Transaction, error)
}
