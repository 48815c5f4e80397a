package pos

import (
	"context"

	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
)

// TxRunner executa fn de forma atômica sobre produtos e lançamentos.
// Se fn retornar erro, nenhuma alteração feita dentro dela permanece.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		transactions repository.TransactionRepository,
	) error) error
}
