package memory

import (
	"context"

	"github.com/jhoicas/edinho-pneus-api/internal/application/pos"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
)

var _ pos.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks com o lock de escrita do store e repositórios atados a ele.
type TxRunner struct {
	s *Store
}

// NewTxRunner constrói o runner sobre o store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run trava o store, tira um snapshot de produtos e lançamentos e executa fn.
// Se fn retornar erro, o snapshot é restaurado (rollback); senão as mudanças ficam (commit).
func (r *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	transactions repository.TransactionRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	productsSnap := append([]entity.Product(nil), r.s.products...)
	transactionsSnap := append([]entity.Transaction(nil), r.s.transactions...)

	held := guard{s: r.s, held: true}
	if err := fn(&ProductRepository{g: held}, &TransactionRepository{g: held}); err != nil {
		r.s.products = productsSnap
		r.s.transactions = transactionsSnap
		return err
	}
	return nil
}
