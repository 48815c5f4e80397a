package memory

import (
	"context"

	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepository)(nil)

// TransactionRepository livro-caixa em memória; lançamentos novos entram no início.
type TransactionRepository struct {
	g guard
}

// NewTransactionRepository constrói o repositório sobre o store.
func NewTransactionRepository(s *Store) *TransactionRepository {
	return &TransactionRepository{g: guard{s: s}}
}

// List devolve cópias dos lançamentos que passam pelo filtro, na ordem da coleção.
func (r *TransactionRepository) List(_ context.Context, filter repository.StoreFilter) ([]entity.Transaction, error) {
	defer r.g.read()()
	out := make([]entity.Transaction, 0, len(r.g.s.transactions))
	for _, t := range r.g.s.transactions {
		if filter.Match(t.StoreID) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Append atribui ID e CreatedAt e insere o lançamento no início do livro.
func (r *TransactionRepository) Append(_ context.Context, tx entity.Transaction) (*entity.Transaction, error) {
	defer r.g.write()()
	tx.ID = r.g.s.GenerateID()
	tx.CreatedAt = r.g.s.Now()
	r.g.s.transactions = append([]entity.Transaction{tx}, r.g.s.transactions...)
	created := tx
	return &created, nil
}
