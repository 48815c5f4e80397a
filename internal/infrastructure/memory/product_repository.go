package memory

import (
	"context"

	"github.com/jhoicas/edinho-pneus-api/internal/domain"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository coleção de produtos. Novos produtos entram no início.
type ProductRepository struct {
	g guard
}

// NewProductRepository constrói o repositório sobre o store.
func NewProductRepository(s *Store) *ProductRepository {
	return &ProductRepository{g: guard{s: s}}
}

// List devolve cópias dos produtos que passam pelo filtro, na ordem da coleção.
func (r *ProductRepository) List(_ context.Context, filter repository.StoreFilter) ([]entity.Product, error) {
	defer r.g.read()()
	out := make([]entity.Product, 0, len(r.g.s.products))
	for _, p := range r.g.s.products {
		if filter.Match(p.StoreID) {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByID busca um produto; domain.ErrNotFound se não existir.
func (r *ProductRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	defer r.g.read()()
	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	p := r.g.s.products[i]
	return &p, nil
}

// Create atribui um ID novo e insere o produto no início da coleção.
func (r *ProductRepository) Create(_ context.Context, product entity.Product) (*entity.Product, error) {
	defer r.g.write()()
	product.ID = r.g.s.GenerateID()
	r.g.s.products = append([]entity.Product{product}, r.g.s.products...)
	created := product
	return &created, nil
}

// Update aplica fn a uma cópia do produto e grava o resultado se fn não falhar.
// O ID nunca muda.
func (r *ProductRepository) Update(_ context.Context, id string, fn func(p *entity.Product) error) (*entity.Product, error) {
	defer r.g.write()()
	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	p := r.g.s.products[i]
	if err := fn(&p); err != nil {
		return nil, err
	}
	p.ID = r.g.s.products[i].ID
	r.g.s.products[i] = p
	return &p, nil
}

// Delete remove o produto; domain.ErrNotFound se não existir.
func (r *ProductRepository) Delete(_ context.Context, id string) error {
	defer r.g.write()()
	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.g.s.products = append(r.g.s.products[:i:i], r.g.s.products[i+1:]...)
	return nil
}

func (r *ProductRepository) indexOf(id string) int {
	for i, p := range r.g.s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
