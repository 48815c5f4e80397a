package memory

import (
	"context"

	"github.com/jhoicas/edinho-pneus-api/internal/domain"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
)

var _ repository.CourierOrderRepository = (*CourierOrderRepository)(nil)

// CourierOrderRepository coleção de pedidos de courier.
type CourierOrderRepository struct {
	g guard
}

// NewCourierOrderRepository constrói o repositório sobre o store.
func NewCourierOrderRepository(s *Store) *CourierOrderRepository {
	return &CourierOrderRepository{g: guard{s: s}}
}

// List devolve cópias dos pedidos que passam pelo filtro, na ordem da coleção.
func (r *CourierOrderRepository) List(_ context.Context, filter repository.StoreFilter) ([]entity.CourierOrder, error) {
	defer r.g.read()()
	out := make([]entity.CourierOrder, 0, len(r.g.s.courierOrders))
	for _, co := range r.g.s.courierOrders {
		if filter.Match(co.StoreID) {
			out = append(out, co)
		}
	}
	return out, nil
}

// GetByID busca um pedido; domain.ErrNotFound se não existir.
func (r *CourierOrderRepository) GetByID(_ context.Context, id string) (*entity.CourierOrder, error) {
	defer r.g.read()()
	for _, co := range r.g.s.courierOrders {
		if co.ID == id {
			found := co
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Update aplica fn a uma cópia do pedido e grava o resultado se fn não falhar.
func (r *CourierOrderRepository) Update(_ context.Context, id string, fn func(co *entity.CourierOrder) error) (*entity.CourierOrder, error) {
	defer r.g.write()()
	for i := range r.g.s.courierOrders {
		if r.g.s.courierOrders[i].ID != id {
			continue
		}
		co := r.g.s.courierOrders[i]
		if err := fn(&co); err != nil {
			return nil, err
		}
		co.ID = r.g.s.courierOrders[i].ID
		r.g.s.courierOrders[i] = co
		return &co, nil
	}
	return nil, domain.ErrNotFound
}
