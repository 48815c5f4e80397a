package memory

import (
	"context"

	"github.com/jhoicas/edinho-pneus-api/internal/domain"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
)

var _ repository.ServiceOrderRepository = (*ServiceOrderRepository)(nil)

// ServiceOrderRepository coleção de ordens de serviço.
type ServiceOrderRepository struct {
	g guard
}

// NewServiceOrderRepository constrói o repositório sobre o store.
func NewServiceOrderRepository(s *Store) *ServiceOrderRepository {
	return &ServiceOrderRepository{g: guard{s: s}}
}

// List devolve cópias das O.S. que passam pelo filtro, na ordem da coleção.
func (r *ServiceOrderRepository) List(_ context.Context, filter repository.StoreFilter) ([]entity.ServiceOrder, error) {
	defer r.g.read()()
	out := make([]entity.ServiceOrder, 0, len(r.g.s.serviceOrders))
	for _, so := range r.g.s.serviceOrders {
		if filter.Match(so.StoreID) {
			out = append(out, so)
		}
	}
	return out, nil
}

// GetByID busca uma O.S.; domain.ErrNotFound se não existir.
func (r *ServiceOrderRepository) GetByID(_ context.Context, id string) (*entity.ServiceOrder, error) {
	defer r.g.read()()
	for _, so := range r.g.s.serviceOrders {
		if so.ID == id {
			found := so
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Update aplica fn e renova UpdatedAt com o relógio do store.
func (r *ServiceOrderRepository) Update(_ context.Context, id string, fn func(so *entity.ServiceOrder) error) (*entity.ServiceOrder, error) {
	defer r.g.write()()
	for i := range r.g.s.serviceOrders {
		if r.g.s.serviceOrders[i].ID != id {
			continue
		}
		so := r.g.s.serviceOrders[i]
		if err := fn(&so); err != nil {
			return nil, err
		}
		so.ID = r.g.s.serviceOrders[i].ID
		if now := r.g.s.Now(); now.After(so.UpdatedAt) {
			so.UpdatedAt = now
		}
		r.g.s.serviceOrders[i] = so
		return &so, nil
	}
	return nil, domain.ErrNotFound
}
