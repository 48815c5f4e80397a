package repository

import (
	"context"

	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
)

// ServiceOrderRepository porta de persistência para ServiceOrder.
// Update renova UpdatedAt quando fn não retorna erro.
type ServiceOrderRepository interface {
	List(ctx context.Context, filter StoreFilter) ([]entity.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (*entity.ServiceOrder, error)
	Update(ctx context.Context, id string, fn func(so *entity.ServiceOrder) error) (*entity.ServiceOrder, error)
}
