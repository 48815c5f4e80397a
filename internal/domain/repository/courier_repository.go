package repository

import (
	"context"

	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
)

// CourierOrderRepository porta de persistência para CourierOrder.
type CourierOrderRepository interface {
	List(ctx context.Context, filter StoreFilter) ([]entity.CourierOrder, error)
	GetByID(ctx context.Context, id string) (*entity.CourierOrder, error)
	Update(ctx context.Context, id string, fn func(co *entity.CourierOrder) error) (*entity.CourierOrder, error)
}
