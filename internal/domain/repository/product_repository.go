package repository

import (
	"context"

	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
)

// ProductRepository porta de persistência para Product (DIP).
// Create atribui o ID; Update aplica fn sobre o registro sob o lock do store.
type ProductRepository interface {
	List(ctx context.Context, filter StoreFilter) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, product entity.Product) (*entity.Product, error)
	Update(ctx context.Context, id string, fn func(p *entity.Product) error) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
