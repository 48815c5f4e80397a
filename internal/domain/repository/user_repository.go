package repository

import (
	"context"

	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
)

// UserRepository porta de leitura de usuários (DIP).
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
