package memory

import (
	"context"

	"github.com/jhoicas/edinho-pneus-api/internal/domain"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository leitura da coleção de usuários.
type UserRepository struct {
	g guard
}

// NewUserRepository constrói o repositório sobre o store.
func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{g: guard{s: s}}
}

// List devolve todos os usuários na ordem da coleção.
func (r *UserRepository) List(_ context.Context) ([]entity.User, error) {
	defer r.g.read()()
	out := make([]entity.User, len(r.g.s.users))
	copy(out, r.g.s.users)
	return out, nil
}

// GetByID busca um usuário; domain.ErrNotFound se não existir.
func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	defer r.g.read()()
	for _, u := range r.g.s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}
