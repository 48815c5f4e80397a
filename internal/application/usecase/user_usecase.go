package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
)

// UserUseCase leitura de usuários para o painel administrativo.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista todos os usuários.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuários: %w", err)
	}
	out := make([]dto.UserResponse, 0, len(list))
	for i := range list {
		out = append(out, *ToUserResponse(&list[i]))
	}
	return out, nil
}

// GetByID obtém um usuário; (nil, nil) se não existir.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return ToUserResponse(u), nil
}
