package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/domain"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
)

// CourierUseCase acompanhamento das transferências entre lojas.
// Mudanças de status não tocam OTP, motorista nem previsão de chegada.
type CourierUseCase struct {
	repo repository.CourierOrderRepository
}

// NewCourierUseCase constrói o caso de uso.
func NewCourierUseCase(repo repository.CourierOrderRepository) *CourierUseCase {
	return &CourierUseCase{repo: repo}
}

// List lista os pedidos da loja (storeID vazio = todas).
func (uc *CourierUseCase) List(ctx context.Context, storeID string) ([]dto.CourierOrderResponse, error) {
	list, err := uc.repo.List(ctx, repository.StoreFilter{StoreID: storeID})
	if err != nil {
		return nil, fmt.Errorf("listar pedidos de courier: %w", err)
	}
	out := make([]dto.CourierOrderResponse, 0, len(list))
	for i := range list {
		out = append(out, *ToCourierOrderResponse(&list[i]))
	}
	return out, nil
}

// GetByID obtém um pedido por ID.
func (uc *CourierUseCase) GetByID(ctx context.Context, id string) (*dto.CourierOrderResponse, error) {
	co, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return ToCourierOrderResponse(co), nil
}

// SetStatus (setCourierStatus / updateCourierStatus) aplica a tabela de transições.
func (uc *CourierUseCase) SetStatus(ctx context.Context, id, status string) (*dto.CourierOrderResponse, error) {
	target, ok := entity.ParseCourierStatus(status)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	return uc.update(ctx, id, func(co *entity.CourierOrder) error {
		if !co.Status.CanMoveTo(target) {
			return domain.ErrInvalidTransition
		}
		co.Status = target
		return nil
	})
}

// Advance PENDENTE → ACEITO → COLETADO → ENTREGUE. Estados terminais não avançam.
func (uc *CourierUseCase) Advance(ctx context.Context, id string) (*dto.CourierOrderResponse, error) {
	return uc.update(ctx, id, func(co *entity.CourierOrder) error {
		next, ok := co.Status.Next()
		if !ok {
			return domain.ErrInvalidTransition
		}
		co.Status = next
		return nil
	})
}

// Cancel cancela a partir de qualquer estado não terminal.
func (uc *CourierUseCase) Cancel(ctx context.Context, id string) (*dto.CourierOrderResponse, error) {
	return uc.SetStatus(ctx, id, string(entity.CourierCancelado))
}

func (uc *CourierUseCase) update(ctx context.Context, id string, fn func(co *entity.CourierOrder) error) (*dto.CourierOrderResponse, error) {
	co, err := uc.repo.Update(ctx, id, fn)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return ToCourierOrderResponse(co), nil
}
