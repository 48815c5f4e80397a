package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/domain"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
)

// kanbanLabels rótulos das colunas do quadro.
var kanbanLabels = map[entity.ServiceOrderStatus]string{
	entity.ServiceOrderAguardando: "AGUARDANDO",
	entity.ServiceOrderEmServico:  "EM SERVIÇO",
	entity.ServiceOrderFinalizado: "FINALIZADO",
	entity.ServiceOrderEntregue:   "ENTREGUE",
}

// ServiceOrderUseCase quadro Kanban de ordens de serviço.
// Toda mudança de status passa pela tabela de transições da entidade.
type ServiceOrderUseCase struct {
	repo repository.ServiceOrderRepository
}

// NewServiceOrderUseCase constrói o caso de uso.
func NewServiceOrderUseCase(repo repository.ServiceOrderRepository) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo}
}

// List lista as O.S. da loja (storeID vazio = todas).
func (uc *ServiceOrderUseCase) List(ctx context.Context, storeID string) ([]dto.ServiceOrderResponse, error) {
	list, err := uc.repo.List(ctx, repository.StoreFilter{StoreID: storeID})
	if err != nil {
		return nil, fmt.Errorf("listar ordens de serviço: %w", err)
	}
	out := make([]dto.ServiceOrderResponse, 0, len(list))
	for i := range list {
		out = append(out, *ToServiceOrderResponse(&list[i]))
	}
	return out, nil
}

// GetByID obtém uma O.S. por ID.
func (uc *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (*dto.ServiceOrderResponse, error) {
	so, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return ToServiceOrderResponse(so), nil
}

// Move (moveServiceOrder / updateServiceOrderStatus) leva a O.S. para uma etapa vizinha.
// Status desconhecido: ErrInvalidInput. Etapa não vizinha: ErrInvalidTransition.
func (uc *ServiceOrderUseCase) Move(ctx context.Context, id, status string) (*dto.ServiceOrderResponse, error) {
	target, ok := entity.ParseServiceOrderStatus(status)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	return uc.update(ctx, id, func(so *entity.ServiceOrder) error {
		if !so.Status.CanMoveTo(target) {
			return domain.ErrInvalidTransition
		}
		so.Status = target
		return nil
	})
}

// Advance botão "Avançar": desabilitado em ENTREGUE.
func (uc *ServiceOrderUseCase) Advance(ctx context.Context, id string) (*dto.ServiceOrderResponse, error) {
	return uc.update(ctx, id, func(so *entity.ServiceOrder) error {
		next, ok := so.Status.Next()
		if !ok {
			return domain.ErrInvalidTransition
		}
		so.Status = next
		return nil
	})
}

// Back botão "Voltar": desabilitado em AGUARDANDO.
func (uc *ServiceOrderUseCase) Back(ctx context.Context, id string) (*dto.ServiceOrderResponse, error) {
	return uc.update(ctx, id, func(so *entity.ServiceOrder) error {
		prev, ok := so.Status.Prev()
		if !ok {
			return domain.ErrInvalidTransition
		}
		so.Status = prev
		return nil
	})
}

// Board monta o quadro: uma coluna por etapa, cartões na ordem do store.
func (uc *ServiceOrderUseCase) Board(ctx context.Context, storeID string) (*dto.KanbanBoardDTO, error) {
	list, err := uc.repo.List(ctx, repository.StoreFilter{StoreID: storeID})
	if err != nil {
		return nil, fmt.Errorf("montar quadro: %w", err)
	}
	board := &dto.KanbanBoardDTO{StoreID: storeID, Columns: make([]dto.KanbanColumnDTO, 0, len(entity.ServiceOrderPipeline))}
	for _, st := range entity.ServiceOrderPipeline {
		col := dto.KanbanColumnDTO{Status: string(st), Label: kanbanLabels[st], Cards: []dto.KanbanCardDTO{}}
		_, canAdvance := st.Next()
		_, canBack := st.Prev()
		for i := range list {
			if list[i].Status != st {
				continue
			}
			col.Cards = append(col.Cards, dto.KanbanCardDTO{
				ServiceOrderResponse: *ToServiceOrderResponse(&list[i]),
				CanAdvance:           canAdvance,
				CanBack:              canBack,
			})
		}
		col.Count = len(col.Cards)
		board.Columns = append(board.Columns, col)
	}
	return board, nil
}

func (uc *ServiceOrderUseCase) update(ctx context.Context, id string, fn func(so *entity.ServiceOrder) error) (*dto.ServiceOrderResponse, error) {
	so, err := uc.repo.Update(ctx, id, fn)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return ToServiceOrderResponse(so), nil
}
