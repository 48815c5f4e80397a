package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/domain"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
)

// ProductUseCase casos de uso de estoque. Not-found devolve (nil, nil).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista os produtos da loja (storeID vazio = todas), na ordem do store.
func (uc *ProductUseCase) List(ctx context.Context, storeID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, repository.StoreFilter{StoreID: storeID})
	if err != nil {
		return nil, fmt.Errorf("listar produtos: %w", err)
	}
	return ToProductResponses(list), nil
}

// GetByID obtém um produto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return ToProductResponse(p), nil
}

// Create (addProduct) cria o produto; o store atribui o ID e o insere no início.
// Status vazio vira EM_CONFERENCIA. Estoque não é validado.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	status := entity.ProductEmConferencia
	if in.Status != "" {
		st, ok := entity.ParseProductStatus(in.Status)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		status = st
	}
	condition := entity.Condition(in.Condition)
	if in.Condition != "" && !condition.Valid() {
		return nil, domain.ErrInvalidInput
	}
	created, err := uc.repo.Create(ctx, entity.Product{
		StoreID:        in.StoreID,
		LabelID:        in.LabelID,
		Name:           in.Name,
		Condition:      condition,
		Size:           in.Size,
		CostPrice:      in.CostPrice,
		SuggestedPrice: in.SuggestedPrice,
		Status:         status,
		Stock:          in.Stock,
		Category:       in.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("criar produto: %w", err)
	}
	return ToProductResponse(created), nil
}

// Update atualização parcial. Não mexe no status.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Condition != nil && !entity.Condition(*in.Condition).Valid() {
		return nil, domain.ErrInvalidInput
	}
	updated, err := uc.repo.Update(ctx, id, func(p *entity.Product) error {
		if in.LabelID != nil {
			p.LabelID = *in.LabelID
		}
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Condition != nil {
			p.Condition = entity.Condition(*in.Condition)
		}
		if in.Size != nil {
			p.Size = *in.Size
		}
		if in.CostPrice != nil {
			p.CostPrice = *in.CostPrice
		}
		if in.SuggestedPrice != nil {
			p.SuggestedPrice = *in.SuggestedPrice
		}
		if in.Stock != nil {
			p.Stock = *in.Stock
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		return nil
	})
	return uc.result(updated, err)
}

// Approve (approveProduct) marca o produto como APROVADO. Idempotente.
func (uc *ProductUseCase) Approve(ctx context.Context, id string) (*dto.ProductResponse, error) {
	updated, err := uc.repo.Update(ctx, id, func(p *entity.Product) error {
		if !p.Status.CanMoveTo(entity.ProductAprovado) {
			return domain.ErrInvalidTransition
		}
		p.Status = entity.ProductAprovado
		return nil
	})
	return uc.result(updated, err)
}

// UpdateStock (updateProductStock) sobrescreve o estoque, sem verificação de limites.
func (uc *ProductUseCase) UpdateStock(ctx context.Context, id string, stock int) (*dto.ProductResponse, error) {
	updated, err := uc.repo.Update(ctx, id, func(p *entity.Product) error {
		p.Stock = stock
		return nil
	})
	return uc.result(updated, err)
}

// Delete remove o produto. found=false se o ID não existir.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (bool, error) {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (uc *ProductUseCase) result(p *entity.Product, err error) (*dto.ProductResponse, error) {
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return ToProductResponse(p), nil
}
