package pos

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/application/usecase"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
	"github.com/jhoicas/edinho-pneus-api/pkg/textsearch"
)

// AllCategories pseudo-categoria que desliga o filtro.
const AllCategories = "Todos"

// CatalogUseCase vitrine do PDV: só produtos APROVADO.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constrói o caso de uso.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// List produtos vendáveis da loja filtrados por categoria e busca.
// A busca casa com nome ou código da etiqueta, sem diferenciar caixa e acentos.
func (uc *CatalogUseCase) List(ctx context.Context, storeID, category, search string) (*dto.CatalogResponse, error) {
	list, err := uc.products.List(ctx, repository.StoreFilter{StoreID: storeID})
	if err != nil {
		return nil, fmt.Errorf("catálogo: %w", err)
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = AllCategories
	}
	search = strings.TrimSpace(search)

	items := make([]entity.Product, 0, len(list))
	for _, p := range list {
		if !p.Sellable() {
			continue
		}
		if category != AllCategories && p.Category != category {
			continue
		}
		if !textsearch.Contains(p.Name, search) && !textsearch.Contains(p.LabelID, search) {
			continue
		}
		items = append(items, p)
	}
	return &dto.CatalogResponse{
		Category: category,
		Search:   search,
		Items:    usecase.ToProductResponses(items),
		Total:    len(items),
	}, nil
}

// Categories "Todos" seguido das categorias distintas da loja, em ordem alfabética.
func (uc *CatalogUseCase) Categories(ctx context.Context, storeID string) ([]string, error) {
	list, err := uc.products.List(ctx, repository.StoreFilter{StoreID: storeID})
	if err != nil {
		return nil, fmt.Errorf("categorias: %w", err)
	}
	seen := make(map[string]struct{}, len(list))
	cats := make([]string, 0, len(list))
	for _, p := range list {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		cats = append(cats, p.Category)
	}
	sort.Strings(cats)
	return append([]string{AllCategories}, cats...), nil
}
