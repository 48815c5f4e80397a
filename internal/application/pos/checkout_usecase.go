package pos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/application/usecase"
	"github.com/jhoicas/edinho-pneus-api/internal/domain"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
)

// CheckoutConfig parâmetros de fechamento de venda.
type CheckoutConfig struct {
	// DecrementStock baixa o estoque dos itens vendidos.
	DecrementStock bool
	// DefaultMethod usado quando a venda não informa a forma de pagamento.
	DefaultMethod entity.PaymentMethod
}

// CheckoutUseCase fecha vendas do PDV: uma RECEITA no caixa por carrinho.
type CheckoutUseCase struct {
	products repository.ProductRepository
	tx       TxRunner
	cfg      CheckoutConfig
	now      func() time.Time
}

// NewCheckoutUseCase constrói o caso de uso. now pode ser nil (time.Now).
func NewCheckoutUseCase(products repository.ProductRepository, tx TxRunner, cfg CheckoutConfig, now func() time.Time) *CheckoutUseCase {
	if now == nil {
		now = time.Now
	}
	if !cfg.DefaultMethod.Valid() {
		cfg.DefaultMethod = entity.PaymentMisto
	}
	return &CheckoutUseCase{products: products, tx: tx, cfg: cfg, now: now}
}

// BuildCart monta o carrinho a partir da requisição, lendo os produtos da loja.
func (uc *CheckoutUseCase) BuildCart(ctx context.Context, storeID string, items []dto.CheckoutItemRequest) (*Cart, error) {
	cart := NewCart()
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantidade deve ser >= 1", domain.ErrInvalidInput)
		}
		p, err := uc.products.GetByID(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: produto %s", domain.ErrNotFound, it.ProductID)
			}
			return nil, err
		}
		if storeID != "" && p.StoreID != storeID {
			return nil, fmt.Errorf("%w: produto %s", domain.ErrNotFound, it.ProductID)
		}
		if err := cart.AddQuantity(*p, it.Quantity); err != nil {
			return nil, err
		}
	}
	return cart, nil
}

// Checkout registra a venda do carrinho e o esvazia.
// Carrinho vazio: ErrEmptyCart, nada é gravado.
// Com DecrementStock, falta de estoque aborta a venda inteira (ErrInsufficientStock).
func (uc *CheckoutUseCase) Checkout(ctx context.Context, storeID string, cart *Cart, method string) (*dto.CheckoutResponse, error) {
	if cart == nil || cart.Empty() {
		return nil, domain.ErrEmptyCart
	}
	pm := uc.cfg.DefaultMethod
	if method != "" {
		parsed, ok := entity.ParsePaymentMethod(strings.ToUpper(method))
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		pm = parsed
	}

	items := cart.Items()
	total := cart.Total()
	count := cart.Count()
	ref := fmt.Sprintf("PDV-%d", uc.now().UnixMilli())

	var created *entity.Transaction
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, transactions repository.TransactionRepository) error {
		for _, it := range items {
			if _, err := products.Update(ctx, it.Product.ID, func(p *entity.Product) error {
				if !p.Sellable() {
					return domain.ErrProductNotApproved
				}
				if !uc.cfg.DecrementStock {
					return nil
				}
				if p.Stock < it.Quantity {
					return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, p.LabelID)
				}
				p.Stock -= it.Quantity
				return nil
			}); err != nil {
				return err
			}
		}
		var err error
		created, err = transactions.Append(ctx, entity.Transaction{
			StoreID:     storeID,
			Type:        entity.TransactionReceita,
			Amount:      total,
			Method:      pm,
			ReferenceID: &ref,
			Description: fmt.Sprintf("Venda PDV (%d itens)", count),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	lines := make([]dto.CartLineDTO, 0, len(items))
	for _, it := range items {
		lines = append(lines, dto.CartLineDTO{
			ProductID: it.Product.ID,
			LabelID:   it.Product.LabelID,
			Name:      it.Product.Name,
			UnitPrice: it.Product.SuggestedPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal(),
		})
	}
	cart.Clear()
	return &dto.CheckoutResponse{
		Transaction: *usecase.ToTransactionResponse(created),
		Lines:       lines,
		ItemCount:   count,
		Total:       total,
	}, nil
}
