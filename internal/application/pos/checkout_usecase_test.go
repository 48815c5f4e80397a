package pos_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/application/pos"
	"github.com/jhoicas/edinho-pneus-api/internal/domain"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
	"github.com/jhoicas/edinho-pneus-api/internal/infrastructure/memory"
)

var saleTime = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

type fixture struct {
	store    *memory.Store
	products *memory.ProductRepository
	checkout *pos.CheckoutUseCase
	catalog  *pos.CatalogUseCase
	a, b     string
}

func newFixture(t *testing.T, decrement bool) *fixture {
	t.Helper()
	s := memory.NewStore(memory.WithClock(func() time.Time { return saleTime }))
	products := memory.NewProductRepository(s)
	ctx := context.Background()

	a, err := products.Create(ctx, entity.Product{StoreID: "1", LabelID: "PIR-001", Name: "Pneu Pirelli Cinturato", Category: "Pneus", SuggestedPrice: decimal.NewFromInt(100), Status: entity.ProductAprovado, Stock: 5})
	require.NoError(t, err)
	b, err := products.Create(ctx, entity.Product{StoreID: "1", LabelID: "OIL-003", Name: "Óleo Motor 5W30", Category: "Óleos", SuggestedPrice: decimal.NewFromInt(50), Status: entity.ProductAprovado, Stock: 1})
	require.NoError(t, err)
	_, err = products.Create(ctx, entity.Product{StoreID: "1", LabelID: "FIL-004", Name: "Filtro de Ar", Category: "Filtros", SuggestedPrice: decimal.NewFromInt(25), Status: entity.ProductEmConferencia, Stock: 9})
	require.NoError(t, err)

	return &fixture{
		store:    s,
		products: products,
		checkout: pos.NewCheckoutUseCase(products, memory.NewTxRunner(s), pos.CheckoutConfig{DecrementStock: decrement}, s.Now),
		catalog:  pos.NewCatalogUseCase(products),
		a:        a.ID,
		b:        b.ID,
	}
}

func (f *fixture) transactions(t *testing.T) []entity.Transaction {
	t.Helper()
	list, err := memory.NewTransactionRepository(f.store).List(context.Background(), repository.StoreFilter{})
	require.NoError(t, err)
	return list
}

func TestCheckout_RegistraReceitaELimpaCarrinho(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	cart, err := f.checkout.BuildCart(ctx, "1", []dto.CheckoutItemRequest{{ProductID: f.a, Quantity: 2}, {ProductID: f.b, Quantity: 1}})
	require.NoError(t, err)

	res, err := f.checkout.Checkout(ctx, "1", cart, "")
	require.NoError(t, err)
	assert.True(t, cart.Empty())
	assert.True(t, res.Total.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 3, res.ItemCount)
	assert.Len(t, res.Lines, 2)

	tx := res.Transaction
	assert.Equal(t, "RECEITA", tx.Type)
	assert.Equal(t, "MISTO", tx.Method)
	assert.Equal(t, "Venda PDV (3 itens)", tx.Description)
	require.NotNil(t, tx.ReferenceID)
	assert.Equal(t, "PDV-1773156600000", *tx.ReferenceID)

	list := f.transactions(t)
	require.Len(t, list, 1)
	assert.Equal(t, tx.ID, list[0].ID)

	pa, err := f.products.GetByID(ctx, f.a)
	require.NoError(t, err)
	assert.Equal(t, 3, pa.Stock)
	pb, err := f.products.GetByID(ctx, f.b)
	require.NoError(t, err)
	assert.Equal(t, 0, pb.Stock)
}

func TestCheckout_CarrinhoVazio(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.checkout.Checkout(context.Background(), "1", pos.NewCart(), "PIX")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Empty(t, f.transactions(t))
}

func TestCheckout_EstoqueInsuficienteDesfazTudo(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	cart, err := f.checkout.BuildCart(ctx, "1", []dto.CheckoutItemRequest{{ProductID: f.a, Quantity: 2}, {ProductID: f.b, Quantity: 3}})
	require.NoError(t, err)

	_, err = f.checkout.Checkout(ctx, "1", cart, "PIX")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.False(t, cart.Empty())
	assert.Empty(t, f.transactions(t))

	pa, err := f.products.GetByID(ctx, f.a)
	require.NoError(t, err)
	assert.Equal(t, 5, pa.Stock)
}

func TestCheckout_SemBaixaDeEstoque(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	cart, err := f.checkout.BuildCart(ctx, "1", []dto.CheckoutItemRequest{{ProductID: f.b, Quantity: 4}})
	require.NoError(t, err)

	res, err := f.checkout.Checkout(ctx, "1", cart, "dinheiro")
	require.NoError(t, err)
	assert.Equal(t, "DINHEIRO", res.Transaction.Method)

	pb, err := f.products.GetByID(ctx, f.b)
	require.NoError(t, err)
	assert.Equal(t, 1, pb.Stock)
}

func TestCheckout_MetodoInvalido(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	cart, err := f.checkout.BuildCart(ctx, "1", []dto.CheckoutItemRequest{{ProductID: f.a, Quantity: 1}})
	require.NoError(t, err)

	_, err = f.checkout.Checkout(ctx, "1", cart, "CHEQUE")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildCart_Erros(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	_, err := f.checkout.BuildCart(ctx, "1", []dto.CheckoutItemRequest{{ProductID: "nao-existe", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.checkout.BuildCart(ctx, "2", []dto.CheckoutItemRequest{{ProductID: f.a, Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.checkout.BuildCart(ctx, "1", []dto.CheckoutItemRequest{{ProductID: f.a, Quantity: 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalog_FiltraCategoriaEBusca(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	all, err := f.catalog.List(ctx, "1", "", "")
	require.NoError(t, err)
	assert.Equal(t, pos.AllCategories, all.Category)
	assert.Equal(t, 2, all.Total)

	oils, err := f.catalog.List(ctx, "1", "Óleos", "")
	require.NoError(t, err)
	require.Equal(t, 1, oils.Total)
	assert.Equal(t, "OIL-003", oils.Items[0].LabelID)

	byName, err := f.catalog.List(ctx, "1", "Todos", "oleo")
	require.NoError(t, err)
	require.Equal(t, 1, byName.Total)

	byLabel, err := f.catalog.List(ctx, "1", "Todos", "pir-0")
	require.NoError(t, err)
	require.Equal(t, 1, byLabel.Total)
	assert.Equal(t, f.a, byLabel.Items[0].ID)

	hidden, err := f.catalog.List(ctx, "1", "Filtros", "")
	require.NoError(t, err)
	assert.Zero(t, hidden.Total)
	assert.NotNil(t, hidden.Items)
}

func TestCatalog_Categories(t *testing.T) {
	f := newFixture(t, true)

	cats, err := f.catalog.Categories(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Todos", "Filtros", "Pneus", "Óleos"}, cats)
}
