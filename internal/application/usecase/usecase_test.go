package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/application/usecase"
	"github.com/jhoicas/edinho-pneus-api/internal/domain"
	"github.com/jhoicas/edinho-pneus-api/internal/infrastructure/memory"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func newStore(t *testing.T) (*memory.Store, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	s := memory.NewStore(memory.WithClock(c.Now))
	memory.Seed(s, memory.DefaultStoreID)
	return s, c
}

func productIDByLabel(t *testing.T, uc *usecase.ProductUseCase, label string) string {
	t.Helper()
	list, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	for _, p := range list {
		if p.LabelID == label {
			return p.ID
		}
	}
	t.Fatalf("produto %s não encontrado", label)
	return ""
}

func TestProductUseCase_CreateAssumeEmConferencia(t *testing.T) {
	s, _ := newStore(t)
	uc := usecase.NewProductUseCase(memory.NewProductRepository(s))
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{
		StoreID:        "1",
		LabelID:        "P-0200",
		Name:           "Pneu Aro 15",
		Condition:      "Novo",
		Size:           "195/55 R15",
		CostPrice:      decimal.NewFromInt(200),
		SuggestedPrice: decimal.NewFromInt(300),
		Stock:          4,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "EM_CONFERENCIA", created.Status)

	list, err := uc.List(ctx, "1")
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestProductUseCase_CreateRejeitaCondicaoDesconhecida(t *testing.T) {
	s, _ := newStore(t)
	uc := usecase.NewProductUseCase(memory.NewProductRepository(s))

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{StoreID: "1", Name: "X", Condition: "Seminovo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_ApproveIdempotente(t *testing.T) {
	s, _ := newStore(t)
	uc := usecase.NewProductUseCase(memory.NewProductRepository(s))
	ctx := context.Background()
	id := productIDByLabel(t, uc, "P-0002")

	first, err := uc.Approve(ctx, id)
	require.NoError(t, err)
	second, err := uc.Approve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "APROVADO", first.Status)
	assert.Equal(t, first, second)
}

func TestProductUseCase_ApproveInexistenteNaoAltera(t *testing.T) {
	s, _ := newStore(t)
	uc := usecase.NewProductUseCase(memory.NewProductRepository(s))
	ctx := context.Background()
	before, err := uc.List(ctx, "")
	require.NoError(t, err)

	got, err := uc.Approve(ctx, "nao-existe")
	require.NoError(t, err)
	assert.Nil(t, got)

	after, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestProductUseCase_UpdateStockSemLimites(t *testing.T) {
	s, _ := newStore(t)
	uc := usecase.NewProductUseCase(memory.NewProductRepository(s))
	ctx := context.Background()
	id := productIDByLabel(t, uc, "P-0001")

	got, err := uc.UpdateStock(ctx, id, -2)
	require.NoError(t, err)
	assert.Equal(t, -2, got.Stock)

	missing, err := uc.UpdateStock(ctx, "nao-existe", 5)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductUseCase_UpdateParcialEDelete(t *testing.T) {
	s, _ := newStore(t)
	uc := usecase.NewProductUseCase(memory.NewProductRepository(s))
	ctx := context.Background()
	id := productIDByLabel(t, uc, "P-0001")

	name := "Pneu Remold"
	got, err := uc.Update(ctx, id, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
	assert.Equal(t, "P-0001", got.LabelID)

	ok, err := uc.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = uc.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestServiceOrderUseCase_MoveSoParaEtapaVizinha(t *testing.T) {
	s, c := newStore(t)
	uc := usecase.NewServiceOrderUseCase(memory.NewServiceOrderRepository(s))
	ctx := context.Background()

	before, err := uc.GetByID(ctx, "OS-1001")
	require.NoError(t, err)

	c.t = c.t.Add(time.Minute)
	moved, err := uc.Move(ctx, "OS-1001", "EM_SERVICO")
	require.NoError(t, err)
	assert.Equal(t, "EM_SERVICO", moved.Status)
	assert.False(t, moved.UpdatedAt.Before(before.UpdatedAt))

	_, err = uc.Move(ctx, "OS-1001", "ENTREGUE")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = uc.Move(ctx, "OS-1001", "PERDIDO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	missing, err := uc.Move(ctx, "OS-9999", "EM_SERVICO")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestServiceOrderUseCase_BotoesNasPontas(t *testing.T) {
	s, _ := newStore(t)
	uc := usecase.NewServiceOrderUseCase(memory.NewServiceOrderRepository(s))
	ctx := context.Background()

	_, err := uc.Back(ctx, "OS-1001")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	got, err := uc.Advance(ctx, "OS-1003")
	require.NoError(t, err)
	assert.Equal(t, "ENTREGUE", got.Status)

	_, err = uc.Advance(ctx, "OS-1003")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	back, err := uc.Back(ctx, "OS-1003")
	require.NoError(t, err)
	assert.Equal(t, "FINALIZADO", back.Status)
}

func TestServiceOrderUseCase_Board(t *testing.T) {
	s, _ := newStore(t)
	uc := usecase.NewServiceOrderUseCase(memory.NewServiceOrderRepository(s))

	board, err := uc.Board(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, board.Columns, 4)
	assert.Equal(t, "AGUARDANDO", board.Columns[0].Status)
	assert.Equal(t, 1, board.Columns[0].Count)
	assert.False(t, board.Columns[0].Cards[0].CanBack)
	assert.True(t, board.Columns[0].Cards[0].CanAdvance)
	assert.Equal(t, 0, board.Columns[3].Count)
	assert.NotNil(t, board.Columns[3].Cards)

	other, err := uc.Board(context.Background(), "2")
	require.NoError(t, err)
	for _, col := range other.Columns {
		assert.Zero(t, col.Count)
	}
}

func TestTransactionUseCase_CreateELedger(t *testing.T) {
	s, c := newStore(t)
	uc := usecase.NewTransactionUseCase(memory.NewTransactionRepository(s))
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateTransactionRequest{
		StoreID:     "1",
		Type:        "RECEITA",
		Amount:      decimal.RequireFromString("99.90"),
		Method:      "cartao",
		Description: "Venda avulsa",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "CARTAO", created.Method)
	assert.True(t, created.CreatedAt.Equal(c.t))

	ledger, err := uc.Ledger(ctx, "1")
	require.NoError(t, err)
	require.Len(t, ledger.Entries, 3)
	assert.Equal(t, created.ID, ledger.Entries[0].ID)
	assert.Equal(t, "419.9", ledger.Income.String())
	assert.Equal(t, "150", ledger.Expense.String())
	assert.Equal(t, "269.9", ledger.Balance.String())
}

func TestTransactionUseCase_CreateValidaEntrada(t *testing.T) {
	s, _ := newStore(t)
	uc := usecase.NewTransactionUseCase(memory.NewTransactionRepository(s))
	ctx := context.Background()

	cases := []dto.CreateTransactionRequest{
		{StoreID: "1", Type: "RECEITA", Amount: decimal.Zero, Method: "PIX"},
		{StoreID: "1", Type: "ESTORNO", Amount: decimal.NewFromInt(10), Method: "PIX"},
		{StoreID: "1", Type: "DESPESA", Amount: decimal.NewFromInt(10), Method: "BOLETO"},
	}
	for _, in := range cases {
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCourierUseCase_FluxoCompleto(t *testing.T) {
	s, _ := newStore(t)
	uc := usecase.NewCourierUseCase(memory.NewCourierOrderRepository(s))
	ctx := context.Background()

	accepted, err := uc.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, accepted.OTP)
	assert.Equal(t, "4590", *accepted.OTP)

	collected, err := uc.SetStatus(ctx, "1", "COLETADO")
	require.NoError(t, err)
	assert.Equal(t, "COLETADO", collected.Status)
	assert.Nil(t, collected.OTP)
	assert.Equal(t, accepted.DriverName, collected.DriverName)
	assert.Equal(t, accepted.EstimatedArrival, collected.EstimatedArrival)

	delivered, err := uc.Advance(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "ENTREGUE", delivered.Status)
	assert.False(t, delivered.CanAdvance)

	_, err = uc.SetStatus(ctx, "1", "ACEITO")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = uc.Cancel(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCourierUseCase_CancelPendente(t *testing.T) {
	s, _ := newStore(t)
	uc := usecase.NewCourierUseCase(memory.NewCourierOrderRepository(s))
	ctx := context.Background()

	got, err := uc.Cancel(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "CANCELADO", got.Status)

	_, err = uc.SetStatus(ctx, "2", "VOANDO")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	missing, err := uc.Advance(ctx, "99")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserUseCase_ListEGet(t *testing.T) {
	s, _ := newStore(t)
	uc := usecase.NewUserUseCase(memory.NewUserRepository(s))
	ctx := context.Background()

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "Administrador", list[0].RoleLabel)
	assert.Equal(t, "E", list[0].Initial)

	u, err := uc.GetByID(ctx, "u4")
	require.NoError(t, err)
	assert.Equal(t, "courier", u.Role)

	missing, err := uc.GetByID(ctx, "u9")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
