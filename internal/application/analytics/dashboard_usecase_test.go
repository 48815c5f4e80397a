package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/edinho-pneus-api/internal/application/analytics"
	"github.com/jhoicas/edinho-pneus-api/internal/infrastructure/memory"
)

func newDashboard(t *testing.T, now *time.Time, threshold int) *analytics.DashboardUseCase {
	t.Helper()
	clock := func() time.Time { return *now }
	s := memory.NewStore(memory.WithClock(clock))
	memory.Seed(s, memory.DefaultStoreID)
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.FixedZone("BRT", -3*60*60)
	}
	return analytics.NewDashboardUseCase(
		memory.NewTransactionRepository(s),
		memory.NewServiceOrderRepository(s),
		memory.NewProductRepository(s),
		memory.NewCourierOrderRepository(s),
		analytics.DashboardConfig{LowStockThreshold: threshold, Location: loc},
		clock,
	)
}

func TestDashboard_SummaryComDadosDeExemplo(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	uc := newDashboard(t, &now, 3)

	got, err := uc.GetSummary(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "320", got.RevenueTotal.String())
	assert.Equal(t, "320", got.RevenueToday.String())
	assert.Equal(t, "150", got.ExpenseTotal.String())
	assert.Equal(t, 3, got.ActiveServices)
	assert.Equal(t, 2, got.PendingCouriers)
	assert.Equal(t, 1, got.LowStockCount)
	require.Len(t, got.LowStockProducts, 1)
	assert.Equal(t, "P-0002", got.LowStockProducts[0].LabelID)
	assert.Len(t, got.ServiceMix, 3)
	assert.Equal(t, "Março 2026", got.DateLabel)
}

func TestDashboard_ReceitaHojeRespeitaODia(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	uc := newDashboard(t, &now, 3)

	now = now.Add(24 * time.Hour)
	got, err := uc.GetSummary(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, got.RevenueToday.IsZero())
	assert.Equal(t, "320", got.RevenueTotal.String())
}

func TestDashboard_LimiarConfiguravel(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	uc := newDashboard(t, &now, 10)

	got, err := uc.GetSummary(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 10, got.LowStockThreshold)
	assert.Equal(t, 2, got.LowStockCount)
}

func TestDashboard_LimiarZeroENegativo(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	zero, err := newDashboard(t, &now, 0).GetSummary(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 0, zero.LowStockThreshold)
	assert.Equal(t, 0, zero.LowStockCount)

	negative, err := newDashboard(t, &now, -1).GetSummary(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 3, negative.LowStockThreshold)
	assert.Equal(t, 1, negative.LowStockCount)
}

func TestDashboard_LojaSemDados(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	uc := newDashboard(t, &now, 3)

	got, err := uc.GetSummary(context.Background(), "99")
	require.NoError(t, err)
	assert.True(t, got.RevenueTotal.IsZero())
	assert.Zero(t, got.ActiveServices)
	assert.Zero(t, got.LowStockCount)
	assert.NotNil(t, got.LowStockProducts)
	assert.Empty(t, got.ServiceMix)
}
