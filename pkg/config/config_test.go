package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/edinho-pneus-api/pkg/config"
)

func TestLoad_Padroes(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "edinho-pneus-manager", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 480, cfg.JWT.Expiration)
	assert.Equal(t, "1", cfg.Store.DefaultID)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, 3, cfg.Dashboard.LowStockThreshold)
	assert.True(t, cfg.POS.DecrementStock)
	assert.Equal(t, "MISTO", cfg.POS.PaymentMethod)
	assert.NotNil(t, cfg.Dashboard.Location())
}

func TestLoad_Ambiente(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_SEED", "false")
	t.Setenv("POS_DECREMENT_STOCK", "0")
	t.Setenv("POS_PAYMENT_METHOD", "pix")
	t.Setenv("DASHBOARD_LOW_STOCK_THRESHOLD", "5")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Store.Seed)
	assert.False(t, cfg.POS.DecrementStock)
	assert.Equal(t, "PIX", cfg.POS.PaymentMethod)
	assert.Equal(t, 5, cfg.Dashboard.LowStockThreshold)
}

func TestLoad_PortaInvalida(t *testing.T) {
	t.Setenv("HTTP_PORT", "70000")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_LimiarZeroAceito(t *testing.T) {
	t.Setenv("DASHBOARD_LOW_STOCK_THRESHOLD", "0")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Dashboard.LowStockThreshold)

	t.Setenv("DASHBOARD_LOW_STOCK_THRESHOLD", "-2")
	_, err = config.Load()
	assert.Error(t, err)
}

func TestDashboardConfig_LocationInvalida(t *testing.T) {
	loc := config.DashboardConfig{Timezone: "Marte/Olympus"}.Location()
	assert.Equal(t, "BRT", loc.String())
}
