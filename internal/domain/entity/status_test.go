package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
)

func TestServiceOrderStatus_NextPrev(t *testing.T) {
	next, ok := entity.ServiceOrderAguardando.Next()
	assert.True(t, ok)
	assert.Equal(t, entity.ServiceOrderEmServico, next)

	_, ok = entity.ServiceOrderAguardando.Prev()
	assert.False(t, ok, "AGUARDANDO não tem etapa anterior")

	_, ok = entity.ServiceOrderEntregue.Next()
	assert.False(t, ok, "ENTREGUE não tem etapa seguinte")

	prev, ok := entity.ServiceOrderEntregue.Prev()
	assert.True(t, ok)
	assert.Equal(t, entity.ServiceOrderFinalizado, prev)
}

func TestServiceOrderStatus_CanMoveTo(t *testing.T) {
	cases := []struct {
		from, to entity.ServiceOrderStatus
		want     bool
	}{
		{entity.ServiceOrderAguardando, entity.ServiceOrderEmServico, true},
		{entity.ServiceOrderEmServico, entity.ServiceOrderAguardando, true},
		{entity.ServiceOrderAguardando, entity.ServiceOrderFinalizado, false},
		{entity.ServiceOrderEntregue, entity.ServiceOrderAguardando, false},
		{entity.ServiceOrderFinalizado, entity.ServiceOrderFinalizado, false},
		{entity.ServiceOrderFinalizado, "QUALQUER", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanMoveTo(tc.to), "%s → %s", tc.from, tc.to)
	}
}

func TestParseServiceOrderStatus(t *testing.T) {
	st, ok := entity.ParseServiceOrderStatus("EM_SERVICO")
	assert.True(t, ok)
	assert.Equal(t, entity.ServiceOrderEmServico, st)

	_, ok = entity.ParseServiceOrderStatus("em_servico")
	assert.False(t, ok)
}

func TestProductStatus_OneWay(t *testing.T) {
	assert.True(t, entity.ProductEmConferencia.CanMoveTo(entity.ProductAprovado))
	assert.True(t, entity.ProductAprovado.CanMoveTo(entity.ProductAprovado), "aprovar de novo é idempotente")
	assert.False(t, entity.ProductAprovado.CanMoveTo(entity.ProductEmConferencia))
}

func TestCourierStatus_Flow(t *testing.T) {
	next, ok := entity.CourierAceito.Next()
	assert.True(t, ok)
	assert.Equal(t, entity.CourierColetado, next)

	next, ok = entity.CourierColetado.Next()
	assert.True(t, ok)
	assert.Equal(t, entity.CourierEntregue, next)

	_, ok = entity.CourierEntregue.Next()
	assert.False(t, ok)
	_, ok = entity.CourierCancelado.Next()
	assert.False(t, ok)

	assert.True(t, entity.CourierPendente.CanMoveTo(entity.CourierCancelado))
	assert.True(t, entity.CourierColetado.CanMoveTo(entity.CourierCancelado))
	assert.False(t, entity.CourierEntregue.CanMoveTo(entity.CourierCancelado))
	assert.False(t, entity.CourierPendente.CanMoveTo(entity.CourierColetado))
	assert.False(t, entity.CourierColetado.CanMoveTo(entity.CourierAceito))
}

func TestCourierOrder_VisibleOTP(t *testing.T) {
	otp := "4590"
	co := entity.CourierOrder{Status: entity.CourierAceito, OTP: &otp}
	if assert.NotNil(t, co.VisibleOTP()) {
		assert.Equal(t, "4590", *co.VisibleOTP())
	}

	co.Status = entity.CourierColetado
	assert.Nil(t, co.VisibleOTP(), "OTP só aparece enquanto ACEITO")
	assert.NotNil(t, co.OTP, "o campo em si não é apagado")
}

func TestRoleAndPriorityLabels(t *testing.T) {
	assert.Equal(t, "Mecânico", entity.RoleMechanic.Label())
	assert.Equal(t, "Urgente", entity.PriorityHigh.Label())
	assert.Equal(t, "Baixa", entity.PriorityLow.Label())
	assert.False(t, entity.Role("gerente").Valid())
}

func TestSumLedger(t *testing.T) {
	txs := []entity.Transaction{
		{Type: entity.TransactionReceita, Amount: decimal.RequireFromString("250")},
		{Type: entity.TransactionDespesa, Amount: decimal.RequireFromString("150")},
		{Type: entity.TransactionReceita, Amount: decimal.RequireFromString("169.90")},
	}
	got := entity.SumLedger(txs)
	assert.Equal(t, "419.9", got.Income.String())
	assert.Equal(t, "150", got.Expense.String())
	assert.Equal(t, "269.9", got.Balance.String())

	empty := entity.SumLedger(nil)
	assert.True(t, empty.Balance.IsZero())
}
