// Package analytics contém os casos de uso de indicadores do painel da loja.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/edinho-pneus-api/internal/application/dto"
	"github.com/jhoicas/edinho-pneus-api/internal/application/usecase"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/repository"
)

const (
	serviceMixLimit    = 6 // fatias do gráfico de mix de serviços
	serviceMixFallback = "Outros"
	defaultLowStock    = 3
)

// DashboardConfig parâmetros do painel.
type DashboardConfig struct {
	// LowStockThreshold estoque <= limiar conta como baixo. Negativo usa 3; zero é aceito.
	LowStockThreshold int
	Location          *time.Location
}

// DashboardUseCase calcula os indicadores do painel a partir das coleções do store.
//
// Quatro leituras em paralelo: lançamentos, O.S., produtos e pedidos de courier.
type DashboardUseCase struct {
	transactions  repository.TransactionRepository
	serviceOrders repository.ServiceOrderRepository
	products      repository.ProductRepository
	couriers      repository.CourierOrderRepository
	cfg           DashboardConfig
	now           func() time.Time
}

// NewDashboardUseCase constrói o caso de uso. now pode ser nil (time.Now).
func NewDashboardUseCase(
	transactions repository.TransactionRepository,
	serviceOrders repository.ServiceOrderRepository,
	products repository.ProductRepository,
	couriers repository.CourierOrderRepository,
	cfg DashboardConfig,
	now func() time.Time,
) *DashboardUseCase {
	if cfg.LowStockThreshold < 0 {
		cfg.LowStockThreshold = defaultLowStock
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{
		transactions:  transactions,
		serviceOrders: serviceOrders,
		products:      products,
		couriers:      couriers,
		cfg:           cfg,
		now:           now,
	}
}

// GetSummary monta o DashboardSummaryDTO da loja.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, storeID string) (*dto.DashboardSummaryDTO, error) {
	filter := repository.StoreFilter{StoreID: storeID}
	now := uc.now().In(uc.cfg.Location)

	// Hoje: 00:00 até 00:00 do dia seguinte, no fuso configurado.
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.cfg.Location)
	todayEnd := todayStart.AddDate(0, 0, 1)

	type txResult struct {
		rows []entity.Transaction
		err  error
	}
	type soResult struct {
		rows []entity.ServiceOrder
		err  error
	}
	type productResult struct {
		rows []entity.Product
		err  error
	}
	type courierResult struct {
		rows []entity.CourierOrder
		err  error
	}

	txCh := make(chan txResult, 1)
	soCh := make(chan soResult, 1)
	prCh := make(chan productResult, 1)
	coCh := make(chan courierResult, 1)

	go func() {
		rows, err := uc.transactions.List(ctx, filter)
		txCh <- txResult{rows, err}
	}()
	go func() {
		rows, err := uc.serviceOrders.List(ctx, filter)
		soCh <- soResult{rows, err}
	}()
	go func() {
		rows, err := uc.products.List(ctx, filter)
		prCh <- productResult{rows, err}
	}()
	go func() {
		rows, err := uc.couriers.List(ctx, filter)
		coCh <- courierResult{rows, err}
	}()

	txs := <-txCh
	sos := <-soCh
	prs := <-prCh
	cos := <-coCh

	if txs.err != nil {
		return nil, fmt.Errorf("dashboard: lançamentos: %w", txs.err)
	}
	if sos.err != nil {
		return nil, fmt.Errorf("dashboard: ordens de serviço: %w", sos.err)
	}
	if prs.err != nil {
		return nil, fmt.Errorf("dashboard: produtos: %w", prs.err)
	}
	if cos.err != nil {
		return nil, fmt.Errorf("dashboard: courier: %w", cos.err)
	}

	revenueTotal, revenueToday, expenseTotal := decimal.Zero, decimal.Zero, decimal.Zero
	for _, t := range txs.rows {
		switch t.Type {
		case entity.TransactionReceita:
			revenueTotal = revenueTotal.Add(t.Amount)
			if !t.CreatedAt.Before(todayStart) && t.CreatedAt.Before(todayEnd) {
				revenueToday = revenueToday.Add(t.Amount)
			}
		case entity.TransactionDespesa:
			expenseTotal = expenseTotal.Add(t.Amount)
		}
	}

	lowStock := make([]entity.Product, 0)
	for _, p := range prs.rows {
		if p.Stock <= uc.cfg.LowStockThreshold {
			lowStock = append(lowStock, p)
		}
	}

	pending := 0
	for _, co := range cos.rows {
		if !co.Status.Terminal() {
			pending++
		}
	}

	return &dto.DashboardSummaryDTO{
		StoreID:           storeID,
		RevenueToday:      revenueToday.Round(2),
		RevenueTotal:      revenueTotal.Round(2),
		ExpenseTotal:      expenseTotal.Round(2),
		ActiveServices:    countActive(sos.rows),
		PendingCouriers:   pending,
		LowStockThreshold: uc.cfg.LowStockThreshold,
		LowStockCount:     len(lowStock),
		LowStockProducts:  usecase.ToProductResponses(lowStock),
		ServiceMix:        serviceMix(sos.rows),
		DateLabel:         monthLabel(now),
	}, nil
}

// countActive O.S. que ainda não foram entregues.
func countActive(rows []entity.ServiceOrder) int {
	n := 0
	for _, so := range rows {
		if so.Status != entity.ServiceOrderEntregue {
			n++
		}
	}
	return n
}

// serviceMix contagem por descrição de serviço, na ordem da primeira ocorrência.
func serviceMix(rows []entity.ServiceOrder) []dto.ServiceMixDTO {
	mix := make([]dto.ServiceMixDTO, 0, serviceMixLimit)
	index := make(map[string]int, len(rows))
	for _, so := range rows {
		key := so.ServiceDescription
		if key == "" {
			key = serviceMixFallback
		}
		if i, ok := index[key]; ok {
			mix[i].Value++
			continue
		}
		index[key] = len(mix)
		mix = append(mix, dto.ServiceMixDTO{Name: key, Value: 1})
	}
	if len(mix) > serviceMixLimit {
		mix = mix[:serviceMixLimit]
	}
	return mix
}

// monthLabel rótulo legível do mês, ex: "Março 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
