package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resposta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	StoreID string `json:"store_id"`

	// RevenueToday soma das RECEITAS do dia corrente (fuso configurado).
	RevenueToday decimal.Decimal `json:"revenue_today"`
	// RevenueTotal soma de todas as RECEITAS do livro (o antigo "receita hoje").
	RevenueTotal decimal.Decimal `json:"revenue_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`

	ActiveServices  int `json:"active_services"`
	PendingCouriers int `json:"pending_couriers"`

	LowStockThreshold int               `json:"low_stock_threshold"`
	LowStockCount     int               `json:"low_stock_count"`
	LowStockProducts  []ProductResponse `json:"low_stock_products"`

	ServiceMix []ServiceMixDTO `json:"service_mix"`
	DateLabel  string          `json:"date_label"`
}

// ServiceMixDTO quantidade de O.S. por descrição de serviço.
type ServiceMixDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
