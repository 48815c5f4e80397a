package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoveServiceOrderRequest entrada de moveServiceOrder.
type MoveServiceOrderRequest struct {
	Status string `json:"status"`
}

// ServiceOrderResponse saída de uma O.S.
type ServiceOrderResponse struct {
	ID                 string          `json:"id"`
	StoreID            string          `json:"store_id"`
	Status             string          `json:"status"`
	CustomerName       string          `json:"customer_name"`
	Plate              string          `json:"plate"`
	AssignedTo         *string         `json:"assigned_to,omitempty"`
	TotalEstimated     decimal.Decimal `json:"total_estimated"`
	UpdatedAt          time.Time       `json:"updated_at"`
	Vehicle            string          `json:"vehicle"`
	ServiceDescription string          `json:"service_description"`
	Priority           string          `json:"priority"`
	PriorityLabel      string          `json:"priority_label"`
}

// KanbanCardDTO cartão do quadro com os controles habilitados.
type KanbanCardDTO struct {
	ServiceOrderResponse
	CanAdvance bool `json:"can_advance"`
	CanBack    bool `json:"can_back"`
}

// KanbanColumnDTO coluna do quadro (uma por etapa, na ordem do pipeline).
type KanbanColumnDTO struct {
	Status string          `json:"status"`
	Label  string          `json:"label"`
	Count  int             `json:"count"`
	Cards  []KanbanCardDTO `json:"cards"`
}

// KanbanBoardDTO resposta de GET /api/service-orders/board.
type KanbanBoardDTO struct {
	StoreID string            `json:"store_id,omitempty"`
	Columns []KanbanColumnDTO `json:"columns"`
}
