package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOrderStatus etapa da O.S. no quadro Kanban.
type ServiceOrderStatus string

const (
	ServiceOrderAguardando ServiceOrderStatus = "AGUARDANDO"
	ServiceOrderEmServico  ServiceOrderStatus = "EM_SERVICO"
	ServiceOrderFinalizado ServiceOrderStatus = "FINALIZADO"
	ServiceOrderEntregue   ServiceOrderStatus = "ENTREGUE"
)

// ServiceOrderPipeline ordem das colunas do Kanban.
var ServiceOrderPipeline = []ServiceOrderStatus{
	ServiceOrderAguardando,
	ServiceOrderEmServico,
	ServiceOrderFinalizado,
	ServiceOrderEntregue,
}

// ParseServiceOrderStatus converte texto em status; ok=false se desconhecido.
func ParseServiceOrderStatus(s string) (ServiceOrderStatus, bool) {
	st := ServiceOrderStatus(s)
	return st, st.Valid()
}

// Valid indica se o status pertence ao pipeline.
func (s ServiceOrderStatus) Valid() bool {
	return s.index() >= 0
}

func (s ServiceOrderStatus) index() int {
	for i, st := range ServiceOrderPipeline {
		if st == s {
			return i
		}
	}
	return -1
}

// Next etapa seguinte; ok=false em ENTREGUE.
func (s ServiceOrderStatus) Next() (ServiceOrderStatus, bool) {
	i := s.index()
	if i < 0 || i == len(ServiceOrderPipeline)-1 {
		return s, false
	}
	return ServiceOrderPipeline[i+1], true
}

// Prev etapa anterior ("voltar"); ok=false em AGUARDANDO.
func (s ServiceOrderStatus) Prev() (ServiceOrderStatus, bool) {
	i := s.index()
	if i <= 0 {
		return s, false
	}
	return ServiceOrderPipeline[i-1], true
}

// CanMoveTo só aceita a etapa imediatamente vizinha, nos dois sentidos.
func (s ServiceOrderStatus) CanMoveTo(target ServiceOrderStatus) bool {
	if next, ok := s.Next(); ok && next == target {
		return true
	}
	if prev, ok := s.Prev(); ok && prev == target {
		return true
	}
	return false
}

// Priority prioridade da O.S.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid indica se a prioridade é conhecida.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Label rótulo exibido no cartão do Kanban.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "Urgente"
	case PriorityMedium:
		return "Normal"
	}
	return "Baixa"
}

// ServiceOrder representa uma ordem de serviço (O.S.) de oficina.
// UpdatedAt é renovado a cada escrita de status.
type ServiceOrder struct {
	ID                 string
	StoreID            string
	Status             ServiceOrderStatus
	CustomerName       string
	Plate              string
	AssignedTo         *string
	TotalEstimated     decimal.Decimal
	UpdatedAt          time.Time
	Vehicle            string
	ServiceDescription string
	Priority           Priority
}
