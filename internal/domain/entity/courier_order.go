package entity

import "time"

// CourierStatus etapa de uma transferência entre lojas.
type CourierStatus string

const (
	CourierPendente  CourierStatus = "PENDENTE"
	CourierAceito    CourierStatus = "ACEITO"
	CourierColetado  CourierStatus = "COLETADO"
	CourierEntregue  CourierStatus = "ENTREGUE"
	CourierCancelado CourierStatus = "CANCELADO"
)

// courierFlow sequência linear de avanço; CANCELADO fica fora dela.
var courierFlow = []CourierStatus{CourierPendente, CourierAceito, CourierColetado, CourierEntregue}

// ParseCourierStatus converte texto em status; ok=false se desconhecido.
func ParseCourierStatus(s string) (CourierStatus, bool) {
	st := CourierStatus(s)
	return st, st.Valid()
}

// Valid indica se o status é conhecido.
func (s CourierStatus) Valid() bool {
	return s == CourierCancelado || s.index() >= 0
}

func (s CourierStatus) index() int {
	for i, st := range courierFlow {
		if st == s {
			return i
		}
	}
	return -1
}

// Terminal ENTREGUE e CANCELADO não aceitam novas transições.
func (s CourierStatus) Terminal() bool {
	return s == CourierEntregue || s == CourierCancelado
}

// Next próxima etapa da entrega; ok=false em estados terminais.
func (s CourierStatus) Next() (CourierStatus, bool) {
	if s.Terminal() {
		return s, false
	}
	i := s.index()
	if i < 0 {
		return s, false
	}
	return courierFlow[i+1], true
}

// CanMoveTo avanço de uma etapa ou cancelamento a partir de qualquer estado não terminal.
func (s CourierStatus) CanMoveTo(target CourierStatus) bool {
	if s.Terminal() {
		return false
	}
	if target == CourierCancelado {
		return true
	}
	next, ok := s.Next()
	return ok && next == target
}

// CourierOrder pedido de transferência entre lojas (motoboy).
// OTP é gerado no seed, nunca regenerado nem validado.
type CourierOrder struct {
	ID               string
	StoreID          string
	FromStoreID      string
	ToStoreID        string
	Status           CourierStatus
	OTP              *string
	CreatedAt        time.Time
	Description      string
	DriverName       *string
	EstimatedArrival *time.Time
}

// VisibleOTP o código de retirada só é exibido enquanto o pedido está ACEITO.
func (c CourierOrder) VisibleOTP() *string {
	if c.Status != CourierAceito {
		return nil
	}
	return c.OTP
}
