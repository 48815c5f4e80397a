package dto

import "time"

// SetCourierStatusRequest entrada de setCourierStatus.
type SetCourierStatusRequest struct {
	Status string `json:"status"`
}

// CourierOrderResponse saída de um pedido de courier.
// OTP só é preenchido enquanto o pedido está ACEITO.
type CourierOrderResponse struct {
	ID               string     `json:"id"`
	StoreID          string     `json:"store_id"`
	FromStoreID      string     `json:"from_store_id"`
	ToStoreID        string     `json:"to_store_id"`
	Status           string     `json:"status"`
	OTP              *string    `json:"otp,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	Description      string     `json:"description"`
	DriverName       *string    `json:"driver_name,omitempty"`
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`
	CanAdvance       bool       `json:"can_advance"`
}
