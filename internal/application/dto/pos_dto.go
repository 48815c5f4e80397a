package dto

import "github.com/shopspring/decimal"

// CheckoutItemRequest linha do carrinho enviada pelo PDV.
type CheckoutItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest corpo de POST /api/pos/checkout.
type CheckoutRequest struct {
	Items  []CheckoutItemRequest `json:"items"`
	Method string                `json:"method"`
}

// CartLineDTO linha do carrinho com subtotal.
type CartLineDTO struct {
	ProductID string          `json:"product_id"`
	LabelID   string          `json:"label_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CheckoutResponse venda registrada.
type CheckoutResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Lines       []CartLineDTO       `json:"lines"`
	ItemCount   int                 `json:"item_count"`
	Total       decimal.Decimal     `json:"total"`
}

// CatalogResponse produtos vendáveis filtrados.
type CatalogResponse struct {
	Category string            `json:"category"`
	Search   string            `json:"search,omitempty"`
	Items    []ProductResponse `json:"items"`
	Total    int               `json:"total"`
}
