package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada de addProduct (todos os campos menos o id).
type CreateProductRequest struct {
	StoreID        string          `json:"store_id"`
	LabelID        string          `json:"label_id"`
	Name           string          `json:"name"`
	Condition      string          `json:"condition"`
	Size           string          `json:"size"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	Status         string          `json:"status"`
	Stock          int             `json:"stock"`
	Category       string          `json:"category"`
}

// UpdateProductRequest atualização parcial. Status não entra aqui: use approve.
type UpdateProductRequest struct {
	LabelID        *string          `json:"label_id"`
	Name           *string          `json:"name"`
	Condition      *string          `json:"condition"`
	Size           *string          `json:"size"`
	CostPrice      *decimal.Decimal `json:"cost_price"`
	SuggestedPrice *decimal.Decimal `json:"suggested_price"`
	Stock          *int             `json:"stock"`
	Category       *string          `json:"category"`
}

// UpdateStockRequest entrada de updateProductStock. Sem verificação de limites.
type UpdateStockRequest struct {
	Stock *int `json:"stock"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID             string          `json:"id"`
	StoreID        string          `json:"store_id"`
	LabelID        string          `json:"label_id"`
	Name           string          `json:"name"`
	Condition      string          `json:"condition"`
	Size           string          `json:"size"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	Status         string          `json:"status"`
	Stock          int             `json:"stock"`
	Category       string          `json:"category"`
}
