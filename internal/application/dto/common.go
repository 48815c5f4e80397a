package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListResponse envelope das listagens (sem paginação: a coleção inteira na ordem do store).
type ListResponse[T any] struct {
	Items   []T    `json:"items"`
	Total   int    `json:"total"`
	StoreID string `json:"store_id,omitempty"`
}

// NewList monta o envelope garantindo items=[] em vez de null.
func NewList[T any](items []T, storeID string) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items), StoreID: storeID}
}
