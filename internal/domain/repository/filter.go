package repository

// StoreFilter filtro de loja para listagens. StoreID vazio = sem filtro.
type StoreFilter struct {
	StoreID string
}

// Match indica se o registro da loja storeID passa pelo filtro.
func (f StoreFilter) Match(storeID string) bool {
	return f.StoreID == "" || f.StoreID == storeID
}
