package pos

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/edinho-pneus-api/internal/domain"
	"github.com/jhoicas/edinho-pneus-api/internal/domain/entity"
)

// CartItem produto no carrinho com a quantidade escolhida.
// O preço é o SuggestedPrice do momento em que o item entrou.
type CartItem struct {
	Product  entity.Product
	Quantity int
}

// Subtotal preço unitário vezes quantidade.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.SuggestedPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart carrinho do PDV. Cada produto aparece uma vez; quantidades são sempre >= 1.
// Não é seguro para uso concorrente: cada venda tem o seu.
type Cart struct {
	items []CartItem
}

// NewCart carrinho vazio.
func NewCart() *Cart {
	return &Cart{}
}

// Add adiciona uma unidade; se o produto já estiver no carrinho, soma 1.
func (c *Cart) Add(p entity.Product) error {
	return c.AddQuantity(p, 1)
}

// AddQuantity adiciona qty unidades do produto. Só produtos APROVADO entram.
func (c *Cart) AddQuantity(p entity.Product, qty int) error {
	if !p.Sellable() {
		return domain.ErrProductNotApproved
	}
	if qty < 1 {
		return domain.ErrInvalidInput
	}
	if i := c.indexOf(p.ID); i >= 0 {
		c.items[i].Quantity += qty
		return nil
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: qty})
	return nil
}

// Remove tira o produto do carrinho. Ignora IDs ausentes.
func (c *Cart) Remove(productID string) {
	if i := c.indexOf(productID); i >= 0 {
		c.items = append(c.items[:i:i], c.items[i+1:]...)
	}
}

// ChangeQuantity soma delta à quantidade, com piso em 1.
func (c *Cart) ChangeQuantity(productID string, delta int) {
	if i := c.indexOf(productID); i >= 0 {
		c.items[i].Quantity = max(1, c.items[i].Quantity+delta)
	}
}

// Items cópia dos itens na ordem de inclusão.
func (c *Cart) Items() []CartItem {
	return append([]CartItem(nil), c.items...)
}

// Count soma das quantidades.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Total soma dos subtotais, arredondada a 2 casas.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total.Round(2)
}

// Empty indica carrinho sem itens.
func (c *Cart) Empty() bool { return len(c.items) == 0 }

// Clear esvazia o carrinho.
func (c *Cart) Clear() { c.items = nil }

func (c *Cart) indexOf(productID string) int {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}
