package entity

import (
	"github.com/shopspring/decimal"
)

// InventoryItem representa un ingrediente del inventario
type InventoryItem struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// NewInventoryItem crea un ingrediente validando en el borde de deserialización
func NewInventoryItem(name string, price decimal.Decimal, quantity int) (*InventoryItem, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	return &InventoryItem{
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}, nil
}
