package request

import "github.com/shopspring/decimal"

// AddInventoryItemRequest request para agregar un ingrediente al inventario
type AddInventoryItemRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Quantity int             `json:"quantity" binding:"gte=0"`
}

// DeleteInventoryItemRequest request para eliminar un ingrediente
type DeleteInventoryItemRequest struct {
	ID int `json:"id" binding:"required"`
}

// UpdateInventoryItemNameRequest request para renombrar un ingrediente
type UpdateInventoryItemNameRequest struct {
	ID   int    `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// UpdateInventoryItemQuantityRequest request para ajustar la cantidad
type UpdateInventoryItemQuantityRequest struct {
	ID       int `json:"id" binding:"required"`
	Quantity int `json:"quantity" binding:"gte=0"`
}

// UpdateInventoryItemPriceRequest request para cambiar el precio
type UpdateInventoryItemPriceRequest struct {
	ID    int             `json:"id" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}
