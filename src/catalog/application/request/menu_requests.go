package request

import "github.com/shopspring/decimal"

// AddMenuDrinkRequest request para agregar una bebida al menú
type AddMenuDrinkRequest struct {
	ID          string          `json:"id" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Ingredients string          `json:"ingredients"`
}

// DeleteMenuDrinkRequest request para eliminar una bebida
type DeleteMenuDrinkRequest struct {
	ID string `json:"id" binding:"required"`
}

// UpdateMenuDrinkIDRequest request para cambiar el id de una bebida
type UpdateMenuDrinkIDRequest struct {
	ID    string `json:"id" binding:"required"`
	NewID string `json:"newID" binding:"required"`
}

// UpdateMenuDrinkNameRequest request para renombrar una bebida
type UpdateMenuDrinkNameRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// UpdateMenuDrinkPriceRequest request para cambiar el precio de una bebida
type UpdateMenuDrinkPriceRequest struct {
	ID    string          `json:"id" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

// UpdateMenuDrinkIngredientsRequest request para cambiar los ingredientes.
// Ingredients llega en el formato histórico "11\12\13".
type UpdateMenuDrinkIngredientsRequest struct {
	ID          string `json:"id" binding:"required"`
	Ingredients string `json:"ingredients"`
}
