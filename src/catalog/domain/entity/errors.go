package entity

import "errors"

// Errores de dominio del catálogo
var (
	ErrMenuItemNotFound      = errors.New("menu item not found")
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrMenuIDRequired        = errors.New("menu item id is required")
	ErrNameRequired          = errors.New("name is required")
	ErrInvalidPrice          = errors.New("price must not be negative")
	ErrInvalidQuantity       = errors.New("quantity must not be negative")
)
