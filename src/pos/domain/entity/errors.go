package entity

import "errors"

// Errores de dominio de la terminal POS
var (
	ErrInvalidLevel        = errors.New("invalid customization level")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrLineItemNotFound    = errors.New("line item not found")
	ErrInvalidDirection    = errors.New("direction must be increment or decrement")
	ErrCardDetailsRequired = errors.New("card company and last four digits are required")
	ErrSubmissionInFlight  = errors.New("an order submission is already in flight")
	ErrInvalidTransition   = errors.New("settlement action not allowed in current state")
)
