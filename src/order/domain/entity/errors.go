package entity

import "errors"

// Errores de dominio de ventas
var (
	ErrPaymentRequired   = errors.New("payment label is required")
	ErrNegativeTotal     = errors.New("order total must not be negative")
	ErrSaleNotFound      = errors.New("sale not found")
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidHourFormat = errors.New("invalid hour format, expected HH00")
	ErrInvalidDateRange  = errors.New("secondDate is before firstDate")
)
