package request

import "github.com/shopspring/decimal"

// SubmitOrderRequest cuerpo de POST /submitOrder. Los campos derivados
// (semana, fecha, hora) los calcula la terminal al momento del cobro; el
// backend los valida y los persiste tal cual.
type SubmitOrderRequest struct {
	Cashier     int             `json:"cashier" binding:"gte=0"`
	SaleWeek    int             `json:"sale_week" binding:"required,gte=1,lte=53"`
	SaleDate    string          `json:"sale_date" binding:"required"`
	CurrentHour string          `json:"current_hour" binding:"required"`
	Payment     string          `json:"payment" binding:"required"`
	Cart        string          `json:"cart"`
	OrderTotal  decimal.Decimal `json:"order_total"`
}
