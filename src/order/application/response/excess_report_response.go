package response

import "github.com/shopspring/decimal"

// ExcessReportItem un ingrediente cuyo uso en el período quedó por debajo
// del 10% de su cantidad actual en inventario
type ExcessReportItem struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Usage    int             `json:"usage"`
}

// ExcessReportResponse respuesta de POST /excessReport
type ExcessReportResponse struct {
	FirstDate  string             `json:"first_date"`
	SecondDate string             `json:"second_date"`
	Items      []ExcessReportItem `json:"items"`
	TotalCount int                `json:"total_count"`
}
