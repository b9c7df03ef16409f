package request

// RestockReportRequest cuerpo de POST /restockReport
type RestockReportRequest struct {
	Amount int `json:"amount" binding:"gte=0"`
}

// DateRangeRequest cuerpo de POST /salesReport y POST /excessReport.
// Fechas en formato YYYY-MM-DD, rango inclusivo.
type DateRangeRequest struct {
	FirstDate  string `json:"firstDate" binding:"required"`
	SecondDate string `json:"secondDate" binding:"required"`
}
