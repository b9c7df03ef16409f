package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yusaCS/POS-system-project/src/order/application/request"
	"github.com/yusaCS/POS-system-project/src/order/application/usecase"
	"github.com/yusaCS/POS-system-project/src/order/domain/entity"
)

// ReportController maneja las peticiones HTTP para reportes de manager
type ReportController struct {
	restockReportUC *usecase.RestockReportUseCase
	salesReportUC   *usecase.SalesReportUseCase
	excessReportUC  *usecase.ExcessReportUseCase
}

// NewReportController crea una nueva instancia del controlador
func NewReportController(
	restockReportUC *usecase.RestockReportUseCase,
	salesReportUC *usecase.SalesReportUseCase,
	excessReportUC *usecase.ExcessReportUseCase,
) *ReportController {
	return &ReportController{
		restockReportUC: restockReportUC,
		salesReportUC:   salesReportUC,
		excessReportUC:  excessReportUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReportController) RegisterRoutes(router *gin.Engine) {
	router.POST("/restockReport", c.RestockReport)
	router.POST("/salesReport", c.SalesReport)
	router.POST("/excessReport", c.ExcessReport)

	log.Println("Rutas Report disponibles:")
	log.Println("  POST   /restockReport")
	log.Println("  POST   /salesReport")
	log.Println("  POST   /excessReport")
}

// RestockReport retorna los ingredientes con cantidad <= amount
func (c *ReportController) RestockReport(ctx *gin.Context) {
	// ========================================================================
	// PASO 1: Validar body (amount entero no negativo)
	// ========================================================================
	var req request.RestockReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	// ========================================================================
	// PASO 2: Ejecutar use case
	// ========================================================================
	items, err := c.restockReportUC.Execute(ctx.Request.Context(), req.Amount)
	if err != nil {
		log.Printf("Error generating restock report: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	// ========================================================================
	// PASO 3: Responder exitosamente
	// ========================================================================
	ctx.JSON(http.StatusOK, items)
}

// SalesReport retorna las ventas del rango inclusivo de fechas
func (c *ReportController) SalesReport(ctx *gin.Context) {
	var req request.DateRangeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	sales, err := c.salesReportUC.Execute(ctx.Request.Context(), req.FirstDate, req.SecondDate)
	if err != nil {
		log.Printf("Error generating sales report: %v", err)

		// Si es error de formato o rango de fechas → 400
		if errors.Is(err, entity.ErrInvalidDateFormat) || errors.Is(err, entity.ErrInvalidDateRange) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid date range",
				"details": err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, sales)
}

// ExcessReport retorna los ingredientes con uso menor al 10% de su cantidad
func (c *ReportController) ExcessReport(ctx *gin.Context) {
	var req request.DateRangeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.excessReportUC.Execute(ctx.Request.Context(), req.FirstDate, req.SecondDate)
	if err != nil {
		log.Printf("Error generating excess report: %v", err)

		if errors.Is(err, entity.ErrInvalidDateFormat) || errors.Is(err, entity.ErrInvalidDateRange) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid date range",
				"details": err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
