package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yusaCS/POS-system-project/src/order/application/request"
	"github.com/yusaCS/POS-system-project/src/order/application/usecase"
	"github.com/yusaCS/POS-system-project/src/order/domain/entity"
	"github.com/yusaCS/POS-system-project/src/shared/encoding"
)

// OrderController maneja las peticiones HTTP de ventas
type OrderController struct {
	submitOrderUC  *usecase.SubmitOrderUseCase
	orderHistoryUC *usecase.OrderHistoryUseCase
}

// NewOrderController crea una nueva instancia del controlador
func NewOrderController(
	submitOrderUC *usecase.SubmitOrderUseCase,
	orderHistoryUC *usecase.OrderHistoryUseCase,
) *OrderController {
	return &OrderController{
		submitOrderUC:  submitOrderUC,
		orderHistoryUC: orderHistoryUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *OrderController) RegisterRoutes(router *gin.Engine) {
	router.POST("/submitOrder", c.SubmitOrder)
	router.GET("/orderhistory", c.OrderHistory)

	log.Println("Rutas Order disponibles:")
	log.Println("  POST   /submitOrder")
	log.Println("  GET    /orderhistory")
}

// SubmitOrder persiste una venta finalizada
func (c *OrderController) SubmitOrder(ctx *gin.Context) {
	// 1. Validar body
	var req request.SubmitOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	// 2. Ejecutar use case
	sale, err := c.submitOrderUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		log.Printf("Error submitting order: %v", err)

		// Errores de validación → 400
		if errors.Is(err, entity.ErrPaymentRequired) ||
			errors.Is(err, entity.ErrNegativeTotal) ||
			errors.Is(err, entity.ErrInvalidDateFormat) ||
			errors.Is(err, entity.ErrInvalidHourFormat) ||
			errors.Is(err, encoding.ErrSeparatorInValue) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	// 3. Responder con el id asignado
	ctx.JSON(http.StatusCreated, gin.H{"id": sale.ID})
}

// OrderHistory retorna las últimas ventas, más recientes primero
func (c *OrderController) OrderHistory(ctx *gin.Context) {
	sales, err := c.orderHistoryUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing order history: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, sales)
}
