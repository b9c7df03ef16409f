package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yusaCS/POS-system-project/src/catalog/application/request"
	"github.com/yusaCS/POS-system-project/src/catalog/application/usecase"
	"github.com/yusaCS/POS-system-project/src/catalog/domain/entity"
)

// CatalogController maneja las peticiones HTTP del menú y el inventario
type CatalogController struct {
	listMenuUC      *usecase.ListMenuUseCase
	listInventoryUC *usecase.ListInventoryUseCase
	menuAdminUC     *usecase.MenuAdminUseCase
	invAdminUC      *usecase.InventoryAdminUseCase
}

// NewCatalogController crea una nueva instancia del controlador
func NewCatalogController(
	listMenuUC *usecase.ListMenuUseCase,
	listInventoryUC *usecase.ListInventoryUseCase,
	menuAdminUC *usecase.MenuAdminUseCase,
	invAdminUC *usecase.InventoryAdminUseCase,
) *CatalogController {
	return &CatalogController{
		listMenuUC:      listMenuUC,
		listInventoryUC: listInventoryUC,
		menuAdminUC:     menuAdminUC,
		invAdminUC:      invAdminUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
// Los paths son los del cliente web original; cambiarlos rompe el frontend.
func (c *CatalogController) RegisterRoutes(router *gin.Engine) {
	router.GET("/menu", c.GetMenu)
	router.GET("/inventory", c.GetInventory)

	router.POST("/addMenuDrink", c.AddMenuDrink)
	router.POST("/deleteMenuDrink", c.DeleteMenuDrink)
	router.POST("/updateMenuDrinkID", c.UpdateMenuDrinkID)
	router.POST("/updateMenuDrinkName", c.UpdateMenuDrinkName)
	router.POST("/updateMenuDrinkPrice", c.UpdateMenuDrinkPrice)
	router.POST("/updateMenuDrinkIngredients", c.UpdateMenuDrinkIngredients)

	router.POST("/addInventoryItem", c.AddInventoryItem)
	router.POST("/deleteInventoryItem", c.DeleteInventoryItem)
	router.POST("/updateInventoryItemName", c.UpdateInventoryItemName)
	router.POST("/updateInventoryItemQuantity", c.UpdateInventoryItemQuantity)
	router.POST("/updateInventoryItemPrice", c.UpdateInventoryItemPrice)

	log.Println("Rutas Catalog disponibles:")
	log.Println("  GET    /menu")
	log.Println("  GET    /inventory")
	log.Println("  POST   /addMenuDrink, /deleteMenuDrink, /updateMenuDrink{ID,Name,Price,Ingredients}")
	log.Println("  POST   /addInventoryItem, /deleteInventoryItem, /updateInventoryItem{Name,Quantity,Price}")
}

// GetMenu retorna el menú completo ordenado por drink_order
func (c *CatalogController) GetMenu(ctx *gin.Context) {
	items, err := c.listMenuUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing menu: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetInventory retorna el inventario completo ordenado por id
func (c *CatalogController) GetInventory(ctx *gin.Context) {
	items, err := c.listInventoryUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing inventory: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// AddMenuDrink agrega una bebida al menú
func (c *CatalogController) AddMenuDrink(ctx *gin.Context) {
	// 1. Validar body
	var req request.AddMenuDrinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	// 2. Ejecutar use case
	if err := c.menuAdminUC.Add(ctx.Request.Context(), &req); err != nil {
		c.respondMutationError(ctx, "Error adding menu drink", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}

// DeleteMenuDrink elimina una bebida del menú
func (c *CatalogController) DeleteMenuDrink(ctx *gin.Context) {
	var req request.DeleteMenuDrinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.menuAdminUC.Delete(ctx.Request.Context(), req.ID); err != nil {
		c.respondMutationError(ctx, "Error deleting menu drink", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}

// UpdateMenuDrinkID cambia el id de una bebida
func (c *CatalogController) UpdateMenuDrinkID(ctx *gin.Context) {
	var req request.UpdateMenuDrinkIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.menuAdminUC.UpdateID(ctx.Request.Context(), req.ID, req.NewID); err != nil {
		c.respondMutationError(ctx, "Error updating menu drink id", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}

// UpdateMenuDrinkName renombra una bebida
func (c *CatalogController) UpdateMenuDrinkName(ctx *gin.Context) {
	var req request.UpdateMenuDrinkNameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.menuAdminUC.UpdateName(ctx.Request.Context(), req.ID, req.Name); err != nil {
		c.respondMutationError(ctx, "Error updating menu drink name", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}

// UpdateMenuDrinkPrice cambia el precio de una bebida
func (c *CatalogController) UpdateMenuDrinkPrice(ctx *gin.Context) {
	var req request.UpdateMenuDrinkPriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.menuAdminUC.UpdatePrice(ctx.Request.Context(), &req); err != nil {
		c.respondMutationError(ctx, "Error updating menu drink price", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}

// UpdateMenuDrinkIngredients reemplaza los ingredientes de una bebida
func (c *CatalogController) UpdateMenuDrinkIngredients(ctx *gin.Context) {
	var req request.UpdateMenuDrinkIngredientsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.menuAdminUC.UpdateIngredients(ctx.Request.Context(), &req); err != nil {
		c.respondMutationError(ctx, "Error updating menu drink ingredients", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}

// AddInventoryItem agrega un ingrediente al inventario
func (c *CatalogController) AddInventoryItem(ctx *gin.Context) {
	var req request.AddInventoryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.invAdminUC.Add(ctx.Request.Context(), &req); err != nil {
		c.respondMutationError(ctx, "Error adding inventory item", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}

// DeleteInventoryItem elimina un ingrediente del inventario
func (c *CatalogController) DeleteInventoryItem(ctx *gin.Context) {
	var req request.DeleteInventoryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.invAdminUC.Delete(ctx.Request.Context(), req.ID); err != nil {
		c.respondMutationError(ctx, "Error deleting inventory item", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}

// UpdateInventoryItemName renombra un ingrediente
func (c *CatalogController) UpdateInventoryItemName(ctx *gin.Context) {
	var req request.UpdateInventoryItemNameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.invAdminUC.UpdateName(ctx.Request.Context(), req.ID, req.Name); err != nil {
		c.respondMutationError(ctx, "Error updating inventory item name", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}

// UpdateInventoryItemQuantity ajusta la cantidad de un ingrediente
func (c *CatalogController) UpdateInventoryItemQuantity(ctx *gin.Context) {
	var req request.UpdateInventoryItemQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.invAdminUC.UpdateQuantity(ctx.Request.Context(), req.ID, req.Quantity); err != nil {
		c.respondMutationError(ctx, "Error updating inventory item quantity", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}

// UpdateInventoryItemPrice cambia el precio de un ingrediente
func (c *CatalogController) UpdateInventoryItemPrice(ctx *gin.Context) {
	var req request.UpdateInventoryItemPriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.invAdminUC.UpdatePrice(ctx.Request.Context(), &req); err != nil {
		c.respondMutationError(ctx, "Error updating inventory item price", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}

// respondMutationError mapea errores de dominio a códigos HTTP
func (c *CatalogController) respondMutationError(ctx *gin.Context, msg string, err error) {
	log.Printf("%s: %v", msg, err)

	switch {
	case errors.Is(err, entity.ErrMenuItemNotFound), errors.Is(err, entity.ErrInventoryItemNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrMenuIDRequired),
		errors.Is(err, entity.ErrNameRequired),
		errors.Is(err, entity.ErrInvalidPrice),
		errors.Is(err, entity.ErrInvalidQuantity):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   msg,
			"details": err.Error(),
		})
	}
}
