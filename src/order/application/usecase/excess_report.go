package usecase

import (
	"context"
	"log"

	catalogPort "github.com/yusaCS/POS-system-project/src/catalog/domain/port"
	"github.com/yusaCS/POS-system-project/src/order/application/response"
	"github.com/yusaCS/POS-system-project/src/order/domain/port"
)

// ExcessReportUseCase caso de uso para el reporte de excedentes:
// ingredientes cuyo uso en el período fue menor al 10% de su cantidad
// actual en inventario. La pantalla original derivaba esto en el navegador;
// aquí se calcula sobre los mismos datos del lado del servidor.
type ExcessReportUseCase struct {
	salesRepo     port.SalesHistoryRepository
	menuRepo      catalogPort.MenuRepository
	inventoryRepo catalogPort.InventoryRepository
}

// NewExcessReportUseCase crea una nueva instancia
func NewExcessReportUseCase(
	salesRepo port.SalesHistoryRepository,
	menuRepo catalogPort.MenuRepository,
	inventoryRepo catalogPort.InventoryRepository,
) *ExcessReportUseCase {
	return &ExcessReportUseCase{
		salesRepo:     salesRepo,
		menuRepo:      menuRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Execute genera el reporte de excedentes para el rango inclusivo de fechas
func (uc *ExcessReportUseCase) Execute(ctx context.Context, firstDate, secondDate string) (*response.ExcessReportResponse, error) {
	// 1. Validar rango
	if err := validateDateRange(firstDate, secondDate); err != nil {
		return nil, err
	}

	// 2. Cargar ventas del período, menú e inventario
	sales, err := uc.salesRepo.ListBetween(ctx, firstDate, secondDate)
	if err != nil {
		return nil, err
	}
	menu, err := uc.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	inventory, err := uc.inventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	menuByID := make(map[string][]int, len(menu))
	for _, m := range menu {
		menuByID[m.ID] = []int(m.Ingredients)
	}

	// 3. Contar uso por ingrediente: cada aparición de una bebida en un
	// cart suma 1 a cada uno de sus ingredientes
	usage := make(map[int]int, len(inventory))
	for _, item := range inventory {
		usage[item.ID] = 0
	}
	for _, sale := range sales {
		for _, drinkID := range sale.Cart {
			ingredients, ok := menuByID[drinkID]
			if !ok {
				// Bebidas retiradas del menú siguen en carts viejos
				log.Printf("excess report: drink %q in sale %s not in current menu", drinkID, sale.ID)
				continue
			}
			for _, ingredientID := range ingredients {
				usage[ingredientID]++
			}
		}
	}

	// 4. Filtrar: uso estrictamente menor al 10% de la cantidad actual
	items := make([]response.ExcessReportItem, 0)
	for _, item := range inventory {
		if float64(usage[item.ID]) < float64(item.Quantity)*0.10 {
			items = append(items, response.ExcessReportItem{
				ID:       item.ID,
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
				Usage:    usage[item.ID],
			})
		}
	}

	return &response.ExcessReportResponse{
		FirstDate:  firstDate,
		SecondDate: secondDate,
		Items:      items,
		TotalCount: len(items),
	}, nil
}
