package usecase

import (
	"context"

	catalogEntity "github.com/yusaCS/POS-system-project/src/catalog/domain/entity"
	catalogPort "github.com/yusaCS/POS-system-project/src/catalog/domain/port"
)

// RestockReportUseCase caso de uso para el reporte de restock:
// ingredientes con cantidad menor o igual al umbral pedido
type RestockReportUseCase struct {
	inventoryRepo catalogPort.InventoryRepository
}

// NewRestockReportUseCase crea una nueva instancia
func NewRestockReportUseCase(inventoryRepo catalogPort.InventoryRepository) *RestockReportUseCase {
	return &RestockReportUseCase{inventoryRepo: inventoryRepo}
}

// Execute retorna los ingredientes con quantity <= amount, ordenados por id
func (uc *RestockReportUseCase) Execute(ctx context.Context, amount int) ([]*catalogEntity.InventoryItem, error) {
	return uc.inventoryRepo.ListBelow(ctx, amount)
}
