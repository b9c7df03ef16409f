package usecase

import (
	"context"

	"github.com/yusaCS/POS-system-project/src/catalog/domain/entity"
	"github.com/yusaCS/POS-system-project/src/catalog/domain/port"
)

// ListMenuUseCase caso de uso para listar el menú completo
type ListMenuUseCase struct {
	menuRepo port.MenuRepository
}

// NewListMenuUseCase crea una nueva instancia
func NewListMenuUseCase(menuRepo port.MenuRepository) *ListMenuUseCase {
	return &ListMenuUseCase{menuRepo: menuRepo}
}

// Execute retorna el menú ordenado por drink_order. Una lista vacía es válida.
func (uc *ListMenuUseCase) Execute(ctx context.Context) ([]*entity.MenuItem, error) {
	return uc.menuRepo.List(ctx)
}

// ListInventoryUseCase caso de uso para listar el inventario completo
type ListInventoryUseCase struct {
	inventoryRepo port.InventoryRepository
}

// NewListInventoryUseCase crea una nueva instancia
func NewListInventoryUseCase(inventoryRepo port.InventoryRepository) *ListInventoryUseCase {
	return &ListInventoryUseCase{inventoryRepo: inventoryRepo}
}

// Execute retorna el inventario ordenado por id
func (uc *ListInventoryUseCase) Execute(ctx context.Context) ([]*entity.InventoryItem, error) {
	return uc.inventoryRepo.List(ctx)
}
