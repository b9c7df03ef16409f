package usecase

import (
	"context"

	"github.com/yusaCS/POS-system-project/src/catalog/application/request"
	"github.com/yusaCS/POS-system-project/src/catalog/domain/entity"
	"github.com/yusaCS/POS-system-project/src/catalog/domain/port"
)

// InventoryAdminUseCase caso de uso para la edición del inventario
type InventoryAdminUseCase struct {
	inventoryRepo port.InventoryRepository
}

// NewInventoryAdminUseCase crea una nueva instancia
func NewInventoryAdminUseCase(inventoryRepo port.InventoryRepository) *InventoryAdminUseCase {
	return &InventoryAdminUseCase{inventoryRepo: inventoryRepo}
}

// Add valida y agrega un ingrediente nuevo (el id lo asigna la base)
func (uc *InventoryAdminUseCase) Add(ctx context.Context, req *request.AddInventoryItemRequest) error {
	item, err := entity.NewInventoryItem(req.Name, req.Price, req.Quantity)
	if err != nil {
		return err
	}
	return uc.inventoryRepo.Add(ctx, item)
}

// Delete elimina un ingrediente por id
func (uc *InventoryAdminUseCase) Delete(ctx context.Context, id int) error {
	return uc.inventoryRepo.Delete(ctx, id)
}

// UpdateName renombra un ingrediente
func (uc *InventoryAdminUseCase) UpdateName(ctx context.Context, id int, name string) error {
	if name == "" {
		return entity.ErrNameRequired
	}
	return uc.inventoryRepo.UpdateName(ctx, id, name)
}

// UpdateQuantity ajusta la cantidad en inventario
func (uc *InventoryAdminUseCase) UpdateQuantity(ctx context.Context, id, quantity int) error {
	if quantity < 0 {
		return entity.ErrInvalidQuantity
	}
	return uc.inventoryRepo.UpdateQuantity(ctx, id, quantity)
}

// UpdatePrice cambia el precio de un ingrediente
func (uc *InventoryAdminUseCase) UpdatePrice(ctx context.Context, req *request.UpdateInventoryItemPriceRequest) error {
	if req.Price.IsNegative() {
		return entity.ErrInvalidPrice
	}
	return uc.inventoryRepo.UpdatePrice(ctx, req.ID, req.Price)
}
