package usecase

import (
	"context"

	"github.com/yusaCS/POS-system-project/src/catalog/application/request"
	"github.com/yusaCS/POS-system-project/src/catalog/domain/entity"
	"github.com/yusaCS/POS-system-project/src/catalog/domain/port"
)

// MenuAdminUseCase caso de uso para la edición del menú (pantalla de manager)
type MenuAdminUseCase struct {
	menuRepo port.MenuRepository
}

// NewMenuAdminUseCase crea una nueva instancia
func NewMenuAdminUseCase(menuRepo port.MenuRepository) *MenuAdminUseCase {
	return &MenuAdminUseCase{menuRepo: menuRepo}
}

// Add valida y agrega una bebida nueva
func (uc *MenuAdminUseCase) Add(ctx context.Context, req *request.AddMenuDrinkRequest) error {
	ingredients, _ := entity.ParseIngredientList(req.Ingredients)
	item, err := entity.NewMenuItem(req.ID, req.Name, req.Price, ingredients)
	if err != nil {
		return err
	}
	return uc.menuRepo.Add(ctx, item)
}

// Delete elimina una bebida por id
func (uc *MenuAdminUseCase) Delete(ctx context.Context, id string) error {
	return uc.menuRepo.Delete(ctx, id)
}

// UpdateID cambia el id de una bebida
func (uc *MenuAdminUseCase) UpdateID(ctx context.Context, id, newID string) error {
	if newID == "" {
		return entity.ErrMenuIDRequired
	}
	return uc.menuRepo.UpdateID(ctx, id, newID)
}

// UpdateName renombra una bebida
func (uc *MenuAdminUseCase) UpdateName(ctx context.Context, id, name string) error {
	if name == "" {
		return entity.ErrNameRequired
	}
	return uc.menuRepo.UpdateName(ctx, id, name)
}

// UpdatePrice cambia el precio de una bebida
func (uc *MenuAdminUseCase) UpdatePrice(ctx context.Context, req *request.UpdateMenuDrinkPriceRequest) error {
	if req.Price.IsNegative() {
		return entity.ErrInvalidPrice
	}
	return uc.menuRepo.UpdatePrice(ctx, req.ID, req.Price)
}

// UpdateIngredients reemplaza la lista de ingredientes de una bebida
func (uc *MenuAdminUseCase) UpdateIngredients(ctx context.Context, req *request.UpdateMenuDrinkIngredientsRequest) error {
	ingredients, _ := entity.ParseIngredientList(req.Ingredients)
	return uc.menuRepo.UpdateIngredients(ctx, req.ID, ingredients)
}
