package port

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/yusaCS/POS-system-project/src/catalog/domain/entity"
)

// MenuRepository define el contrato para persistir el menú
type MenuRepository interface {
	// List retorna el menú completo ordenado por drink_order
	List(ctx context.Context) ([]*entity.MenuItem, error)

	// Add inserta una bebida nueva
	Add(ctx context.Context, item *entity.MenuItem) error

	// Delete elimina una bebida por id
	Delete(ctx context.Context, id string) error

	// Updates puntuales: una columna por operación, igual que los
	// stored procedures originales
	UpdateID(ctx context.Context, id, newID string) error
	UpdateName(ctx context.Context, id, name string) error
	UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error
	UpdateIngredients(ctx context.Context, id string, ingredients entity.IngredientList) error
}

// InventoryRepository define el contrato para persistir el inventario
type InventoryRepository interface {
	// List retorna el inventario completo ordenado por id
	List(ctx context.Context) ([]*entity.InventoryItem, error)

	// ListBelow retorna los ingredientes con quantity <= amount (restock)
	ListBelow(ctx context.Context, amount int) ([]*entity.InventoryItem, error)

	// Add inserta un ingrediente nuevo (el id lo asigna la base)
	Add(ctx context.Context, item *entity.InventoryItem) error

	// Delete elimina un ingrediente por id
	Delete(ctx context.Context, id int) error

	UpdateName(ctx context.Context, id int, name string) error
	UpdateQuantity(ctx context.Context, id int, quantity int) error
	UpdatePrice(ctx context.Context, id int, price decimal.Decimal) error
}

// CatalogReader resuelve ids contra el snapshot del catálogo en memoria.
// Lo consumen el carrito y la tienda de personalizaciones.
type CatalogReader interface {
	FindMenuItem(id string) (entity.MenuItem, bool)
	FindInventoryItem(id int) (entity.InventoryItem, bool)
}

// CatalogSource es la fuente remota del catálogo (GET /menu, GET /inventory)
type CatalogSource interface {
	FetchMenu(ctx context.Context) ([]*entity.MenuItem, error)
	FetchInventory(ctx context.Context) ([]*entity.InventoryItem, error)
}
