package entity

import (
	"github.com/shopspring/decimal"

	catalogEntity "github.com/yusaCS/POS-system-project/src/catalog/domain/entity"
	catalogPort "github.com/yusaCS/POS-system-project/src/catalog/domain/port"
	orderEntity "github.com/yusaCS/POS-system-project/src/order/domain/entity"
)

// QuantityDirection dirección de un cambio de cantidad sobre una línea
type QuantityDirection string

const (
	Increment QuantityDirection = "increment"
	Decrement QuantityDirection = "decrement"
)

// LineItem una línea del pedido: una bebida, su cantidad, el precio
// acumulado (precio unitario × cantidad) y las notas de personalización
type LineItem struct {
	MenuItemID string
	Quantity   int
	Price      decimal.Decimal
	Notes      string
}

// Cart acumula líneas de pedido para una sesión de la terminal.
// Una instancia por pantalla; se resetea con Clear al navegar o cobrar.
//
// Política de merge: las líneas sin notas siempre se fusionan por bebida.
// Para líneas personalizadas la pantalla de caja históricamente nunca
// fusionaba y la de cliente fusionaba por igualdad exacta de notas; ambas
// variantes se construyen explícitamente con mergeCustomized.
type Cart struct {
	catalog         catalogPort.CatalogReader
	custom          *CustomizationStore
	mergeCustomized bool
	items           []LineItem
}

// NewCart crea un carrito vacío sobre el snapshot de catálogo dado
func NewCart(catalog catalogPort.CatalogReader, custom *CustomizationStore, mergeCustomized bool) *Cart {
	return &Cart{
		catalog:         catalog,
		custom:          custom,
		mergeCustomized: mergeCustomized,
	}
}

// AddItem agrega una bebida al pedido. Si la bebida no existe en el
// snapshot no hay cambio de estado. Al completar el alta se resetean las
// personalizaciones de esa bebida para el próximo diálogo.
func (c *Cart) AddItem(menuItemID string, quantity int, unitPrice decimal.Decimal) (catalogEntity.MenuItem, error) {
	if quantity < 1 {
		return catalogEntity.MenuItem{}, ErrInvalidQuantity
	}

	item, ok := c.catalog.FindMenuItem(menuItemID)
	if !ok {
		return catalogEntity.MenuItem{}, catalogEntity.ErrMenuItemNotFound
	}

	notes := c.custom.NotesFor(item, c.catalog)
	defer c.custom.ResetAllForItem(menuItemID)

	price := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	if notes != "" && !c.mergeCustomized {
		// Variante de caja: una línea nueva por cada bebida personalizada
		c.items = append(c.items, LineItem{
			MenuItemID: menuItemID,
			Quantity:   quantity,
			Price:      price,
			Notes:      notes,
		})
		return item, nil
	}

	// Fusionar con una línea existente de la misma bebida y mismas notas
	for i := range c.items {
		if c.items[i].MenuItemID == menuItemID && c.items[i].Notes == notes {
			c.items[i].Quantity += quantity
			c.items[i].Price = c.items[i].Price.Add(price)
			return item, nil
		}
	}

	c.items = append(c.items, LineItem{
		MenuItemID: menuItemID,
		Quantity:   quantity,
		Price:      price,
		Notes:      notes,
	})
	return item, nil
}

// ChangeQuantity incrementa o decrementa la cantidad de una línea.
// Decrementar con cantidad 1 es un no-op: quitar una línea requiere
// RemoveItem, nunca decrementar a cero. El precio se recalcula siempre
// como precio unitario de catálogo × cantidad nueva.
func (c *Cart) ChangeQuantity(index int, direction QuantityDirection) error {
	if index < 0 || index >= len(c.items) {
		return ErrLineItemNotFound
	}

	line := &c.items[index]
	switch direction {
	case Increment:
		line.Quantity++
	case Decrement:
		if line.Quantity > 1 {
			line.Quantity--
		}
	default:
		return ErrInvalidDirection
	}

	item, ok := c.catalog.FindMenuItem(line.MenuItemID)
	if !ok {
		return catalogEntity.ErrMenuItemNotFound
	}
	line.Price = item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
	return nil
}

// RemoveItem elimina la línea en index si corresponde a la bebida dada
func (c *Cart) RemoveItem(index int, menuItemID string) error {
	if index < 0 || index >= len(c.items) || c.items[index].MenuItemID != menuItemID {
		return ErrLineItemNotFound
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// Clear vacía el carrito; se llama después de un cobro exitoso
func (c *Cart) Clear() {
	c.items = nil
}

// Total suma los precios de todas las líneas a precisión completa
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.items {
		total = total.Add(line.Price)
	}
	return total
}

// DisplayTotal formatea el total a dos decimales para mostrar
func (c *Cart) DisplayTotal() string {
	return c.Total().StringFixed(2)
}

// TotalQuantity suma las cantidades de todas las líneas
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.items {
		total += line.Quantity
	}
	return total
}

// Items retorna una copia de las líneas en orden de alta
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len cantidad de líneas del pedido
func (c *Cart) Len() int {
	return len(c.items)
}

// IDs retorna los ids de bebida línea por línea, en orden, para la
// columna cart de la venta
func (c *Cart) IDs() orderEntity.CartIDs {
	ids := make(orderEntity.CartIDs, 0, len(c.items))
	for _, line := range c.items {
		ids = append(ids, line.MenuItemID)
	}
	return ids
}
