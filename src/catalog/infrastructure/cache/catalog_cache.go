package cache

import (
	"context"
	"log"
	"sync"

	"github.com/yusaCS/POS-system-project/src/catalog/domain/entity"
	"github.com/yusaCS/POS-system-project/src/catalog/domain/port"
)

// CatalogCache snapshot en memoria del menú y el inventario.
// Se carga al activar una pantalla y se refresca sólo después de una
// mutación exitosa; nunca por timer.
type CatalogCache struct {
	source    port.CatalogSource
	menu      []*entity.MenuItem
	inventory []*entity.InventoryItem
	menuByID  map[string]*entity.MenuItem
	invByID   map[int]*entity.InventoryItem
	mu        sync.RWMutex
}

// NewCatalogCache crea un cache vacío sobre la fuente dada
func NewCatalogCache(source port.CatalogSource) *CatalogCache {
	return &CatalogCache{
		source:   source,
		menuByID: make(map[string]*entity.MenuItem),
		invByID:  make(map[int]*entity.InventoryItem),
	}
}

// Load carga ambos snapshots desde la fuente. Si el fetch falla el cache
// queda vacío (o con el snapshot anterior) y los lookups reportan not-found;
// nunca es fatal.
func (c *CatalogCache) Load(ctx context.Context) error {
	log.Println("🔄 Loading catalog snapshot into cache...")

	menu, err := c.source.FetchMenu(ctx)
	if err != nil {
		log.Printf("⚠️  Warning: Could not load menu: %v", err)
		return err
	}

	inventory, err := c.source.FetchInventory(ctx)
	if err != nil {
		log.Printf("⚠️  Warning: Could not load inventory: %v", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.menu = menu
	c.inventory = inventory
	c.menuByID = make(map[string]*entity.MenuItem, len(menu))
	for _, m := range menu {
		c.menuByID[m.ID] = m
	}
	c.invByID = make(map[int]*entity.InventoryItem, len(inventory))
	for _, i := range inventory {
		c.invByID[i.ID] = i
	}

	log.Printf("✅ Loaded %d menu items and %d inventory items into cache", len(menu), len(inventory))
	return nil
}

// Refresh recarga el snapshot después de una mutación exitosa
func (c *CatalogCache) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// FindMenuItem busca una bebida por id en el snapshot
func (c *CatalogCache) FindMenuItem(id string) (entity.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.menuByID[id]
	if !ok {
		return entity.MenuItem{}, false
	}
	return *item, true
}

// FindInventoryItem busca un ingrediente por id en el snapshot
func (c *CatalogCache) FindInventoryItem(id int) (entity.InventoryItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.invByID[id]
	if !ok {
		return entity.InventoryItem{}, false
	}
	return *item, true
}

// Menu devuelve el snapshot del menú en el orden de la carta
func (c *CatalogCache) Menu() []*entity.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*entity.MenuItem, len(c.menu))
	copy(out, c.menu)
	return out
}

// Inventory devuelve el snapshot del inventario ordenado por id
func (c *CatalogCache) Inventory() []*entity.InventoryItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*entity.InventoryItem, len(c.inventory))
	copy(out, c.inventory)
	return out
}
