package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yusaCS/POS-system-project/src/catalog/domain/entity"
)

// InventoryPostgresRepository implementa InventoryRepository usando PostgreSQL
type InventoryPostgresRepository struct {
	db *sql.DB
}

// NewInventoryPostgresRepository crea una nueva instancia del repositorio
func NewInventoryPostgresRepository(db *sql.DB) *InventoryPostgresRepository {
	return &InventoryPostgresRepository{db: db}
}

// List retorna el inventario completo ordenado por id
func (r *InventoryPostgresRepository) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	query := `
		SELECT id, name, quantity, price
		FROM inventory
		ORDER BY id
	`
	return r.queryItems(ctx, query)
}

// ListBelow retorna los ingredientes con cantidad menor o igual al umbral
// (reporte de restock)
func (r *InventoryPostgresRepository) ListBelow(ctx context.Context, amount int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT id, name, quantity, price
		FROM inventory
		WHERE quantity <= $1
		ORDER BY id
	`
	return r.queryItems(ctx, query, amount)
}

func (r *InventoryPostgresRepository) queryItems(ctx context.Context, query string, args ...interface{}) ([]*entity.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing inventory: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.InventoryItem, 0)
	for rows.Next() {
		var (
			item     entity.InventoryItem
			priceRaw string
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &priceRaw); err != nil {
			return nil, fmt.Errorf("error scanning inventory item: %w", err)
		}
		item.Price, err = decimal.NewFromString(priceRaw)
		if err != nil {
			return nil, fmt.Errorf("error parsing inventory price: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", err)
	}

	return items, nil
}

// Add inserta un ingrediente nuevo; el id lo asigna la secuencia de la tabla
func (r *InventoryPostgresRepository) Add(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory (name, price, quantity)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, item.Name, item.Price, item.Quantity)
	if err != nil {
		return fmt.Errorf("error adding inventory item: %w", err)
	}
	return nil
}

// Delete elimina un ingrediente por id
func (r *InventoryPostgresRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting inventory item: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return entity.ErrInventoryItemNotFound
	}
	return nil
}

// UpdateName renombra un ingrediente
func (r *InventoryPostgresRepository) UpdateName(ctx context.Context, id int, name string) error {
	return r.execUpdate(ctx, `UPDATE inventory SET name = $2 WHERE id = $1`, id, name)
}

// UpdateQuantity ajusta la cantidad en inventario
func (r *InventoryPostgresRepository) UpdateQuantity(ctx context.Context, id, quantity int) error {
	return r.execUpdate(ctx, `UPDATE inventory SET quantity = $2 WHERE id = $1`, id, quantity)
}

// UpdatePrice cambia el precio de un ingrediente
func (r *InventoryPostgresRepository) UpdatePrice(ctx context.Context, id int, price decimal.Decimal) error {
	return r.execUpdate(ctx, `UPDATE inventory SET price = $2 WHERE id = $1`, id, price)
}

func (r *InventoryPostgresRepository) execUpdate(ctx context.Context, query string, id int, value interface{}) error {
	result, err := r.db.ExecContext(ctx, query, id, value)
	if err != nil {
		return fmt.Errorf("error updating inventory item: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return entity.ErrInventoryItemNotFound
	}
	return nil
}
