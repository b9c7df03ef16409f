package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yusaCS/POS-system-project/src/catalog/domain/entity"
)

// MenuPostgresRepository implementa MenuRepository usando PostgreSQL
type MenuPostgresRepository struct {
	db *sql.DB
}

// NewMenuPostgresRepository crea una nueva instancia del repositorio
func NewMenuPostgresRepository(db *sql.DB) *MenuPostgresRepository {
	return &MenuPostgresRepository{db: db}
}

// List retorna el menú completo en el orden de la carta
func (r *MenuPostgresRepository) List(ctx context.Context) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, name, price, ingredients, drink_order
		FROM menu
		ORDER BY drink_order
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing menu: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.MenuItem, 0)
	for rows.Next() {
		var (
			item        entity.MenuItem
			priceRaw    string
			ingredients sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Name, &priceRaw, &ingredients, &item.DrinkOrder); err != nil {
			return nil, fmt.Errorf("error scanning menu item: %w", err)
		}
		item.Price, err = decimal.NewFromString(priceRaw)
		if err != nil {
			return nil, fmt.Errorf("error parsing menu price: %w", err)
		}
		// Los ids no numéricos dentro de ingredients se descartan aquí;
		// el borde que los resuelve contra inventario los reporta
		item.Ingredients, _ = entity.ParseIngredientList(ingredients.String)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu rows: %w", err)
	}

	return items, nil
}

// Add inserta una bebida nueva
func (r *MenuPostgresRepository) Add(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO menu (id, name, price, ingredients)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Name,
		item.Price,
		item.Ingredients.Encode(),
	)
	if err != nil {
		return fmt.Errorf("error adding menu item: %w", err)
	}
	return nil
}

// Delete elimina una bebida por id
func (r *MenuPostgresRepository) Delete(ctx context.Context, id string) error {
	return r.execByID(ctx, `DELETE FROM menu WHERE id = $1`, "deleting", id)
}

// UpdateID cambia el id de una bebida
func (r *MenuPostgresRepository) UpdateID(ctx context.Context, id, newID string) error {
	query := `UPDATE menu SET id = $2 WHERE id = $1`
	return r.execUpdate(ctx, query, id, newID)
}

// UpdateName renombra una bebida
func (r *MenuPostgresRepository) UpdateName(ctx context.Context, id, name string) error {
	query := `UPDATE menu SET name = $2 WHERE id = $1`
	return r.execUpdate(ctx, query, id, name)
}

// UpdatePrice cambia el precio de una bebida
func (r *MenuPostgresRepository) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error {
	query := `UPDATE menu SET price = $2 WHERE id = $1`
	return r.execUpdate(ctx, query, id, price)
}

// UpdateIngredients reemplaza la lista de ingredientes
func (r *MenuPostgresRepository) UpdateIngredients(ctx context.Context, id string, ingredients entity.IngredientList) error {
	query := `UPDATE menu SET ingredients = $2 WHERE id = $1`
	return r.execUpdate(ctx, query, id, ingredients.Encode())
}

func (r *MenuPostgresRepository) execUpdate(ctx context.Context, query, id string, value interface{}) error {
	result, err := r.db.ExecContext(ctx, query, id, value)
	if err != nil {
		return fmt.Errorf("error updating menu item: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return entity.ErrMenuItemNotFound
	}
	return nil
}

func (r *MenuPostgresRepository) execByID(ctx context.Context, query, verb, id string) error {
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error %s menu item: %w", verb, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return entity.ErrMenuItemNotFound
	}
	return nil
}
