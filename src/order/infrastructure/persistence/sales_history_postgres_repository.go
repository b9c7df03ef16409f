package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yusaCS/POS-system-project/src/order/domain/entity"
)

// SalesHistoryPostgresRepository implementa SalesHistoryRepository usando PostgreSQL
type SalesHistoryPostgresRepository struct {
	db *sql.DB
}

// NewSalesHistoryPostgresRepository crea una nueva instancia del repositorio
func NewSalesHistoryPostgresRepository(db *sql.DB) *SalesHistoryPostgresRepository {
	return &SalesHistoryPostgresRepository{db: db}
}

// Create persiste una venta finalizada. El historial es inmutable: esta es
// la única escritura sobre sales_history.
func (r *SalesHistoryPostgresRepository) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales_history (
			id, cashier, sale_week, sale_date, current_hour, payment, cart, order_total, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	cart, err := sale.Cart.Encode()
	if err != nil {
		return fmt.Errorf("error encoding cart: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		sale.ID,
		sale.Cashier,
		sale.SaleWeek,
		sale.SaleDate,
		sale.CurrentHour,
		sale.Payment,
		cart,
		sale.OrderTotal,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("error saving sale: %w", err)
	}
	return nil
}

// ListRecent retorna las últimas `limit` ventas, más recientes primero
func (r *SalesHistoryPostgresRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error) {
	query := `
		SELECT id, cashier, sale_week, sale_date, current_hour, payment, cart, order_total
		FROM sales_history
		ORDER BY created_at DESC
		LIMIT $1
	`
	return r.querySales(ctx, query, limit)
}

// ListBetween retorna las ventas del rango inclusivo de fechas
func (r *SalesHistoryPostgresRepository) ListBetween(ctx context.Context, firstDate, secondDate string) ([]*entity.Sale, error) {
	query := `
		SELECT id, cashier, sale_week, sale_date, current_hour, payment, cart, order_total
		FROM sales_history
		WHERE sale_date BETWEEN $1 AND $2
		ORDER BY created_at DESC
	`
	return r.querySales(ctx, query, firstDate, secondDate)
}

func (r *SalesHistoryPostgresRepository) querySales(ctx context.Context, query string, args ...interface{}) ([]*entity.Sale, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing sales: %w", err)
	}
	defer rows.Close()

	sales := make([]*entity.Sale, 0)
	for rows.Next() {
		var (
			sale     entity.Sale
			cartRaw  string
			totalRaw string
		)
		if err := rows.Scan(
			&sale.ID,
			&sale.Cashier,
			&sale.SaleWeek,
			&sale.SaleDate,
			&sale.CurrentHour,
			&sale.Payment,
			&cartRaw,
			&totalRaw,
		); err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sale.Cart = entity.ParseCartIDs(cartRaw)
		sale.OrderTotal, err = decimal.NewFromString(totalRaw)
		if err != nil {
			return nil, fmt.Errorf("error parsing order total: %w", err)
		}
		sales = append(sales, &sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}

	return sales, nil
}
