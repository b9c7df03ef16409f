package port

import (
	"context"

	"github.com/yusaCS/POS-system-project/src/order/domain/entity"
)

// SalesHistoryRepository define el contrato para persistir ventas.
// Solo operaciones mínimas: Create y lecturas para reportes.
// Sin updates, sin deletes: el historial es inmutable.
type SalesHistoryRepository interface {
	// Create persiste una venta finalizada. No valida, solo inserta.
	Create(ctx context.Context, sale *entity.Sale) error

	// ListRecent retorna las últimas `limit` ventas, más recientes primero
	ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error)

	// ListBetween retorna las ventas con sale_date en [firstDate, secondDate],
	// más recientes primero. Las fechas llegan como "YYYY-MM-DD".
	ListBetween(ctx context.Context, firstDate, secondDate string) ([]*entity.Sale, error)
}
