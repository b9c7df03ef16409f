package usecase

import (
	"context"

	"github.com/yusaCS/POS-system-project/src/order/domain/entity"
	"github.com/yusaCS/POS-system-project/src/order/domain/port"
)

// La pantalla de historial muestra como máximo las últimas 1000 ventas
const orderHistoryLimit = 1000

// OrderHistoryUseCase caso de uso para el historial de ventas
type OrderHistoryUseCase struct {
	salesRepo port.SalesHistoryRepository
}

// NewOrderHistoryUseCase crea una nueva instancia
func NewOrderHistoryUseCase(salesRepo port.SalesHistoryRepository) *OrderHistoryUseCase {
	return &OrderHistoryUseCase{salesRepo: salesRepo}
}

// Execute retorna las ventas más recientes, nuevas primero
func (uc *OrderHistoryUseCase) Execute(ctx context.Context) ([]*entity.Sale, error) {
	return uc.salesRepo.ListRecent(ctx, orderHistoryLimit)
}
