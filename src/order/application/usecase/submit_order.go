package usecase

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/yusaCS/POS-system-project/src/order/application/request"
	"github.com/yusaCS/POS-system-project/src/order/domain/entity"
	"github.com/yusaCS/POS-system-project/src/order/domain/port"
)

// El cliente original manda la hora como "HH00"
var hourPattern = regexp.MustCompile(`^([01]\d|2[0-3])00$`)

// SubmitOrderUseCase caso de uso para persistir una venta finalizada
type SubmitOrderUseCase struct {
	salesRepo port.SalesHistoryRepository
}

// NewSubmitOrderUseCase crea una nueva instancia
func NewSubmitOrderUseCase(salesRepo port.SalesHistoryRepository) *SubmitOrderUseCase {
	return &SubmitOrderUseCase{salesRepo: salesRepo}
}

// Execute valida el request en el borde y persiste la venta.
// Los campos derivados se insertan tal cual los mandó la terminal.
func (uc *SubmitOrderUseCase) Execute(ctx context.Context, req *request.SubmitOrderRequest) (*entity.Sale, error) {
	// 1. Validar formato de fecha (YYYY-MM-DD)
	if _, err := time.Parse("2006-01-02", req.SaleDate); err != nil {
		return nil, fmt.Errorf("%w: sale_date %q", entity.ErrInvalidDateFormat, req.SaleDate)
	}

	// 2. Validar formato de hora (HH00)
	if !hourPattern.MatchString(req.CurrentHour) {
		return nil, fmt.Errorf("%w: current_hour %q", entity.ErrInvalidHourFormat, req.CurrentHour)
	}

	// 3. Construir la venta; valida payment, total y codificación del cart
	cart := entity.ParseCartIDs(req.Cart)
	if req.Payment == "" {
		return nil, entity.ErrPaymentRequired
	}
	if req.OrderTotal.IsNegative() {
		return nil, entity.ErrNegativeTotal
	}
	if _, err := cart.Encode(); err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		ID:          uuid.New(),
		Cashier:     req.Cashier,
		SaleWeek:    req.SaleWeek,
		SaleDate:    req.SaleDate,
		CurrentHour: req.CurrentHour,
		Payment:     req.Payment,
		Cart:        cart,
		OrderTotal:  req.OrderTotal,
	}

	// 4. Persistir
	if err := uc.salesRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}
