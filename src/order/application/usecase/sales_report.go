package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/yusaCS/POS-system-project/src/order/domain/entity"
	"github.com/yusaCS/POS-system-project/src/order/domain/port"
)

// SalesReportUseCase caso de uso para el reporte de ventas por rango de fechas
type SalesReportUseCase struct {
	salesRepo port.SalesHistoryRepository
}

// NewSalesReportUseCase crea una nueva instancia
func NewSalesReportUseCase(salesRepo port.SalesHistoryRepository) *SalesReportUseCase {
	return &SalesReportUseCase{salesRepo: salesRepo}
}

// Execute retorna las ventas con sale_date dentro del rango inclusivo
func (uc *SalesReportUseCase) Execute(ctx context.Context, firstDate, secondDate string) ([]*entity.Sale, error) {
	if err := validateDateRange(firstDate, secondDate); err != nil {
		return nil, err
	}
	return uc.salesRepo.ListBetween(ctx, firstDate, secondDate)
}

// validateDateRange valida formato y orden del rango
func validateDateRange(firstDate, secondDate string) error {
	first, err := time.Parse("2006-01-02", firstDate)
	if err != nil {
		return fmt.Errorf("%w: firstDate %q", entity.ErrInvalidDateFormat, firstDate)
	}
	second, err := time.Parse("2006-01-02", secondDate)
	if err != nil {
		return fmt.Errorf("%w: secondDate %q", entity.ErrInvalidDateFormat, secondDate)
	}
	if second.Before(first) {
		return fmt.Errorf("%w: %s > %s", entity.ErrInvalidDateRange, firstDate, secondDate)
	}
	return nil
}
