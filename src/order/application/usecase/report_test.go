package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogEntity "github.com/yusaCS/POS-system-project/src/catalog/domain/entity"
	"github.com/yusaCS/POS-system-project/src/order/domain/entity"
)

// fakeMenuRepo menú fijo en memoria; las mutaciones no se usan en reportes
type fakeMenuRepo struct {
	menu []*catalogEntity.MenuItem
}

func (f *fakeMenuRepo) List(_ context.Context) ([]*catalogEntity.MenuItem, error) {
	return f.menu, nil
}

func (f *fakeMenuRepo) Add(_ context.Context, _ *catalogEntity.MenuItem) error { return nil }
func (f *fakeMenuRepo) Delete(_ context.Context, _ string) error               { return nil }
func (f *fakeMenuRepo) UpdateID(_ context.Context, _, _ string) error          { return nil }
func (f *fakeMenuRepo) UpdateName(_ context.Context, _, _ string) error        { return nil }
func (f *fakeMenuRepo) UpdatePrice(_ context.Context, _ string, _ decimal.Decimal) error {
	return nil
}
func (f *fakeMenuRepo) UpdateIngredients(_ context.Context, _ string, _ catalogEntity.IngredientList) error {
	return nil
}

// fakeInventoryRepo inventario fijo en memoria
type fakeInventoryRepo struct {
	inventory []*catalogEntity.InventoryItem
}

func (f *fakeInventoryRepo) List(_ context.Context) ([]*catalogEntity.InventoryItem, error) {
	return f.inventory, nil
}

func (f *fakeInventoryRepo) ListBelow(_ context.Context, amount int) ([]*catalogEntity.InventoryItem, error) {
	var out []*catalogEntity.InventoryItem
	for _, item := range f.inventory {
		if item.Quantity <= amount {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) Add(_ context.Context, _ *catalogEntity.InventoryItem) error { return nil }
func (f *fakeInventoryRepo) Delete(_ context.Context, _ int) error                       { return nil }
func (f *fakeInventoryRepo) UpdateName(_ context.Context, _ int, _ string) error         { return nil }
func (f *fakeInventoryRepo) UpdateQuantity(_ context.Context, _ int, _ int) error        { return nil }
func (f *fakeInventoryRepo) UpdatePrice(_ context.Context, _ int, _ decimal.Decimal) error {
	return nil
}

func reportFixtures() (*fakeSalesRepo, *fakeMenuRepo, *fakeInventoryRepo) {
	salesRepo := &fakeSalesRepo{}
	at := time.Date(2023, 4, 14, 10, 0, 0, 0, time.UTC)

	// Dos ventas dentro del rango de prueba, una fuera
	for _, fixture := range []struct {
		date string
		cart entity.CartIDs
	}{
		{"2023-04-14", entity.CartIDs{"M1", "M1"}},
		{"2023-04-15", entity.CartIDs{"M1", "M2"}},
		{"2023-05-01", entity.CartIDs{"M2"}},
	} {
		sale, err := entity.NewSale(1, "Cash", fixture.cart, decimal.Zero, at)
		if err != nil {
			panic(err)
		}
		sale.SaleDate = fixture.date
		salesRepo.sales = append(salesRepo.sales, sale)
	}

	menuRepo := &fakeMenuRepo{
		menu: []*catalogEntity.MenuItem{
			{ID: "M1", Name: "Brown Sugar Boba Milk", Ingredients: catalogEntity.IngredientList{11, 12}},
			{ID: "M2", Name: "Boba Milk Tea", Ingredients: catalogEntity.IngredientList{11, 13}},
		},
	}

	inventoryRepo := &fakeInventoryRepo{
		inventory: []*catalogEntity.InventoryItem{
			{ID: 11, Name: "Boba", Quantity: 20, Price: decimal.RequireFromString("0.30")},
			{ID: 12, Name: "Brown Sugar", Quantity: 50, Price: decimal.RequireFromString("0.10")},
			{ID: 13, Name: "Black Tea", Quantity: 5, Price: decimal.RequireFromString("0.20")},
		},
	}

	return salesRepo, menuRepo, inventoryRepo
}

func TestRestockReportFiltersByThreshold(t *testing.T) {
	t.Parallel()

	_, _, inventoryRepo := reportFixtures()
	uc := NewRestockReportUseCase(inventoryRepo)

	items, err := uc.Execute(context.Background(), 20)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "Boba", items[0].Name)
	assert.Equal(t, "Black Tea", items[1].Name)

	// Umbral cero: sólo ingredientes agotados
	items, err = uc.Execute(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSalesReportFiltersByDateRange(t *testing.T) {
	t.Parallel()

	salesRepo, _, _ := reportFixtures()
	uc := NewSalesReportUseCase(salesRepo)

	sales, err := uc.Execute(context.Background(), "2023-04-14", "2023-04-15")
	require.NoError(t, err)
	assert.Len(t, sales, 2)

	// Rango de un solo día (inclusivo en ambos extremos)
	sales, err = uc.Execute(context.Background(), "2023-04-15", "2023-04-15")
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestSalesReportRejectsBadRanges(t *testing.T) {
	t.Parallel()

	salesRepo, _, _ := reportFixtures()
	uc := NewSalesReportUseCase(salesRepo)

	_, err := uc.Execute(context.Background(), "14/04/2023", "2023-04-15")
	assert.ErrorIs(t, err, entity.ErrInvalidDateFormat)

	_, err = uc.Execute(context.Background(), "2023-04-14", "tomorrow")
	assert.ErrorIs(t, err, entity.ErrInvalidDateFormat)

	// secondDate anterior a firstDate
	_, err = uc.Execute(context.Background(), "2023-04-15", "2023-04-14")
	assert.ErrorIs(t, err, entity.ErrInvalidDateRange)
}

func TestExcessReportCountsUsagePerIngredient(t *testing.T) {
	t.Parallel()

	salesRepo, menuRepo, inventoryRepo := reportFixtures()
	uc := NewExcessReportUseCase(salesRepo, menuRepo, inventoryRepo)

	// En el rango: M1 aparece 3 veces y M2 una.
	// Uso: Boba(11)=4, Brown Sugar(12)=3, Black Tea(13)=1.
	// Umbrales 10%: 2.0, 5.0 y 0.5. Excedente: sólo Brown Sugar (3 < 5).
	report, err := uc.Execute(context.Background(), "2023-04-14", "2023-04-15")
	require.NoError(t, err)

	require.Len(t, report.Items, 1)
	assert.Equal(t, 12, report.Items[0].ID)
	assert.Equal(t, 3, report.Items[0].Usage)
	assert.Equal(t, 1, report.TotalCount)
	assert.Equal(t, "2023-04-14", report.FirstDate)
}

func TestExcessReportZeroUsageEqualsZeroQuantity(t *testing.T) {
	t.Parallel()

	salesRepo := &fakeSalesRepo{}
	_, menuRepo, _ := reportFixtures()
	inventoryRepo := &fakeInventoryRepo{
		inventory: []*catalogEntity.InventoryItem{
			// Cantidad cero: 0 < 0*0.10 es falso, no entra al reporte
			{ID: 11, Name: "Boba", Quantity: 0},
			{ID: 12, Name: "Brown Sugar", Quantity: 10},
		},
	}
	uc := NewExcessReportUseCase(salesRepo, menuRepo, inventoryRepo)

	report, err := uc.Execute(context.Background(), "2023-04-14", "2023-04-15")
	require.NoError(t, err)

	require.Len(t, report.Items, 1)
	assert.Equal(t, 12, report.Items[0].ID)
	assert.Equal(t, 0, report.Items[0].Usage)
}

func TestExcessReportSkipsRetiredDrinks(t *testing.T) {
	t.Parallel()

	salesRepo, menuRepo, inventoryRepo := reportFixtures()
	at := time.Date(2023, 4, 14, 10, 0, 0, 0, time.UTC)
	sale, err := entity.NewSale(1, "Cash", entity.CartIDs{"RETIRED"}, decimal.Zero, at)
	require.NoError(t, err)
	salesRepo.sales = append(salesRepo.sales, sale)

	uc := NewExcessReportUseCase(salesRepo, menuRepo, inventoryRepo)
	report, err := uc.Execute(context.Background(), "2023-04-14", "2023-04-15")
	require.NoError(t, err)

	// La bebida retirada no aporta uso ni rompe el reporte
	require.Len(t, report.Items, 1)
	assert.Equal(t, 12, report.Items[0].ID)
}
