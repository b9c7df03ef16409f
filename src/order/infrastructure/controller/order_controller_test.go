package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusaCS/POS-system-project/src/order/application/usecase"
	"github.com/yusaCS/POS-system-project/src/order/domain/entity"
)

// fakeSalesRepo repositorio de ventas en memoria para tests de transporte
type fakeSalesRepo struct {
	sales []*entity.Sale
}

func (f *fakeSalesRepo) Create(_ context.Context, sale *entity.Sale) error {
	f.sales = append(f.sales, sale)
	return nil
}

func (f *fakeSalesRepo) ListRecent(_ context.Context, _ int) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(f.sales))
	for i := len(f.sales) - 1; i >= 0; i-- {
		out = append(out, f.sales[i])
	}
	return out, nil
}

func (f *fakeSalesRepo) ListBetween(_ context.Context, _, _ string) ([]*entity.Sale, error) {
	return f.sales, nil
}

func newOrderRouter(repo *fakeSalesRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewOrderController(
		usecase.NewSubmitOrderUseCase(repo),
		usecase.NewOrderHistoryUseCase(repo),
	)
	ctrl.RegisterRoutes(router)
	return router
}

func TestSubmitOrderEndpoint(t *testing.T) {
	repo := &fakeSalesRepo{}
	router := newOrderRouter(repo)

	body := `{
		"cashier": 1,
		"sale_week": 15,
		"sale_date": "2023-04-15",
		"current_hour": "1400",
		"payment": "Cash",
		"cart": "M1\\M2\\M1",
		"order_total": "11.25"
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/submitOrder", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])

	require.Len(t, repo.sales, 1)
	assert.Equal(t, entity.CartIDs{"M1", "M2", "M1"}, repo.sales[0].Cart)
}

func TestSubmitOrderEndpointRejectsBadBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "sin payment",
			body: `{"sale_week":15,"sale_date":"2023-04-15","current_hour":"1400","cart":"M1"}`,
		},
		{
			name: "semana fuera de rango",
			body: `{"sale_week":60,"sale_date":"2023-04-15","current_hour":"1400","payment":"Cash"}`,
		},
		{
			name: "fecha con formato invalido",
			body: `{"sale_week":15,"sale_date":"15/04/2023","current_hour":"1400","payment":"Cash"}`,
		},
		{
			name: "hora con minutos",
			body: `{"sale_week":15,"sale_date":"2023-04-15","current_hour":"1430","payment":"Cash"}`,
		},
		{
			name: "json roto",
			body: `{`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeSalesRepo{}
			router := newOrderRouter(repo)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/submitOrder", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Empty(t, repo.sales)
		})
	}
}

func TestOrderHistoryEndpoint(t *testing.T) {
	repo := &fakeSalesRepo{}
	router := newOrderRouter(repo)

	for _, date := range []string{"2023-04-14", "2023-04-15"} {
		body := `{"cashier":1,"sale_week":15,"sale_date":"` + date + `","current_hour":"1400","payment":"Cash","cart":"M1","order_total":"3.50"}`
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/submitOrder", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orderhistory", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var sales []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sales))
	require.Len(t, sales, 2)
	// Más recientes primero y la columna cart en el formato histórico
	assert.Equal(t, "2023-04-15", sales[0]["sale_date"])
	assert.Equal(t, "M1", sales[0]["cart"])
}
