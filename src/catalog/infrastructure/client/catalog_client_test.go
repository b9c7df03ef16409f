package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogClientFetchesBothSnapshots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/menu":
			w.Write([]byte(`[{"id":"M1","name":"Brown Sugar Boba Milk","price":"3.50","ingredients":"11\\12","drink_order":1}]`))
		case "/inventory":
			w.Write([]byte(`[{"id":11,"name":"Boba","quantity":100,"price":"0.30"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	t.Setenv("CATALOG_BASE_URL", server.URL)
	client := NewCatalogClient()

	menu, err := client.FetchMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "M1", menu[0].ID)
	assert.Equal(t, []int{11, 12}, []int(menu[0].Ingredients))
	assert.True(t, menu[0].Price.Equal(decimal.RequireFromString("3.50")))

	inventory, err := client.FetchInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, inventory, 1)
	assert.Equal(t, "Boba", inventory[0].Name)
}

func TestCatalogClientPropagatesHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	t.Setenv("CATALOG_BASE_URL", server.URL)
	client := NewCatalogClient()

	_, err := client.FetchMenu(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
