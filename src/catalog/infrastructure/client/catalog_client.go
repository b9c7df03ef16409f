package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/yusaCS/POS-system-project/src/catalog/domain/entity"
)

// CatalogClient cliente HTTP contra el backend del catálogo
// (GET /menu y GET /inventory). Implementa port.CatalogSource.
type CatalogClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewCatalogClient crea una nueva instancia del cliente
func NewCatalogClient() *CatalogClient {
	baseURL := os.Getenv("CATALOG_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000" // Default para desarrollo local
	}

	return &CatalogClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// FetchMenu obtiene el menú completo
func (c *CatalogClient) FetchMenu(ctx context.Context) ([]*entity.MenuItem, error) {
	var items []*entity.MenuItem
	if err := c.getJSON(ctx, "/menu", &items); err != nil {
		return nil, fmt.Errorf("error fetching menu: %w", err)
	}
	return items, nil
}

// FetchInventory obtiene el inventario completo
func (c *CatalogClient) FetchInventory(ctx context.Context) ([]*entity.InventoryItem, error) {
	var items []*entity.InventoryItem
	if err := c.getJSON(ctx, "/inventory", &items); err != nil {
		return nil, fmt.Errorf("error fetching inventory: %w", err)
	}
	return items, nil
}

func (c *CatalogClient) getJSON(ctx context.Context, path string, out interface{}) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling catalog service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog service returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error unmarshalling catalog response: %w", err)
	}
	return nil
}
