package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/yusaCS/POS-system-project/src/order/domain/entity"
)

// OrderGatewayClient cliente HTTP contra el backend de ventas
// (POST /submitOrder). Implementa port.OrderGateway: una sola llamada
// por confirmación, sin reintentos; el reintento es decisión del cajero.
type OrderGatewayClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewOrderGatewayClient crea una nueva instancia del cliente
func NewOrderGatewayClient() *OrderGatewayClient {
	baseURL := os.Getenv("ORDER_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000" // Default para desarrollo local
	}

	return &OrderGatewayClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// Submit envía la venta finalizada. Cualquier status fuera de 2xx cuenta
// como fallo de persistencia.
func (c *OrderGatewayClient) Submit(ctx context.Context, sale *entity.Sale) error {
	payload, err := json.Marshal(sale)
	if err != nil {
		return fmt.Errorf("error marshalling sale: %w", err)
	}

	url := c.baseURL + "/submitOrder"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling order service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("order service returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
