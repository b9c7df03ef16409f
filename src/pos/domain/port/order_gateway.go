package port

import (
	"context"

	orderEntity "github.com/yusaCS/POS-system-project/src/order/domain/entity"
)

// OrderGateway define el contrato para persistir una venta finalizada.
// Una sola llamada, sin reintentos: cualquier resultado no exitoso es
// fallo y el flujo de cobro decide qué hacer con el carrito.
type OrderGateway interface {
	Submit(ctx context.Context, sale *orderEntity.Sale) error
}
