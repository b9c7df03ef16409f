package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yusaCS/POS-system-project/src/shared/encoding"
)

// CartIDs es la secuencia de ids de bebida de una venta, en el orden en que
// se agregaron al carrito. En la columna cart viaja como la cadena histórica
// separada por barras invertidas ("M1\M2\M1").
type CartIDs []string

// ParseCartIDs decodifica la columna cart
func ParseCartIDs(raw string) CartIDs {
	return CartIDs(encoding.SplitStrings(raw))
}

// Encode devuelve la representación histórica. Un id que contenga el
// separador se rechaza; el sistema original corrompía la fila en silencio.
func (c CartIDs) Encode() (string, error) {
	return encoding.JoinStrings([]string(c))
}

// MarshalJSON mantiene el formato de cadena que persiste la base
func (c CartIDs) MarshalJSON() ([]byte, error) {
	raw, err := c.Encode()
	if err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

// UnmarshalJSON acepta la cadena histórica
func (c *CartIDs) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = ParseCartIDs(raw)
	return nil
}

// Sale representa una venta finalizada (fila de sales_history).
// Inmutable una vez construida; nunca se modifica después de persistir.
type Sale struct {
	ID          uuid.UUID       `json:"id"`
	Cashier     int             `json:"cashier"`
	SaleWeek    int             `json:"sale_week"`
	SaleDate    string          `json:"sale_date"`
	CurrentHour string          `json:"current_hour"`
	Payment     string          `json:"payment"`
	Cart        CartIDs         `json:"cart"`
	OrderTotal  decimal.Decimal `json:"order_total"`
}

// NewSale construye una venta con los campos temporales derivados de `at`
// en UTC. El total puede ser cero (venta vacía cobrada en efectivo).
func NewSale(cashier int, payment string, cart CartIDs, orderTotal decimal.Decimal, at time.Time) (*Sale, error) {
	if payment == "" {
		return nil, ErrPaymentRequired
	}
	if orderTotal.LessThan(decimal.Zero) {
		return nil, ErrNegativeTotal
	}
	// Validar la codificación ahora, no al persistir
	if _, err := cart.Encode(); err != nil {
		return nil, err
	}

	utc := at.UTC()
	return &Sale{
		ID:          uuid.New(),
		Cashier:     cashier,
		SaleWeek:    SaleWeekOf(utc),
		SaleDate:    utc.Format("2006-01-02"),
		CurrentHour: utc.Format("15") + "00",
		Payment:     payment,
		Cart:        cart,
		OrderTotal:  orderTotal,
	}, nil
}

// SaleWeekOf calcula la semana de venta: día del año dividido entre 7,
// redondeado hacia arriba, base 1 (1 de enero = semana 1).
func SaleWeekOf(t time.Time) int {
	return (t.UTC().YearDay() + 6) / 7
}
