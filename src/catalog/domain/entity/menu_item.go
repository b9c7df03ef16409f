package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/yusaCS/POS-system-project/src/shared/encoding"
)

// IngredientList es la lista ordenada de ids de inventario que componen una
// bebida. En la base de datos y en la API pública viaja como la cadena
// histórica separada por barras invertidas ("11\12\13").
type IngredientList []int

// ParseIngredientList decodifica la columna ingredients. Los ids no
// numéricos se devuelven aparte para que el llamador los reporte.
func ParseIngredientList(raw string) (IngredientList, []string) {
	ids, bad := encoding.SplitInts(raw)
	return IngredientList(ids), bad
}

// Encode devuelve la representación histórica de la lista.
func (l IngredientList) Encode() string {
	return encoding.JoinInts([]int(l))
}

// MarshalJSON mantiene el formato de cadena que consume el frontend.
func (l IngredientList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Encode())
}

// UnmarshalJSON acepta la cadena histórica; los ids no numéricos se
// descartan aquí y se validan al resolverlos contra el inventario.
func (l *IngredientList) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ids, _ := ParseIngredientList(raw)
	*l = ids
	return nil
}

// MenuItem representa una bebida del menú (snapshot inmutable por fetch)
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Ingredients IngredientList  `json:"ingredients"`
	DrinkOrder  int             `json:"drink_order"`
}

// NewMenuItem crea una bebida validando en el borde de deserialización
func NewMenuItem(id, name string, price decimal.Decimal, ingredients IngredientList) (*MenuItem, error) {
	if id == "" {
		return nil, ErrMenuIDRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	return &MenuItem{
		ID:          id,
		Name:        name,
		Price:       price,
		Ingredients: ingredients,
	}, nil
}
