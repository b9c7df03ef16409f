package entity

import (
	"log"

	catalogEntity "github.com/yusaCS/POS-system-project/src/catalog/domain/entity"
	catalogPort "github.com/yusaCS/POS-system-project/src/catalog/domain/port"
)

// CustomizationLevel es la cantidad pedida de un ingrediente relativa a la
// receta estándar
type CustomizationLevel string

// Niveles válidos; el default es Normal y nunca aparece en las notas
const (
	LevelNone   CustomizationLevel = "None"
	LevelLight  CustomizationLevel = "Light"
	LevelNormal CustomizationLevel = "Normal"
	LevelExtra  CustomizationLevel = "Extra"
)

// IsValid reporta si el nivel es uno de los cuatro conocidos
func (l CustomizationLevel) IsValid() bool {
	switch l {
	case LevelNone, LevelLight, LevelNormal, LevelExtra:
		return true
	}
	return false
}

type customizationKey struct {
	menuItemID   string
	ingredientID int
}

// CustomizationStore guarda las selecciones (bebida, ingrediente) → nivel
// del diálogo de personalización. Vive mientras dura el diálogo: al
// cerrarlo se resetea todo lo de esa bebida para que nada se filtre a la
// siguiente.
type CustomizationStore struct {
	levels map[customizationKey]CustomizationLevel
}

// NewCustomizationStore crea una tienda vacía (todo en Normal)
func NewCustomizationStore() *CustomizationStore {
	return &CustomizationStore{
		levels: make(map[customizationKey]CustomizationLevel),
	}
}

// Level retorna el nivel seleccionado, Normal si no hay selección
func (s *CustomizationStore) Level(menuItemID string, ingredientID int) CustomizationLevel {
	if level, ok := s.levels[customizationKey{menuItemID, ingredientID}]; ok {
		return level
	}
	return LevelNormal
}

// SetLevel sobreescribe la selección para el par (bebida, ingrediente)
func (s *CustomizationStore) SetLevel(menuItemID string, ingredientID int, level CustomizationLevel) error {
	if !level.IsValid() {
		return ErrInvalidLevel
	}
	s.levels[customizationKey{menuItemID, ingredientID}] = level
	return nil
}

// ResetAllForItem vuelve todos los ingredientes de la bebida a Normal.
// Se invoca al cerrar el diálogo, por cancelación o por agregar al carrito.
func (s *CustomizationStore) ResetAllForItem(menuItemID string) {
	for key := range s.levels {
		if key.menuItemID == menuItemID {
			delete(s.levels, key)
		}
	}
}

// NotesFor deriva las notas de personalización de una bebida: una línea
// "<Nivel> <nombre>" por cada ingrediente con nivel distinto de Normal
// (None se muestra como "No <nombre>"), en el orden de la receta. Un id de
// ingrediente que no resuelve contra inventario se reporta y se salta.
func (s *CustomizationStore) NotesFor(item catalogEntity.MenuItem, catalog catalogPort.CatalogReader) string {
	notes := ""
	for _, ingredientID := range item.Ingredients {
		ingredient, ok := catalog.FindInventoryItem(ingredientID)
		if !ok {
			log.Printf("Ingredient ID %d not found", ingredientID)
			continue
		}

		level := s.Level(item.ID, ingredientID)
		if level == LevelNormal {
			continue
		}

		line := string(level) + " " + ingredient.Name
		if level == LevelNone {
			line = "No " + ingredient.Name
		}
		if notes != "" {
			notes += "\n"
		}
		notes += line
	}
	return notes
}
