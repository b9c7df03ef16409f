package encoding

import (
	"errors"
	"strconv"
	"strings"
)

// Separator es el separador histórico de las columnas cart e ingredients.
// La base de datos original guarda listas como "11\12\13".
const Separator = `\`

// ErrSeparatorInValue indica que un valor contiene el separador y por lo
// tanto no puede codificarse sin corromper la lista.
var ErrSeparatorInValue = errors.New("value contains the list separator")

// JoinStrings codifica una lista de valores con el separador histórico.
// El formato no tiene escape: un valor que contenga el separador se rechaza
// en lugar de producir una fila corrupta como hacía el sistema original.
func JoinStrings(values []string) (string, error) {
	for _, v := range values {
		if strings.Contains(v, Separator) {
			return "", ErrSeparatorInValue
		}
	}
	return strings.Join(values, Separator), nil
}

// SplitStrings decodifica una lista separada por el separador histórico.
// Una cadena vacía representa la lista vacía.
func SplitStrings(encoded string) []string {
	if encoded == "" {
		return nil
	}
	parts := strings.Split(encoded, Separator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// JoinInts codifica una lista de enteros (ids de inventario).
func JoinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, Separator)
}

// SplitInts decodifica una lista de enteros. Las entradas no numéricas se
// devuelven aparte para que el llamador las reporte sin abortar la carga.
func SplitInts(encoded string) (ids []int, bad []string) {
	for _, p := range SplitStrings(encoded) {
		n, err := strconv.Atoi(p)
		if err != nil {
			bad = append(bad, p)
			continue
		}
		ids = append(ids, n)
	}
	return ids, bad
}
