package sii

import (
	"fmt"
	"strconv"
)

// MaxFolio valor máximo de folio aceptado por el SII.
const MaxFolio int64 = 999_999_999

// ValidateFolio valida que el folio esté en el rango aceptado por el SII.
func ValidateFolio(folio int64) error {
	if folio < 1 {
		return fmt.Errorf("sii: folio debe ser mayor a 0, se recibió %d", folio)
	}
	if folio > MaxFolio {
		return fmt.Errorf("sii: folio %d excede el máximo permitido (%d)", folio, MaxFolio)
	}
	return nil
}

// FormatFolio devuelve el folio con ceros a la izquierda hasta el ancho dado.
// Un folio fuera de rango devuelve cadena vacía (helper de presentación).
func FormatFolio(folio int64, width int) string {
	if ValidateFolio(folio) != nil {
		return ""
	}
	s := strconv.FormatInt(folio, 10)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
