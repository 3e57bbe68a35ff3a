// Package format contiene helpers de presentación (moneda, teléfono).
// Son lenientes por diseño: entradas malformadas devuelven cadena vacía o
// cero en vez de error. Esa lenidad es exclusiva de la capa de presentación;
// el núcleo tributario nunca la replica.
package format

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// clp printer con agrupación de miles chilena (punto).
var clp = message.NewPrinter(language.MustParse("es-CL"))

// FormatCLP formatea un monto en pesos chilenos: 1234567 → "$1.234.567".
func FormatCLP(monto int64) string {
	return clp.Sprintf("$%d", monto)
}

// FormatCLPPlain formatea sin símbolo: 1234567 → "1.234.567".
func FormatCLPPlain(monto int64) string {
	return clp.Sprintf("%d", monto)
}

// ParseMonto extrae un monto entero de un string con formato chileno
// ("$1.234.567", "1.234.567"). Entrada malformada devuelve 0.
func ParseMonto(s string) int64 {
	var b strings.Builder
	neg := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			neg = true
		case r == '$' || r == '.' || r == ' ':
			// separadores y símbolo se ignoran
		case r == ',':
			// coma decimal: los pesos no tienen subunidad, se trunca
			goto done
		default:
			return 0
		}
	}
done:
	digits := b.String()
	if digits == "" {
		return 0
	}
	var n int64
	for i := 0; i < len(digits); i++ {
		n = n*10 + int64(digits[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}
