package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/dte-chile/pkg/format"
)

func TestFormatCLP_AgrupaMiles(t *testing.T) {
	assert.Equal(t, "$1.234.567", format.FormatCLP(1234567))
	assert.Equal(t, "$0", format.FormatCLP(0))
	assert.Equal(t, "$999", format.FormatCLP(999))
	assert.Equal(t, "$11.900", format.FormatCLP(11900))
}

func TestFormatCLPPlain_SinSimbolo(t *testing.T) {
	assert.Equal(t, "1.234.567", format.FormatCLPPlain(1234567))
}

func TestParseMonto_FormatosChilenos(t *testing.T) {
	assert.Equal(t, int64(1234567), format.ParseMonto("$1.234.567"))
	assert.Equal(t, int64(1234567), format.ParseMonto("1.234.567"))
	assert.Equal(t, int64(11900), format.ParseMonto("11900"))
	assert.Equal(t, int64(-500), format.ParseMonto("-500"))
}

func TestParseMonto_ComaDecimalTrunca(t *testing.T) {
	// Los pesos no tienen subunidad: la parte decimal se descarta.
	assert.Equal(t, int64(1500), format.ParseMonto("1.500,75"))
}

func TestParseMonto_MalformadoDevuelveCero(t *testing.T) {
	// Coerción silenciosa: helpers de presentación no retornan error.
	assert.Equal(t, int64(0), format.ParseMonto(""))
	assert.Equal(t, int64(0), format.ParseMonto("abc"))
	assert.Equal(t, int64(0), format.ParseMonto("$"))
}

func TestFormatPhone_MovilConPrefijo(t *testing.T) {
	assert.Equal(t, "+56 9 1234 5678", format.FormatPhone("+56 9 1234 5678"))
	assert.Equal(t, "+56 9 1234 5678", format.FormatPhone("912345678"))
	assert.Equal(t, "+56 9 1234 5678", format.FormatPhone("56912345678"))
}

func TestFormatPhone_Fijo(t *testing.T) {
	assert.Equal(t, "+56 2 2123 456", format.FormatPhone("22123456"))
}

func TestFormatPhone_InvalidoDevuelveVacio(t *testing.T) {
	assert.Equal(t, "", format.FormatPhone("123"))
	assert.Equal(t, "", format.FormatPhone(""))
	assert.Equal(t, "", format.FormatPhone("1234567890123"))
}

func TestCleanPhone_QuitaPrefijoPais(t *testing.T) {
	assert.Equal(t, "912345678", format.CleanPhone("+56 9 1234 5678"))
	assert.Equal(t, "22123456", format.CleanPhone("2-212-3456"))
}
