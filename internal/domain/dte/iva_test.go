package dte_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/dte-chile/internal/domain/dte"
)

// ──────────────────────────────────────────────────────────────────────────────
// Aritmética de IVA: redondeo mitad-arriba a peso entero, y la propiedad que
// define a ExtractIVA: el IVA extraído de un total es el *resto* respecto del
// neto, de modo que neto + iva == total siempre cuadre exacto.
// ──────────────────────────────────────────────────────────────────────────────

var tasa19 = dte.DefaultTasaIVA

func TestCalculateIVA_ValoresConocidos(t *testing.T) {
	assert.Equal(t, int64(1900), dte.CalculateIVA(10000, tasa19))
	assert.Equal(t, int64(19), dte.CalculateIVA(100, tasa19))
	assert.Equal(t, int64(0), dte.CalculateIVA(0, tasa19))
	// 50 · 0.19 = 9.5 → redondeo mitad-arriba a 10
	assert.Equal(t, int64(10), dte.CalculateIVA(50, tasa19))
	// 1 · 0.19 = 0.19 → 0
	assert.Equal(t, int64(0), dte.CalculateIVA(1, tasa19))
}

func TestCalculateNeto_ValoresConocidos(t *testing.T) {
	assert.Equal(t, int64(10000), dte.CalculateNeto(11900, tasa19))
	assert.Equal(t, int64(84), dte.CalculateNeto(100, tasa19))
	assert.Equal(t, int64(0), dte.CalculateNeto(0, tasa19))
}

func TestCalculateTotal_SumaNetoMasIVA(t *testing.T) {
	assert.Equal(t, int64(11900), dte.CalculateTotal(10000, tasa19))
	assert.Equal(t, int64(60), dte.CalculateTotal(50, tasa19))
}

func TestRoundTrip_NetoTotalNeto(t *testing.T) {
	// Ley de ida y vuelta: CalculateNeto(CalculateTotal(neto)) == neto,
	// y neto + CalculateIVA(neto) == CalculateTotal(neto), exacto.
	tasas := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(10),
		tasa19,
		decimal.NewFromInt(21),
	}
	for _, tasa := range tasas {
		for neto := int64(0); neto <= 3000; neto++ {
			total := dte.CalculateTotal(neto, tasa)
			assert.Equal(t, neto, dte.CalculateNeto(total, tasa),
				"ida y vuelta neto=%d tasa=%s", neto, tasa)
			assert.Equal(t, total, neto+dte.CalculateIVA(neto, tasa),
				"suma exacta neto=%d tasa=%s", neto, tasa)
		}
	}
}

func TestExtractIVA_EsElResto(t *testing.T) {
	// Propiedad definitoria: CalculateNeto(t) + ExtractIVA(t) == t para todo
	// total, sin tolerancia. ExtractIVA NO es CalculateIVA∘CalculateNeto:
	// esa composición redondea por separado y puede diferir en 1 peso.
	for total := int64(0); total <= 5000; total++ {
		neto := dte.CalculateNeto(total, tasa19)
		iva := dte.ExtractIVA(total, tasa19)
		assert.Equal(t, total, neto+iva, "total=%d", total)
	}
}

func TestExtractIVA_ValoresConocidos(t *testing.T) {
	assert.Equal(t, int64(1900), dte.ExtractIVA(11900, tasa19))
	assert.Equal(t, int64(16), dte.ExtractIVA(100, tasa19))
}

func TestIsNetoConsistent(t *testing.T) {
	assert.True(t, dte.IsNetoConsistent(10000, 1900, tasa19))
	assert.False(t, dte.IsNetoConsistent(10000, 1899, tasa19))
	assert.True(t, dte.IsNetoConsistent(0, 0, tasa19))
}

func TestIsTotalConsistent_SinTolerancia(t *testing.T) {
	assert.True(t, dte.IsTotalConsistent(10000, 1900, 11900))
	// Un peso de diferencia ya es inconsistente: este chequeo es exacto,
	// a diferencia del margen de redondeo que admite ValidateTotales.
	assert.False(t, dte.IsTotalConsistent(10000, 1900, 11901))
}
