package dte_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/dte-chile/internal/domain/dte"
	"github.com/tu-usuario/dte-chile/pkg/sii"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func item(monto int64, exento bool) dte.Detalle {
	d := dte.Detalle{NmbItem: "Item", MontoItem: monto}
	if exento {
		exe := sii.ExencionNoAfecto
		d.IndExe = &exe
	}
	return d
}

func ajuste(tipo sii.TipoMovimiento, valor int64, esPorcentaje, sobreExento bool) dte.DscRcgGlobal {
	a := dte.DscRcgGlobal{
		TpoMov:   tipo,
		TpoValor: sii.ValorMonto,
		ValorDR:  decimal.NewFromInt(valor),
	}
	if esPorcentaje {
		a.TpoValor = sii.ValorPorcentaje
	}
	if sobreExento {
		exe := sii.ExencionNoAfecto
		a.IndExeDR = &exe
	}
	return a
}

// ── CalculateDetalleTotals ────────────────────────────────────────────────────

func TestCalculateDetalleTotals_SoloAfecto(t *testing.T) {
	totals := dte.CalculateDetalleTotals([]dte.Detalle{
		item(6000, false),
		item(4000, false),
	}, tasa19)

	assert.Equal(t, int64(10000), totals.MntNeto)
	assert.Equal(t, int64(0), totals.MntExe)
	assert.Equal(t, int64(1900), totals.IVA)
	assert.Equal(t, int64(11900), totals.MntTotal)
}

func TestCalculateDetalleTotals_MezclaAfectoYExento(t *testing.T) {
	totals := dte.CalculateDetalleTotals([]dte.Detalle{
		item(10000, false),
		item(5000, true),
	}, tasa19)

	assert.Equal(t, int64(10000), totals.MntNeto)
	assert.Equal(t, int64(5000), totals.MntExe)
	assert.Equal(t, int64(1900), totals.IVA)
	assert.Equal(t, int64(16900), totals.MntTotal)
}

func TestCalculateDetalleTotals_DetalleVacioDaCeros(t *testing.T) {
	// Detalle vacío produce totales en cero, no un error.
	totals := dte.CalculateDetalleTotals(nil, tasa19)

	assert.Equal(t, int64(0), totals.MntNeto)
	assert.Equal(t, int64(0), totals.MntExe)
	assert.Equal(t, int64(0), totals.IVA)
	assert.Equal(t, int64(0), totals.MntTotal)
}

func TestCalculateDetalleTotals_SoloExento(t *testing.T) {
	totals := dte.CalculateDetalleTotals([]dte.Detalle{item(5000, true)}, tasa19)

	assert.Equal(t, int64(0), totals.MntNeto)
	assert.Equal(t, int64(5000), totals.MntExe)
	assert.Equal(t, int64(0), totals.IVA)
	assert.Equal(t, int64(5000), totals.MntTotal)
}

// ── ApplyDscRcgGlobal ─────────────────────────────────────────────────────────

func TestApplyDscRcgGlobal_DescuentoPorcentualSobreNeto(t *testing.T) {
	base := dte.CalculateDetalleTotals([]dte.Detalle{item(10000, false)}, tasa19)

	result := dte.ApplyDscRcgGlobal(base, []dte.DscRcgGlobal{
		ajuste(sii.MovimientoDescuento, 10, true, false),
	}, tasa19)

	assert.Equal(t, int64(9000), result.MntNeto)
	assert.Equal(t, int64(1710), result.IVA)
	assert.Equal(t, int64(10710), result.MntTotal)
}

func TestApplyDscRcgGlobal_RecargoMontoFijo(t *testing.T) {
	base := dte.CalculateDetalleTotals([]dte.Detalle{item(10000, false)}, tasa19)

	result := dte.ApplyDscRcgGlobal(base, []dte.DscRcgGlobal{
		ajuste(sii.MovimientoRecargo, 2000, false, false),
	}, tasa19)

	assert.Equal(t, int64(12000), result.MntNeto)
	assert.Equal(t, int64(2280), result.IVA)
	assert.Equal(t, int64(14280), result.MntTotal)
}

func TestApplyDscRcgGlobal_SobreBaseCorrienteNoLaOriginal(t *testing.T) {
	// Dos descuentos del 10%: el segundo se calcula sobre 9000, no sobre
	// 10000. Neto final 8100, no 8000.
	base := dte.CalculateDetalleTotals([]dte.Detalle{item(10000, false)}, tasa19)

	result := dte.ApplyDscRcgGlobal(base, []dte.DscRcgGlobal{
		ajuste(sii.MovimientoDescuento, 10, true, false),
		ajuste(sii.MovimientoDescuento, 10, true, false),
	}, tasa19)

	assert.Equal(t, int64(8100), result.MntNeto)
	assert.Equal(t, int64(1539), result.IVA)
	assert.Equal(t, int64(9639), result.MntTotal)
}

func TestApplyDscRcgGlobal_ElOrdenImporta(t *testing.T) {
	// Descuento 50% y recargo fijo 1000 no conmutan.
	base := dte.CalculateDetalleTotals([]dte.Detalle{item(10000, false)}, tasa19)

	descPrimero := dte.ApplyDscRcgGlobal(base, []dte.DscRcgGlobal{
		ajuste(sii.MovimientoDescuento, 50, true, false),
		ajuste(sii.MovimientoRecargo, 1000, false, false),
	}, tasa19)
	recPrimero := dte.ApplyDscRcgGlobal(base, []dte.DscRcgGlobal{
		ajuste(sii.MovimientoRecargo, 1000, false, false),
		ajuste(sii.MovimientoDescuento, 50, true, false),
	}, tasa19)

	assert.Equal(t, int64(6000), descPrimero.MntNeto) // 10000·50% → 5000, +1000
	assert.Equal(t, int64(5500), recPrimero.MntNeto)  // 10000+1000 → 11000·50%
	assert.NotEqual(t, descPrimero.MntNeto, recPrimero.MntNeto)
}

func TestApplyDscRcgGlobal_DescuentoSobreExento(t *testing.T) {
	base := dte.CalculateDetalleTotals([]dte.Detalle{
		item(10000, false),
		item(5000, true),
	}, tasa19)

	result := dte.ApplyDscRcgGlobal(base, []dte.DscRcgGlobal{
		ajuste(sii.MovimientoDescuento, 20, true, true),
	}, tasa19)

	// El neto no se toca; el exento baja de 5000 a 4000.
	assert.Equal(t, int64(10000), result.MntNeto)
	assert.Equal(t, int64(4000), result.MntExe)
	assert.Equal(t, int64(1900), result.IVA)
	assert.Equal(t, int64(15900), result.MntTotal)
}

func TestApplyDscRcgGlobal_BaseNegativaSeDejaEnCero(t *testing.T) {
	// Descuento mayor que la base: piso en cero, descuento total.
	base := dte.CalculateDetalleTotals([]dte.Detalle{item(10000, false)}, tasa19)

	result := dte.ApplyDscRcgGlobal(base, []dte.DscRcgGlobal{
		ajuste(sii.MovimientoDescuento, 20000, false, false),
	}, tasa19)

	assert.Equal(t, int64(0), result.MntNeto)
	assert.Equal(t, int64(0), result.IVA)
	assert.Equal(t, int64(0), result.MntTotal)
}

func TestApplyDscRcgGlobal_IVASeRecalculaUnaVezAlFinal(t *testing.T) {
	// Tras cualquier cadena de ajustes el IVA debe ser exactamente
	// CalculateIVA(neto final), nunca una acumulación por paso.
	base := dte.CalculateDetalleTotals([]dte.Detalle{item(7777, false)}, tasa19)

	result := dte.ApplyDscRcgGlobal(base, []dte.DscRcgGlobal{
		ajuste(sii.MovimientoDescuento, 13, true, false),
		ajuste(sii.MovimientoRecargo, 500, false, false),
		ajuste(sii.MovimientoDescuento, 7, true, false),
	}, tasa19)

	assert.Equal(t, dte.CalculateIVA(result.MntNeto, tasa19), result.IVA)
	assert.Equal(t, result.MntNeto+result.IVA+result.MntExe, result.MntTotal)
}
