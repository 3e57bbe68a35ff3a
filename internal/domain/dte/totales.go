package dte

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/dte-chile/pkg/sii"
)

// CalculatedTotals resultado del motor de totales antes de volcarse al
// documento. A diferencia de Totales, aquí todos los campos están presentes
// (en cero cuando no aplican).
type CalculatedTotals struct {
	MntNeto  int64
	MntExe   int64
	TasaIVA  decimal.Decimal
	IVA      int64
	MntTotal int64
}

// CalculateDetalleTotals suma el detalle particionado por exención y deriva
// IVA y total. Los MontoItem ya vienen redondeados al agregarse, por lo que
// la suma es entera sin redondeo intermedio. Un detalle vacío produce
// totales en cero, no un error.
func CalculateDetalleTotals(items []Detalle, tasa decimal.Decimal) CalculatedTotals {
	var neto, exento int64
	for _, item := range items {
		if item.Exento() {
			exento += item.MontoItem
		} else {
			neto += item.MontoItem
		}
	}

	iva := CalculateIVA(neto, tasa)
	return CalculatedTotals{
		MntNeto:  neto,
		MntExe:   exento,
		TasaIVA:  tasa,
		IVA:      iva,
		MntTotal: neto + iva + exento,
	}
}

// ApplyDscRcgGlobal aplica descuentos y recargos globales en orden de
// inserción. Cada ajuste porcentual se calcula sobre la base *corriente*
// (neto o exento según su destino), no sobre la original: el orden de
// inserción altera el resultado. Un descuento que dejaría la base negativa
// la deja en cero (descuento total).
//
// IVA y total se recalculan una sola vez al final de la cadena, no por
// ajuste, para no acumular error de redondeo.
func ApplyDscRcgGlobal(totals CalculatedTotals, ajustes []DscRcgGlobal, tasa decimal.Decimal) CalculatedTotals {
	neto := totals.MntNeto
	exento := totals.MntExe

	for _, a := range ajustes {
		base := neto
		if a.SobreExento() {
			base = exento
		}

		var monto int64
		if a.TpoValor == sii.ValorPorcentaje {
			monto = roundMonto(decimal.NewFromInt(base).Mul(a.ValorDR).Div(cien))
		} else {
			monto = roundMonto(a.ValorDR)
		}

		if a.TpoMov == sii.MovimientoDescuento {
			base -= monto
			if base < 0 {
				base = 0
			}
		} else {
			base += monto
		}

		if a.SobreExento() {
			exento = base
		} else {
			neto = base
		}
	}

	iva := CalculateIVA(neto, tasa)
	return CalculatedTotals{
		MntNeto:  neto,
		MntExe:   exento,
		TasaIVA:  tasa,
		IVA:      iva,
		MntTotal: neto + iva + exento,
	}
}
