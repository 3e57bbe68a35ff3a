package dte

import "github.com/shopspring/decimal"

// DefaultTasaIVA tasa de IVA vigente en Chile, en puntos porcentuales.
var DefaultTasaIVA = decimal.NewFromInt(19)

var (
	cien = decimal.NewFromInt(100)
	uno  = decimal.NewFromInt(1)
)

// roundMonto redondea a peso entero (mitad hacia arriba).
func roundMonto(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// CalculateIVA calcula el IVA a partir del monto neto: round(neto·tasa/100).
func CalculateIVA(neto int64, tasa decimal.Decimal) int64 {
	return roundMonto(decimal.NewFromInt(neto).Mul(tasa).Div(cien))
}

// CalculateNeto extrae el monto neto de un total con IVA incluido:
// round(total / (1 + tasa/100)).
func CalculateNeto(total int64, tasa decimal.Decimal) int64 {
	return roundMonto(decimal.NewFromInt(total).Div(uno.Add(tasa.Div(cien))))
}

// CalculateTotal calcula el total a partir del neto: neto + IVA(neto).
func CalculateTotal(neto int64, tasa decimal.Decimal) int64 {
	return neto + CalculateIVA(neto, tasa)
}

// ExtractIVA extrae el IVA de un total con IVA incluido como resto:
// total - CalculateNeto(total). No equivale en general a
// CalculateIVA(CalculateNeto(total)) por el redondeo independiente; la forma
// resto garantiza que neto + iva == total exactamente.
func ExtractIVA(total int64, tasa decimal.Decimal) int64 {
	return total - CalculateNeto(total, tasa)
}

// IsNetoConsistent verifica que el IVA declarado corresponda al neto.
func IsNetoConsistent(neto, iva int64, tasa decimal.Decimal) bool {
	return CalculateIVA(neto, tasa) == iva
}

// IsTotalConsistent verifica neto + iva == total, sin tolerancia.
// Es un chequeo aritmético puro, distinto del chequeo laxo de ValidateTotales
// sobre un documento completo.
func IsTotalConsistent(neto, iva, total int64) bool {
	return neto+iva == total
}
