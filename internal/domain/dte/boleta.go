package dte

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/dte-chile/pkg/sii"
)

// brutoStrategy estrategia de totales para boletas: los precios mostrados ya
// incluyen IVA, así que el impuesto se extrae del bruto con la fórmula
// invertida en vez de sumarse sobre el neto:
//
//	iva  = round(bruto / (1 + tasa/100) · tasa/100)
//	neto = bruto - iva
//	total = bruto + exento
//
// Los ajustes globales, si existen, se aplican sobre el neto cuando hay
// monto afecto y sobre el exento cuando no lo hay; tras aplicarlos el IVA se
// recalcula como round(neto·tasa/100) y el total se resuma. Esta estrategia
// reemplaza por completo el cálculo neto-primero: nunca lo delega.
type brutoStrategy struct{}

func (brutoStrategy) calculate(items []Detalle, ajustes []DscRcgGlobal, tasa decimal.Decimal) CalculatedTotals {
	var bruto, exento int64
	for _, item := range items {
		if item.Exento() {
			exento += item.MontoItem
		} else {
			bruto += item.MontoItem
		}
	}

	factor := uno.Add(tasa.Div(cien))
	iva := roundMonto(decimal.NewFromInt(bruto).Div(factor).Mul(tasa).Div(cien))
	neto := bruto - iva

	if len(ajustes) == 0 {
		return CalculatedTotals{
			MntNeto:  neto,
			MntExe:   exento,
			TasaIVA:  tasa,
			IVA:      iva,
			MntTotal: bruto + exento,
		}
	}

	// Con monto afecto los ajustes van al neto; si la boleta es puramente
	// exenta, al exento. Base corriente y piso cero, igual que en facturas.
	sobreNeto := bruto > 0
	for _, a := range ajustes {
		base := exento
		if sobreNeto {
			base = neto
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

		if sobreNeto {
			neto = base
		} else {
			exento = base
		}
	}

	iva = CalculateIVA(neto, tasa)
	return CalculatedTotals{
		MntNeto:  neto,
		MntExe:   exento,
		TasaIVA:  tasa,
		IVA:      iva,
		MntTotal: neto + iva + exento,
	}
}

// BoletaBuilder construye boletas electrónicas (tipos 39 y 41). Comparte el
// estado y los setters de DTEBuilder pero calcula totales con brutoStrategy
// y mantiene un modo de exención persistente que se aplica a los ítems de
// conveniencia AddProducto y AddServicio.
type BoletaBuilder struct {
	*DTEBuilder
	exentoPorDefecto bool
}

// NewBoletaBuilder crea un builder de boletas en modo afecto.
func NewBoletaBuilder() *BoletaBuilder {
	base := NewDTEBuilder()
	base.strategy = brutoStrategy{}
	return &BoletaBuilder{DTEBuilder: base}
}

// Afecta configura boleta electrónica (tipo 39): los ítems de conveniencia
// que se agreguen después quedan afectos a IVA.
func (b *BoletaBuilder) Afecta() *BoletaBuilder {
	b.SetTipo(sii.TipoBoletaElectronica)
	b.exentoPorDefecto = false
	return b
}

// Exenta configura boleta exenta (tipo 41): los ítems de conveniencia que se
// agreguen después quedan marcados exentos.
func (b *BoletaBuilder) Exenta() *BoletaBuilder {
	b.SetTipo(sii.TipoBoletaExenta)
	b.exentoPorDefecto = true
	return b
}

// AddProducto agrega un producto con cantidad y precio unitario (con IVA
// incluido). La exención se toma del modo vigente.
func (b *BoletaBuilder) AddProducto(nombre string, cantidad, precio decimal.Decimal) *BoletaBuilder {
	b.AddItem(ItemData{
		Nombre:   nombre,
		Cantidad: &cantidad,
		Precio:   &precio,
		Exento:   b.exentoPorDefecto,
	})
	return b
}

// AddServicio agrega un servicio como línea de cantidad 1 y monto directo.
// La exención se toma del modo vigente.
func (b *BoletaBuilder) AddServicio(glosa string, monto int64) *BoletaBuilder {
	qty := decimal.NewFromInt(1)
	b.AddItem(ItemData{
		Nombre:   glosa,
		Cantidad: &qty,
		Monto:    &monto,
		Exento:   b.exentoPorDefecto,
	})
	return b
}

// Build emite la boleta. Si no se fijaron totales (ni por CalculateTotals ni
// por SetTotales) y hay detalle, los calcula automáticamente con la fórmula
// de precios brutos y la tasa por defecto.
func (b *BoletaBuilder) Build() (*Documento, error) {
	if b.totales == nil && len(b.detalle) > 0 {
		if err := b.CalculateTotals(DefaultTasaIVA); err != nil {
			return nil, err
		}
	}
	return b.DTEBuilder.Build()
}
