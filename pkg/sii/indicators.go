package sii

// =============================================================================
// Indicadores y enumeraciones del formato DTE (campos FmaPago, IndTraslado,
// IndServicio, IndExe, TpoMov, TpoValor, CodRef)
// =============================================================================

// FormaPago forma de pago declarada en IdDoc.
type FormaPago int

const (
	FormaPagoContado  FormaPago = 1
	FormaPagoCredito  FormaPago = 2
	FormaPagoSinCosto FormaPago = 3
)

// FormasPago nombres de las formas de pago.
var FormasPago = map[FormaPago]string{
	FormaPagoContado:  "Contado",
	FormaPagoCredito:  "Crédito",
	FormaPagoSinCosto: "Sin Costo",
}

// TipoMovimiento descuento o recargo (campo TpoMov / TipoMovim).
type TipoMovimiento string

const (
	MovimientoDescuento TipoMovimiento = "D"
	MovimientoRecargo   TipoMovimiento = "R"
)

// TipoValor porcentaje o monto fijo (campo TpoValor).
type TipoValor string

const (
	ValorPorcentaje TipoValor = "%"
	ValorMonto      TipoValor = "$"
)

// CodigoReferencia motivo de la referencia en notas de crédito/débito.
type CodigoReferencia int

const (
	ReferenciaAnula         CodigoReferencia = 1 // Anula documento de referencia
	ReferenciaCorrigeTexto  CodigoReferencia = 2 // Corrige texto del documento de referencia
	ReferenciaCorrigeMontos CodigoReferencia = 3 // Corrige montos
)

// CodigosReferencia nombres de los códigos de referencia.
var CodigosReferencia = map[CodigoReferencia]string{
	ReferenciaAnula:         "Anula Documento de Referencia",
	ReferenciaCorrigeTexto:  "Corrige Texto Documento Referencia",
	ReferenciaCorrigeMontos: "Corrige Montos",
}

// IndicadorExencion motivo por el cual el ítem no está afecto a IVA (IndExe).
type IndicadorExencion int

const (
	ExencionNoAfecto        IndicadorExencion = 1 // No afecto o exento de IVA (Art. 12 letra E)
	ExencionNoFacturable    IndicadorExencion = 2 // Producto o servicio no facturable
	ExencionGarantiaEnvases IndicadorExencion = 3 // Garantía de depósito por envases
	ExencionItemNoVenta     IndicadorExencion = 4 // Ítem no venta
	ExencionItemARebajar    IndicadorExencion = 5 // Ítem a rebajar
	ExencionNoFacturableNeg IndicadorExencion = 6 // Producto o servicio no facturable negativo
)

// IndicadorTraslado motivo del traslado en guías de despacho.
type IndicadorTraslado int

// IndicadoresTraslado nombres de los indicadores de traslado (guía de despacho).
var IndicadoresTraslado = map[IndicadorTraslado]string{
	1: "Operación constituye venta",
	2: "Ventas por efectuar",
	3: "Consignaciones",
	4: "Entrega gratuita",
	5: "Traslados internos",
	6: "Otros traslados no venta",
	7: "Guía de devolución",
	8: "Traslado para exportación (no venta)",
	9: "Venta para exportación",
}

// IndicadorServicio tipo de servicio facturado.
type IndicadorServicio int

// IndicadoresServicio nombres de los indicadores de servicio.
var IndicadoresServicio = map[IndicadorServicio]string{
	1: "Factura de Servicios Periódicos",
	2: "Factura de Servicios Periódicos Domiciliarios",
	3: "Factura de Boleta",
	4: "Factura de Servicios de Hotelería",
}

// TipoDespacho responsable del despacho en guías.
type TipoDespacho int

// TiposDespacho nombres de los tipos de despacho.
var TiposDespacho = map[TipoDespacho]string{
	1: "Despacho por cuenta del emisor",
	2: "Despacho por cuenta del receptor",
	3: "Despacho por cuenta de terceros",
}
