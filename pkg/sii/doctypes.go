// Package sii contiene catálogos y constantes del SII (Servicio de Impuestos
// Internos, Chile) para Documentos Tributarios Electrónicos, según el formato
// DTE_v10.xsd y la Resolución Ex. 45/2003. Son tablas de solo lectura; pueden
// compartirse entre goroutines sin sincronización.
package sii

// TipoDTE código de tipo de documento tributario electrónico.
type TipoDTE int

// =============================================================================
// Tipos de DTE (columna "Tipo de Documento" del formato SII)
// =============================================================================

const (
	TipoFacturaElectronica     TipoDTE = 33  // Factura Electrónica
	TipoFacturaExenta          TipoDTE = 34  // Factura No Afecta o Exenta Electrónica
	TipoBoletaElectronica      TipoDTE = 39  // Boleta Electrónica
	TipoBoletaExenta           TipoDTE = 41  // Boleta No Afecta o Exenta Electrónica
	TipoLiquidacionFactura     TipoDTE = 43  // Liquidación-Factura Electrónica
	TipoFacturaCompra          TipoDTE = 46  // Factura de Compra Electrónica
	TipoGuiaDespacho           TipoDTE = 52  // Guía de Despacho Electrónica
	TipoNotaDebito             TipoDTE = 56  // Nota de Débito Electrónica
	TipoNotaCredito            TipoDTE = 61  // Nota de Crédito Electrónica
	TipoFacturaExportacion     TipoDTE = 110 // Factura de Exportación Electrónica
	TipoNotaDebitoExportacion  TipoDTE = 111 // Nota de Débito de Exportación Electrónica
	TipoNotaCreditoExportacion TipoDTE = 112 // Nota de Crédito de Exportación Electrónica
)

// DocumentType describe un tipo de DTE del catálogo SII.
type DocumentType struct {
	Code         TipoDTE
	Name         string
	Abbreviation string
	Electronic   bool
	Afecto       bool // afecto a IVA
}

// DocumentTypes catálogo de tipos de DTE indexado por código.
var DocumentTypes = map[TipoDTE]DocumentType{
	TipoFacturaElectronica:     {TipoFacturaElectronica, "Factura Electrónica", "FE", true, true},
	TipoFacturaExenta:          {TipoFacturaExenta, "Factura Exenta Electrónica", "FEE", true, false},
	TipoBoletaElectronica:      {TipoBoletaElectronica, "Boleta Electrónica", "BE", true, true},
	TipoBoletaExenta:           {TipoBoletaExenta, "Boleta Exenta Electrónica", "BEE", true, false},
	TipoLiquidacionFactura:     {TipoLiquidacionFactura, "Liquidación-Factura Electrónica", "LFE", true, true},
	TipoFacturaCompra:          {TipoFacturaCompra, "Factura de Compra Electrónica", "FCE", true, true},
	TipoGuiaDespacho:           {TipoGuiaDespacho, "Guía de Despacho Electrónica", "GDE", true, false},
	TipoNotaDebito:             {TipoNotaDebito, "Nota de Débito Electrónica", "NDE", true, true},
	TipoNotaCredito:            {TipoNotaCredito, "Nota de Crédito Electrónica", "NCE", true, true},
	TipoFacturaExportacion:     {TipoFacturaExportacion, "Factura de Exportación Electrónica", "FEX", true, false},
	TipoNotaDebitoExportacion:  {TipoNotaDebitoExportacion, "Nota de Débito de Exportación Electrónica", "NDEX", true, false},
	TipoNotaCreditoExportacion: {TipoNotaCreditoExportacion, "Nota de Crédito de Exportación Electrónica", "NCEX", true, false},
}

// GetDocumentType devuelve el tipo de documento del catálogo.
func GetDocumentType(code TipoDTE) (DocumentType, bool) {
	dt, ok := DocumentTypes[code]
	return dt, ok
}

// IsValidDocumentType indica si el código pertenece al catálogo SII.
func IsValidDocumentType(code TipoDTE) bool {
	_, ok := DocumentTypes[code]
	return ok
}

// IsAfecto indica si el tipo de documento está afecto a IVA.
// Un código desconocido se considera no afecto.
func IsAfecto(code TipoDTE) bool {
	return DocumentTypes[code].Afecto
}
