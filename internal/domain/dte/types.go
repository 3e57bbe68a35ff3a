// Package dte modela el Documento Tributario Electrónico chileno (formato
// DTE_v10.xsd del SII) y su motor de cálculo de totales: agregación de
// detalle, descuentos/recargos globales y aritmética de IVA.
//
// Los nombres de campo siguen el esquema del SII (MntNeto, NroLinDet, etc.):
// son el vocabulario del dominio y así aparecen en toda la documentación del
// organismo. Los campos opcionales se modelan con punteros; nil significa
// "ausente del documento", distinto de presente-y-vacío.
//
// Todos los montos son pesos chilenos enteros (el peso no tiene subunidad).
// Cantidades, precios unitarios y tasas usan decimal.Decimal.
package dte

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/dte-chile/pkg/sii"
)

// IdDoc identificación del documento.
type IdDoc struct {
	TipoDTE       sii.TipoDTE
	Folio         int64
	FchEmis       string // YYYY-MM-DD
	IndServicio   *sii.IndicadorServicio
	IndTraslado   *sii.IndicadorTraslado
	FmaPago       *sii.FormaPago
	TermPagoGlosa *string // glosa del término de pago (max 100)
	TermPagoDias  *int
	FchVenc       *string // YYYY-MM-DD
}

// Emisor datos del emisor del documento.
type Emisor struct {
	RUTEmisor    string
	RznSoc       string // razón social (max 100)
	GiroEmis     string // giro (max 80)
	Acteco       []int  // 1 a 4 actividades económicas
	DirOrigen    string
	CmnaOrigen   string
	CdadOrigen   *string
	Telefono     []string // max 2
	CorreoEmisor *string
}

// Receptor datos del receptor del documento.
type Receptor struct {
	RUTRecep    string
	RznSocRecep string
	GiroRecep   *string
	DirRecep    string
	CmnaRecep   *string
	CdadRecep   *string
	Contacto    *string
	CorreoRecep *string
}

// ImptoRetenido impuesto adicional o retención declarado en Totales.
type ImptoRetenido struct {
	TipoImp  int // código del catálogo sii.TaxCodes
	TasaImp  decimal.Decimal
	MontoImp int64
}

// Totales montos totales del documento. MntNeto, MntExe, TasaIVA e IVA son
// opcionales: un documento exento no lleva neto ni IVA.
type Totales struct {
	MntNeto    *int64
	MntExe     *int64
	TasaIVA    *decimal.Decimal
	IVA        *int64
	ImptoReten []ImptoRetenido // max 20
	MntTotal   int64
}

// CdgItem código de identificación de un ítem (EAN13, PLU, interno, etc.).
type CdgItem struct {
	TpoCodigo string // max 10
	VlrCodigo string // max 35
}

// Subcantidad desglose de cantidad de un ítem.
type Subcantidad struct {
	TipoCantidad string // max 80
	Cantidad     decimal.Decimal
}

// SubDescuento desglose de descuento de un ítem.
type SubDescuento struct {
	TipoDscto  string // max 10
	ValorDscto decimal.Decimal
}

// SubRecargo desglose de recargo de un ítem.
type SubRecargo struct {
	TipoRecargo  string // max 10
	ValorRecargo decimal.Decimal
}

// Detalle línea de detalle del documento.
type Detalle struct {
	NroLinDet   int                    // 1..60, contiguo con la posición en el documento
	CdgItem     []CdgItem              // max 5
	IndExe      *sii.IndicadorExencion // nil = afecto a IVA
	NmbItem     string                 // max 80
	DscItem     *string                // max 1000
	QtyItem     *decimal.Decimal
	UnmdItem    *string // max 4
	PrcItem     *decimal.Decimal
	CodImpAdic  []int          // códigos del catálogo sii.TaxCodes, max 2
	Subcantidad []Subcantidad  // max 20
	SubDscto    []SubDescuento // max 20
	SubRecargo  []SubRecargo   // max 20
	MontoItem   int64 // monto total de la línea, siempre >= 0
}

// Exento indica si la línea está excluida de la base de IVA.
func (d Detalle) Exento() bool {
	return d.IndExe != nil
}

// DscRcgGlobal descuento o recargo aplicado al documento completo.
// Se aplican en orden de inserción sobre la base corriente, por lo que el
// orden importa: porcentajes encadenados no conmutan.
type DscRcgGlobal struct {
	NroLinDR int // 1..20
	TpoMov   sii.TipoMovimiento
	GlosaDR  *string // max 45
	TpoValor sii.TipoValor
	ValorDR  decimal.Decimal
	IndExeDR *sii.IndicadorExencion // presente: afecta el monto exento en vez del neto
}

// SobreExento indica si el ajuste se aplica sobre la base exenta.
func (d DscRcgGlobal) SobreExento() bool {
	return d.IndExeDR != nil
}

// Referencia vínculo a otro documento tributario.
type Referencia struct {
	NroLinRef int     // 1..40
	TpoDocRef *string // tipo del documento referenciado (max 3)
	FolioRef  *string // max 18
	FchRef    *string // YYYY-MM-DD
	CodRef    *sii.CodigoReferencia
	RazonRef  *string // max 90
}

// SubTotInfo subtotal informativo (no altera los totales del documento).
type SubTotInfo struct {
	NroSTI        int    // 1..20
	GlosaSTI      string // max 40
	OrdenSTI      int
	SubTotNetoSTI *int64
	SubTotIVASTI  *int64
	SubTotExeSTI  *int64
	ValSubtotSTI  *int64
}

// Comision comisión u otro cargo de liquidación-factura.
type Comision struct {
	NroLinCom  int // 1..20
	TipoMovim  sii.TipoMovimiento
	Glosa      *string // max 60
	ValComNeto *int64
	ValComExe  *int64
	ValComIVA  *int64
}

// Encabezado encabezado del documento.
type Encabezado struct {
	IdDoc    IdDoc
	Emisor   Emisor
	Receptor Receptor
	Totales  Totales
}

// Documento documento tributario electrónico terminado. Lo produce
// exclusivamente Build() de un builder y no se muta después: un documento
// nuevo requiere un builder nuevo.
type Documento struct {
	Encabezado   Encabezado
	Detalle      []Detalle      // 1..60
	SubTotInfo   []SubTotInfo   // max 20
	DscRcgGlobal []DscRcgGlobal // max 20
	Referencia   []Referencia   // max 40
	Comisiones   []Comision     // max 20
}
