package dte

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/dte-chile/pkg/sii"
)

// totalsStrategy calcula los totales de un documento a partir del detalle y
// los ajustes globales acumulados. El builder estándar usa netoFirstStrategy
// (precios netos, IVA hacia arriba); la boleta usa brutoStrategy (precios con
// IVA incluido, IVA extraído hacia abajo). Se elige por modo de documento al
// construir el builder, nunca por herencia.
type totalsStrategy interface {
	calculate(items []Detalle, ajustes []DscRcgGlobal, tasa decimal.Decimal) CalculatedTotals
}

// netoFirstStrategy estrategia estándar: agrega el detalle y aplica los
// ajustes globales sobre el resultado.
type netoFirstStrategy struct{}

func (netoFirstStrategy) calculate(items []Detalle, ajustes []DscRcgGlobal, tasa decimal.Decimal) CalculatedTotals {
	totals := CalculateDetalleTotals(items, tasa)
	if len(ajustes) > 0 {
		totals = ApplyDscRcgGlobal(totals, ajustes, tasa)
	}
	return totals
}

// EmisorData datos de entrada para el emisor. Los campos opcionales vacíos
// se omiten del documento (no se guardan como cadena vacía).
type EmisorData struct {
	RUT         string
	RazonSocial string
	Giro        string
	Acteco      []int
	Direccion   string
	Comuna      string
	Ciudad      string
	Telefono    []string
	Correo      string
}

// ReceptorData datos de entrada para el receptor.
type ReceptorData struct {
	RUT         string
	RazonSocial string
	Giro        string
	Direccion   string
	Comuna      string
	Ciudad      string
	Contacto    string
	Correo      string
}

// ItemData datos de entrada para una línea de detalle. El monto de la línea
// se resuelve como Monto si viene dado, o round(Cantidad·Precio) con
// Cantidad ausente = 1 y Precio ausente = 0.
type ItemData struct {
	Nombre      string
	Cantidad    *decimal.Decimal
	Precio      *decimal.Decimal
	Monto       *int64
	Descripcion string
	Unidad      string
	Codigos     []CdgItem
	Impuestos   []int // códigos del catálogo sii.TaxCodes
	Exento      bool
}

// ReferenciaData datos de entrada para una referencia.
type ReferenciaData struct {
	TipoDoc string
	Folio   string
	Fecha   string
	Codigo  sii.CodigoReferencia // 0 = sin código
	Razon   string
}

// DTEBuilder acumula encabezado, partes, detalle, ajustes y referencias y
// produce un Documento inmutable con Build. Los setters devuelven el builder
// para encadenar y pueden llamarse en cualquier orden; los campos se vuelven
/// obligatorios recién en Build. No es seguro para mutación concurrente:
// construir → configurar → Build en un solo dueño.
type DTEBuilder struct {
	idDoc    IdDoc
	emisor   Emisor
	receptor Receptor
	totales  *Totales
	detalle  []Detalle
	dscRcg   []DscRcgGlobal
	refs     []Referencia

	strategy totalsStrategy
}

// NewDTEBuilder crea un builder estándar (precios netos).
func NewDTEBuilder() *DTEBuilder {
	return &DTEBuilder{strategy: netoFirstStrategy{}}
}

// SetTipo fija el tipo de DTE.
func (b *DTEBuilder) SetTipo(tipo sii.TipoDTE) *DTEBuilder {
	b.idDoc.TipoDTE = tipo
	return b
}

// SetFolio fija el folio.
func (b *DTEBuilder) SetFolio(folio int64) *DTEBuilder {
	b.idDoc.Folio = folio
	return b
}

// SetFechaEmision fija la fecha de emisión (YYYY-MM-DD).
func (b *DTEBuilder) SetFechaEmision(fecha string) *DTEBuilder {
	b.idDoc.FchEmis = fecha
	return b
}

// SetFormaPago fija la forma de pago.
func (b *DTEBuilder) SetFormaPago(forma sii.FormaPago) *DTEBuilder {
	b.idDoc.FmaPago = &forma
	return b
}

// SetFechaVencimiento fija la fecha de vencimiento (YYYY-MM-DD).
func (b *DTEBuilder) SetFechaVencimiento(fecha string) *DTEBuilder {
	b.idDoc.FchVenc = &fecha
	return b
}

// SetTerminoPago fija la glosa y días del término de pago.
func (b *DTEBuilder) SetTerminoPago(glosa string, dias int) *DTEBuilder {
	if glosa != "" {
		b.idDoc.TermPagoGlosa = &glosa
	}
	b.idDoc.TermPagoDias = &dias
	return b
}

// SetEmisor guarda el emisor. Los opcionales vacíos quedan ausentes.
func (b *DTEBuilder) SetEmisor(data EmisorData) *DTEBuilder {
	b.emisor = Emisor{
		RUTEmisor:  data.RUT,
		RznSoc:     data.RazonSocial,
		GiroEmis:   data.Giro,
		Acteco:     data.Acteco,
		DirOrigen:  data.Direccion,
		CmnaOrigen: data.Comuna,
		Telefono:   data.Telefono,
	}
	if data.Ciudad != "" {
		b.emisor.CdadOrigen = &data.Ciudad
	}
	if data.Correo != "" {
		b.emisor.CorreoEmisor = &data.Correo
	}
	return b
}

// SetReceptor guarda el receptor. Los opcionales vacíos quedan ausentes.
func (b *DTEBuilder) SetReceptor(data ReceptorData) *DTEBuilder {
	b.receptor = Receptor{
		RUTRecep:    data.RUT,
		RznSocRecep: data.RazonSocial,
		DirRecep:    data.Direccion,
	}
	if data.Giro != "" {
		b.receptor.GiroRecep = &data.Giro
	}
	if data.Comuna != "" {
		b.receptor.CmnaRecep = &data.Comuna
	}
	if data.Ciudad != "" {
		b.receptor.CdadRecep = &data.Ciudad
	}
	if data.Contacto != "" {
		b.receptor.Contacto = &data.Contacto
	}
	if data.Correo != "" {
		b.receptor.CorreoRecep = &data.Correo
	}
	return b
}

// AddItem agrega una línea de detalle. El número de línea se asigna como
// posición+1 al momento de agregar; las líneas no se pueden quitar ni
// reordenar a través del builder. La validación del nombre y los montos
// ocurre en Build, no aquí.
func (b *DTEBuilder) AddItem(item ItemData) *DTEBuilder {
	monto := resolveMonto(item)

	d := Detalle{
		NroLinDet:  len(b.detalle) + 1,
		NmbItem:    item.Nombre,
		CdgItem:    item.Codigos,
		CodImpAdic: item.Impuestos,
		MontoItem:  monto,
	}
	if item.Descripcion != "" {
		d.DscItem = &item.Descripcion
	}
	if item.Cantidad != nil {
		qty := *item.Cantidad
		d.QtyItem = &qty
	}
	if item.Precio != nil {
		prc := *item.Precio
		d.PrcItem = &prc
	}
	if item.Unidad != "" {
		d.UnmdItem = &item.Unidad
	}
	if item.Exento {
		exe := sii.ExencionNoAfecto
		d.IndExe = &exe
	}

	b.detalle = append(b.detalle, d)
	return b
}

func resolveMonto(item ItemData) int64 {
	if item.Monto != nil {
		return *item.Monto
	}
	qty := decimal.NewFromInt(1)
	if item.Cantidad != nil {
		qty = *item.Cantidad
	}
	prc := decimal.Zero
	if item.Precio != nil {
		prc = *item.Precio
	}
	return roundMonto(qty.Mul(prc))
}

// AddDescuentoGlobal agrega un descuento o recargo global, numerado
// secuencialmente desde 1.
func (b *DTEBuilder) AddDescuentoGlobal(tipo sii.TipoMovimiento, valor decimal.Decimal, esPorcentaje bool, glosa string) *DTEBuilder {
	return b.addAjuste(tipo, valor, esPorcentaje, glosa, false)
}

// AddDescuentoGlobalExento agrega un ajuste global que afecta al monto
// exento en vez del neto.
func (b *DTEBuilder) AddDescuentoGlobalExento(tipo sii.TipoMovimiento, valor decimal.Decimal, esPorcentaje bool, glosa string) *DTEBuilder {
	return b.addAjuste(tipo, valor, esPorcentaje, glosa, true)
}

func (b *DTEBuilder) addAjuste(tipo sii.TipoMovimiento, valor decimal.Decimal, esPorcentaje bool, glosa string, sobreExento bool) *DTEBuilder {
	d := DscRcgGlobal{
		NroLinDR: len(b.dscRcg) + 1,
		TpoMov:   tipo,
		TpoValor: sii.ValorMonto,
		ValorDR:  valor,
	}
	if esPorcentaje {
		d.TpoValor = sii.ValorPorcentaje
	}
	if glosa != "" {
		d.GlosaDR = &glosa
	}
	if sobreExento {
		exe := sii.ExencionNoAfecto
		d.IndExeDR = &exe
	}
	b.dscRcg = append(b.dscRcg, d)
	return b
}

// AddReferencia agrega una referencia a otro documento, numerada
// secuencialmente desde 1.
func (b *DTEBuilder) AddReferencia(data ReferenciaData) *DTEBuilder {
	r := Referencia{NroLinRef: len(b.refs) + 1}
	if data.TipoDoc != "" {
		r.TpoDocRef = &data.TipoDoc
	}
	if data.Folio != "" {
		r.FolioRef = &data.Folio
	}
	if data.Fecha != "" {
		r.FchRef = &data.Fecha
	}
	if data.Codigo != 0 {
		cod := data.Codigo
		r.CodRef = &cod
	}
	if data.Razon != "" {
		r.RazonRef = &data.Razon
	}
	b.refs = append(b.refs, r)
	return b
}

// CalculateTotals calcula los totales con la estrategia del builder sobre el
// detalle y los ajustes acumulados, y los guarda como totales del documento.
// Retorna ValidationError si no hay líneas de detalle.
func (b *DTEBuilder) CalculateTotals(tasa decimal.Decimal) error {
	if len(b.detalle) == 0 {
		return validationErr("Detalle", "no hay items para calcular totales")
	}

	calc := b.strategy.calculate(b.detalle, b.dscRcg, tasa)

	t := Totales{MntTotal: calc.MntTotal}
	if calc.MntNeto > 0 {
		neto := calc.MntNeto
		t.MntNeto = &neto
	}
	if calc.MntExe > 0 {
		exe := calc.MntExe
		t.MntExe = &exe
	}
	if calc.IVA > 0 {
		iva := calc.IVA
		tasaCopy := tasa
		t.IVA = &iva
		t.TasaIVA = &tasaCopy
	}
	b.totales = &t
	return nil
}

// SetTotales fusiona totales provistos por el caller sobre los acumulados,
// sin pasar por el cálculo: vía de escape para documentos no estándar.
// Los campos nil del argumento no tocan los ya guardados; MntTotal en cero
// tampoco.
func (b *DTEBuilder) SetTotales(t Totales) *DTEBuilder {
	if b.totales == nil {
		b.totales = &Totales{}
	}
	if t.MntNeto != nil {
		b.totales.MntNeto = t.MntNeto
	}
	if t.MntExe != nil {
		b.totales.MntExe = t.MntExe
	}
	if t.TasaIVA != nil {
		b.totales.TasaIVA = t.TasaIVA
	}
	if t.IVA != nil {
		b.totales.IVA = t.IVA
	}
	if t.ImptoReten != nil {
		b.totales.ImptoReten = t.ImptoReten
	}
	if t.MntTotal != 0 {
		b.totales.MntTotal = t.MntTotal
	}
	return b
}

// Build valida los campos obligatorios y emite el documento inmutable.
// El primer campo faltante se reporta en este orden: tipo, folio, fecha de
// emisión, RUT emisor, RUT receptor, al menos un ítem, monto total.
// El documento recibe copias del detalle, ajustes y referencias: ningún
// estado mutable del builder sobrevive en el documento.
func (b *DTEBuilder) Build() (*Documento, error) {
	if b.idDoc.TipoDTE == 0 {
		return nil, validationErr("TipoDTE", "TipoDTE es obligatorio")
	}
	if b.idDoc.Folio == 0 {
		return nil, validationErr("Folio", "Folio es obligatorio")
	}
	if b.idDoc.FchEmis == "" {
		return nil, validationErr("FchEmis", "FchEmis es obligatoria")
	}
	if b.emisor.RUTEmisor == "" {
		return nil, validationErr("RUTEmisor", "Emisor es obligatorio")
	}
	if b.receptor.RUTRecep == "" {
		return nil, validationErr("RUTRecep", "Receptor es obligatorio")
	}
	if len(b.detalle) == 0 {
		return nil, validationErr("Detalle", "debe haber al menos 1 item")
	}
	if b.totales == nil || b.totales.MntTotal == 0 {
		return nil, validationErr("MntTotal", "MntTotal es obligatorio: use CalculateTotals() o SetTotales()")
	}

	doc := &Documento{
		Encabezado: Encabezado{
			IdDoc:    b.idDoc,
			Emisor:   b.emisor,
			Receptor: b.receptor,
			Totales:  *b.totales,
		},
		Detalle: append([]Detalle(nil), b.detalle...),
	}
	if len(b.dscRcg) > 0 {
		doc.DscRcgGlobal = append([]DscRcgGlobal(nil), b.dscRcg...)
	}
	if len(b.refs) > 0 {
		doc.Referencia = append([]Referencia(nil), b.refs...)
	}
	return doc, nil
}

// Reset limpia todo el estado acumulado para reutilizar el builder.
// La estrategia de totales se conserva.
func (b *DTEBuilder) Reset() *DTEBuilder {
	b.idDoc = IdDoc{}
	b.emisor = Emisor{}
	b.receptor = Receptor{}
	b.totales = nil
	b.detalle = nil
	b.dscRcg = nil
	b.refs = nil
	return b
}
