package dte

import (
	"fmt"

	"github.com/tu-usuario/dte-chile/pkg/sii"
)

// Límites estructurales del formato DTE_v10.xsd.
const (
	MaxDetalle      = 60
	MaxDscRcgGlobal = 20
	MaxReferencias  = 40
	MaxSubTotInfo   = 20
	MaxComisiones   = 20
	MaxImptoReten   = 20
	MaxCdgItem      = 5
	MaxCodImpAdic   = 2
	MaxSubDetalle   = 20 // subcantidades, sub-descuentos y sub-recargos
	MaxNmbItem      = 80
	MaxDscItem      = 1000
)

// ValidationResult resultado de una validación estructural. Nunca se
// reporta como error de Go: acumula todas las violaciones encontradas para
// que el caller las revise en una sola pasada.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

func toResult(errs []string) ValidationResult {
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateDTEStructure valida los límites estructurales y la presencia de
// las secciones obligatorias de un documento terminado. Acumula todas las
// violaciones, sin cortocircuito.
func ValidateDTEStructure(doc *Documento) ValidationResult {
	var errs []string

	if len(doc.Detalle) == 0 {
		errs = append(errs, "el DTE debe tener al menos 1 item en Detalle")
	}
	if len(doc.Detalle) > MaxDetalle {
		errs = append(errs, fmt.Sprintf("el DTE no puede tener más de %d items en Detalle", MaxDetalle))
	}
	if len(doc.DscRcgGlobal) > MaxDscRcgGlobal {
		errs = append(errs, fmt.Sprintf("el DTE no puede tener más de %d descuentos/recargos globales", MaxDscRcgGlobal))
	}
	if len(doc.Referencia) > MaxReferencias {
		errs = append(errs, fmt.Sprintf("el DTE no puede tener más de %d referencias", MaxReferencias))
	}
	if len(doc.SubTotInfo) > MaxSubTotInfo {
		errs = append(errs, fmt.Sprintf("el DTE no puede tener más de %d subtotales informativos", MaxSubTotInfo))
	}
	if len(doc.Comisiones) > MaxComisiones {
		errs = append(errs, fmt.Sprintf("el DTE no puede tener más de %d comisiones", MaxComisiones))
	}

	if doc.Encabezado.IdDoc.TipoDTE == 0 {
		errs = append(errs, "IdDoc es obligatorio")
	} else if !sii.IsValidDocumentType(doc.Encabezado.IdDoc.TipoDTE) {
		errs = append(errs, fmt.Sprintf("TipoDTE %d no pertenece al catálogo SII", doc.Encabezado.IdDoc.TipoDTE))
	}
	if doc.Encabezado.Emisor.RUTEmisor == "" {
		errs = append(errs, "Emisor es obligatorio")
	}
	if doc.Encabezado.Receptor.RUTRecep == "" {
		errs = append(errs, "Receptor es obligatorio")
	}
	if isZeroTotales(doc.Encabezado.Totales) {
		errs = append(errs, "Totales es obligatorio")
	}

	return toResult(errs)
}

func isZeroTotales(t Totales) bool {
	return t.MntTotal == 0 && t.MntNeto == nil && t.MntExe == nil && t.IVA == nil
}

// ValidateDetalle valida una línea de detalle contra su posición (base 0) en
// el documento.
func ValidateDetalle(d Detalle, index int) ValidationResult {
	var errs []string
	linea := index + 1

	if d.NroLinDet != linea {
		errs = append(errs, fmt.Sprintf("item %d: NroLinDet debe ser %d", linea, linea))
	}
	if d.NmbItem == "" {
		errs = append(errs, fmt.Sprintf("item %d: NmbItem es obligatorio", linea))
	}
	if len([]rune(d.NmbItem)) > MaxNmbItem {
		errs = append(errs, fmt.Sprintf("item %d: NmbItem no puede exceder %d caracteres", linea, MaxNmbItem))
	}
	if d.DscItem != nil && len([]rune(*d.DscItem)) > MaxDscItem {
		errs = append(errs, fmt.Sprintf("item %d: DscItem no puede exceder %d caracteres", linea, MaxDscItem))
	}
	if d.MontoItem < 0 {
		errs = append(errs, fmt.Sprintf("item %d: MontoItem no puede ser negativo", linea))
	}
	if len(d.CodImpAdic) > MaxCodImpAdic {
		errs = append(errs, fmt.Sprintf("item %d: no puede tener más de %d impuestos adicionales", linea, MaxCodImpAdic))
	}
	for _, cod := range d.CodImpAdic {
		if !sii.IsValidTaxCode(cod) {
			errs = append(errs, fmt.Sprintf("item %d: código de impuesto %d no pertenece al catálogo SII", linea, cod))
		}
	}
	if len(d.CdgItem) > MaxCdgItem {
		errs = append(errs, fmt.Sprintf("item %d: no puede tener más de %d códigos", linea, MaxCdgItem))
	}
	if len(d.Subcantidad) > MaxSubDetalle {
		errs = append(errs, fmt.Sprintf("item %d: no puede tener más de %d subcantidades", linea, MaxSubDetalle))
	}
	if len(d.SubDscto) > MaxSubDetalle {
		errs = append(errs, fmt.Sprintf("item %d: no puede tener más de %d sub-descuentos", linea, MaxSubDetalle))
	}
	if len(d.SubRecargo) > MaxSubDetalle {
		errs = append(errs, fmt.Sprintf("item %d: no puede tener más de %d sub-recargos", linea, MaxSubDetalle))
	}

	return toResult(errs)
}

// ValidateAllDetalles valida todas las líneas concatenando los errores de
// cada una, sin salida temprana.
func ValidateAllDetalles(items []Detalle) ValidationResult {
	var errs []string
	for i, item := range items {
		result := ValidateDetalle(item, i)
		errs = append(errs, result.Errors...)
	}
	return toResult(errs)
}

// ValidateTotales valida la coherencia interna de los totales declarados.
// La suma neto + exento + IVA se compara contra MntTotal con tolerancia
// absoluta de 1 peso: un documento puede traer totales externos con ruido de
// redondeo legítimo. Ese margen es deliberadamente más laxo que el chequeo
// exacto de IsTotalConsistent.
func ValidateTotales(t Totales) ValidationResult {
	var errs []string

	if t.MntTotal <= 0 {
		errs = append(errs, "MntTotal debe ser mayor a 0")
	}
	if t.IVA != nil && *t.IVA > 0 && t.MntNeto == nil {
		errs = append(errs, "si hay IVA, MntNeto es obligatorio")
	}
	if t.TasaIVA != nil {
		if t.TasaIVA.IsNegative() || t.TasaIVA.GreaterThan(cien) {
			errs = append(errs, "TasaIVA debe estar entre 0 y 100")
		}
	}
	if len(t.ImptoReten) > MaxImptoReten {
		errs = append(errs, fmt.Sprintf("no puede haber más de %d impuestos retenidos", MaxImptoReten))
	}
	for _, imp := range t.ImptoReten {
		if !sii.IsValidTaxCode(imp.TipoImp) {
			errs = append(errs, fmt.Sprintf("TipoImp %d no pertenece al catálogo SII", imp.TipoImp))
		}
	}

	var neto, exento, iva int64
	if t.MntNeto != nil {
		neto = *t.MntNeto
	}
	if t.MntExe != nil {
		exento = *t.MntExe
	}
	if t.IVA != nil {
		iva = *t.IVA
	}
	suma := neto + exento + iva
	if diff := suma - t.MntTotal; diff > 1 || diff < -1 {
		if diff < 0 {
			diff = -diff
		}
		errs = append(errs, fmt.Sprintf("la suma (Neto + Exento + IVA) no coincide con MntTotal (diferencia: %d)", diff))
	}

	return toResult(errs)
}
