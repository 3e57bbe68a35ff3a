package sii

// =============================================================================
// Códigos de impuestos adicionales y retenciones (tabla de impuestos SII,
// campos CodImpAdic y TipoImp del formato DTE)
// =============================================================================

// TaxCategory agrupa los códigos de impuesto por naturaleza.
type TaxCategory string

const (
	CategoriaIVARetenido        TaxCategory = "iva-retenido"
	CategoriaIVAAnticipado      TaxCategory = "iva-anticipado"
	CategoriaImpuestoEspecifico TaxCategory = "impuesto-especifico"
	CategoriaImpuestoAdicional  TaxCategory = "impuesto-adicional"
)

// TaxCode describe un impuesto adicional o retención del catálogo SII.
type TaxCode struct {
	Code     int
	Name     string
	Article  string // referencia legal, si aplica
	Category TaxCategory
}

// TaxCodes catálogo de impuestos adicionales y retenciones indexado por código.
var TaxCodes = map[int]TaxCode{
	14:  {14, "IVA Margen Comercialización", "", CategoriaIVARetenido},
	15:  {15, "IVA Retenido Total", "", CategoriaIVARetenido},
	16:  {16, "IVA Retenido Parcial", "", CategoriaIVARetenido},
	17:  {17, "IVA Anticipado Faenamiento Carne", "", CategoriaIVAAnticipado},
	18:  {18, "IVA Anticipado Carne", "", CategoriaIVAAnticipado},
	19:  {19, "IVA Anticipado Harina", "", CategoriaIVAAnticipado},
	23:  {23, "Impuesto Adicional Art. 37 (Oro, Joyas, Pieles)", "Art. 37 Ley Renta", CategoriaImpuestoAdicional},
	24:  {24, "Impuesto Art. 42 a) Licores, Pisco, Destilados", "Art. 42 letra a)", CategoriaImpuestoEspecifico},
	25:  {25, "Impuesto Art. 42 c) Vinos", "Art. 42 letra c)", CategoriaImpuestoEspecifico},
	26:  {26, "Impuesto Art. 42 c) Cervezas y Bebidas Alcohólicas", "Art. 42 letra c)", CategoriaImpuestoEspecifico},
	27:  {27, "Impuesto Art. 42 d) e) Bebidas Analcohólicas y Minerales", "Art. 42 letras d) y e)", CategoriaImpuestoEspecifico},
	28:  {28, "Impuesto Específico Diesel", "", CategoriaImpuestoEspecifico},
	30:  {30, "IVA Retenido Legumbres", "", CategoriaIVARetenido},
	31:  {31, "IVA Retenido Silvestres", "", CategoriaIVARetenido},
	32:  {32, "IVA Retenido Ganado", "", CategoriaIVARetenido},
	33:  {33, "IVA Retenido Madera", "", CategoriaIVARetenido},
	34:  {34, "IVA Retenido Trigo", "", CategoriaIVARetenido},
	35:  {35, "Impuesto Específico Gasolina", "", CategoriaImpuestoEspecifico},
	36:  {36, "IVA Retenido Arroz", "", CategoriaIVARetenido},
	37:  {37, "IVA Retenido Hidrobiológicas", "", CategoriaIVARetenido},
	38:  {38, "IVA Retenido Chatarra", "", CategoriaIVARetenido},
	39:  {39, "IVA Retenido PPA (Productos del Agro)", "", CategoriaIVARetenido},
	40:  {40, "IVA Retenido Opcional", "", CategoriaIVARetenido},
	41:  {41, "IVA Retenido Construcción", "", CategoriaIVARetenido},
	44:  {44, "Impuesto Adicional Art. 37 (Alfombras)", "Art. 37 Ley Renta", CategoriaImpuestoAdicional},
	45:  {45, "Impuesto Adicional Art. 37 (Caviar, Pirotecnia)", "Art. 37 Ley Renta", CategoriaImpuestoAdicional},
	271: {271, "Bebidas Analcohólicas con Alto Contenido de Azúcar", "Ley 20.780", CategoriaImpuestoEspecifico},
}

// GetTaxCode devuelve el impuesto del catálogo.
func GetTaxCode(code int) (TaxCode, bool) {
	tc, ok := TaxCodes[code]
	return tc, ok
}

// IsValidTaxCode indica si el código de impuesto pertenece al catálogo.
func IsValidTaxCode(code int) bool {
	_, ok := TaxCodes[code]
	return ok
}

// TaxCodesByCategory devuelve los impuestos de una categoría.
func TaxCodesByCategory(cat TaxCategory) []TaxCode {
	var out []TaxCode
	for _, tc := range TaxCodes {
		if tc.Category == cat {
			out = append(out, tc)
		}
	}
	return out
}
