package dte_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/dte-chile/internal/domain/dte"
	"github.com/tu-usuario/dte-chile/pkg/sii"
)

func documentoValido(t *testing.T, nItems int) *dte.Documento {
	t.Helper()
	b := dte.NewDTEBuilder().
		SetTipo(sii.TipoFacturaElectronica).
		SetFolio(100).
		SetFechaEmision("2025-06-15").
		SetEmisor(emisorPrueba()).
		SetReceptor(receptorPrueba())
	for i := 0; i < nItems; i++ {
		monto := int64(1000)
		b.AddItem(dte.ItemData{Nombre: "Item", Monto: &monto})
	}
	require.NoError(t, b.CalculateTotals(tasa19))
	doc, err := b.Build()
	require.NoError(t, err)
	return doc
}

func contiene(t *testing.T, errs []string, fragmento string) {
	t.Helper()
	for _, e := range errs {
		if strings.Contains(e, fragmento) {
			return
		}
	}
	t.Errorf("no se encontró un error que contenga %q en %v", fragmento, errs)
}

// ── ValidateDTEStructure ──────────────────────────────────────────────────────

func TestValidateDTEStructure_DocumentoValido(t *testing.T) {
	result := dte.ValidateDTEStructure(documentoValido(t, 3))

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateDTEStructure_LimiteDeItems(t *testing.T) {
	// 60 ítems pasa; 61 no.
	assert.True(t, dte.ValidateDTEStructure(documentoValido(t, dte.MaxDetalle)).Valid)

	result := dte.ValidateDTEStructure(documentoValido(t, dte.MaxDetalle+1))
	assert.False(t, result.Valid)
	contiene(t, result.Errors, "más de 60 items")
}

func TestValidateDTEStructure_TipoFueraDeCatalogo(t *testing.T) {
	doc := documentoValido(t, 1)
	doc.Encabezado.IdDoc.TipoDTE = 99

	result := dte.ValidateDTEStructure(doc)
	assert.False(t, result.Valid)
	contiene(t, result.Errors, "no pertenece al catálogo SII")
}

func TestValidateDTEStructure_AcumulaTodasLasViolaciones(t *testing.T) {
	// Documento vacío: cada sección obligatoria ausente debe reportarse,
	// no solo la primera.
	result := dte.ValidateDTEStructure(&dte.Documento{})

	assert.False(t, result.Valid)
	contiene(t, result.Errors, "al menos 1 item")
	contiene(t, result.Errors, "IdDoc es obligatorio")
	contiene(t, result.Errors, "Emisor es obligatorio")
	contiene(t, result.Errors, "Receptor es obligatorio")
	contiene(t, result.Errors, "Totales es obligatorio")
	assert.GreaterOrEqual(t, len(result.Errors), 5)
}

// ── ValidateDetalle ───────────────────────────────────────────────────────────

func TestValidateDetalle_LineaCorrecta(t *testing.T) {
	result := dte.ValidateDetalle(dte.Detalle{
		NroLinDet: 1,
		NmbItem:   "Item válido",
		MontoItem: 1000,
	}, 0)

	assert.True(t, result.Valid)
}

func TestValidateDetalle_NumeroDeLineaDesalineado(t *testing.T) {
	result := dte.ValidateDetalle(dte.Detalle{
		NroLinDet: 7,
		NmbItem:   "Item",
		MontoItem: 1000,
	}, 0)

	assert.False(t, result.Valid)
	contiene(t, result.Errors, "NroLinDet debe ser 1")
}

func TestValidateDetalle_LargoDelNombre(t *testing.T) {
	// 80 runas pasa; 81 no. Se usan caracteres multibyte para confirmar que
	// el límite cuenta runas y no bytes.
	base := dte.Detalle{NroLinDet: 1, MontoItem: 100}

	base.NmbItem = strings.Repeat("ñ", dte.MaxNmbItem)
	assert.True(t, dte.ValidateDetalle(base, 0).Valid)

	base.NmbItem = strings.Repeat("ñ", dte.MaxNmbItem+1)
	result := dte.ValidateDetalle(base, 0)
	assert.False(t, result.Valid)
	contiene(t, result.Errors, "NmbItem no puede exceder 80")
}

func TestValidateDetalle_MontoNegativo(t *testing.T) {
	result := dte.ValidateDetalle(dte.Detalle{
		NroLinDet: 1,
		NmbItem:   "Item",
		MontoItem: -1,
	}, 0)

	assert.False(t, result.Valid)
	contiene(t, result.Errors, "MontoItem no puede ser negativo")
}

func TestValidateDetalle_CodigoDeImpuestoFueraDeCatalogo(t *testing.T) {
	result := dte.ValidateDetalle(dte.Detalle{
		NroLinDet:  1,
		NmbItem:    "Pisco 35°",
		MontoItem:  8990,
		CodImpAdic: []int{24, 99},
	}, 0)

	assert.False(t, result.Valid)
	contiene(t, result.Errors, "código de impuesto 99 no pertenece al catálogo SII")
	assert.Len(t, result.Errors, 1) // el 24 (licores) es válido
}

func TestValidateAllDetalles_ConcatenaErroresDeTodasLasLineas(t *testing.T) {
	result := dte.ValidateAllDetalles([]dte.Detalle{
		{NroLinDet: 1, NmbItem: ""},        // nombre faltante
		{NroLinDet: 5, NmbItem: "Item"},    // numeración rota
		{NroLinDet: 3, NmbItem: "Último"}, // correcta
	})

	assert.False(t, result.Valid)
	contiene(t, result.Errors, "item 1: NmbItem es obligatorio")
	contiene(t, result.Errors, "item 2: NroLinDet debe ser 2")
	assert.Len(t, result.Errors, 2)
}

// ── ValidateTotales ───────────────────────────────────────────────────────────

func ptrInt64(v int64) *int64 { return &v }

func TestValidateTotales_Coherentes(t *testing.T) {
	tasa := decimal.NewFromInt(19)
	result := dte.ValidateTotales(dte.Totales{
		MntNeto:  ptrInt64(10000),
		TasaIVA:  &tasa,
		IVA:      ptrInt64(1900),
		MntTotal: 11900,
	})

	assert.True(t, result.Valid)
}

func TestValidateTotales_ToleranciaDeUnPeso(t *testing.T) {
	base := dte.Totales{
		MntNeto: ptrInt64(10000),
		IVA:     ptrInt64(1900),
	}

	// diferencia de 1 peso: aceptada
	base.MntTotal = 11901
	assert.True(t, dte.ValidateTotales(base).Valid)
	base.MntTotal = 11899
	assert.True(t, dte.ValidateTotales(base).Valid)

	// diferencia de 2 pesos: rechazada
	base.MntTotal = 11902
	result := dte.ValidateTotales(base)
	assert.False(t, result.Valid)
	contiene(t, result.Errors, "no coincide con MntTotal (diferencia: 2)")
}

func TestValidateTotales_TotalNoPositivo(t *testing.T) {
	result := dte.ValidateTotales(dte.Totales{MntTotal: 0})

	assert.False(t, result.Valid)
	contiene(t, result.Errors, "MntTotal debe ser mayor a 0")
}

func TestValidateTotales_IVASinNeto(t *testing.T) {
	result := dte.ValidateTotales(dte.Totales{
		IVA:      ptrInt64(1900),
		MntTotal: 1900,
	})

	assert.False(t, result.Valid)
	contiene(t, result.Errors, "si hay IVA, MntNeto es obligatorio")
}

func TestValidateTotales_TasaFueraDeRango(t *testing.T) {
	tasa := decimal.NewFromInt(101)
	result := dte.ValidateTotales(dte.Totales{
		MntNeto:  ptrInt64(100),
		TasaIVA:  &tasa,
		MntTotal: 100,
	})

	assert.False(t, result.Valid)
	contiene(t, result.Errors, "TasaIVA debe estar entre 0 y 100")
}

func TestValidateTotales_ImpuestoRetenidoFueraDeCatalogo(t *testing.T) {
	result := dte.ValidateTotales(dte.Totales{
		MntNeto: ptrInt64(10000),
		IVA:     ptrInt64(1900),
		ImptoReten: []dte.ImptoRetenido{
			{TipoImp: 15, TasaImp: decimal.NewFromInt(19), MontoImp: 1900}, // retención total, válido
			{TipoImp: 7, MontoImp: 100},
		},
		MntTotal: 11900,
	})

	assert.False(t, result.Valid)
	contiene(t, result.Errors, "TipoImp 7 no pertenece al catálogo SII")
	assert.Len(t, result.Errors, 1)
}
