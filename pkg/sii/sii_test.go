package sii_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/dte-chile/pkg/sii"
)

// ── catálogo de tipos de documento ────────────────────────────────────────────

func TestGetDocumentType(t *testing.T) {
	dt, ok := sii.GetDocumentType(sii.TipoFacturaElectronica)
	require.True(t, ok)
	assert.Equal(t, "Factura Electrónica", dt.Name)
	assert.Equal(t, "FE", dt.Abbreviation)
	assert.True(t, dt.Afecto)

	_, ok = sii.GetDocumentType(99)
	assert.False(t, ok)
}

func TestIsAfecto(t *testing.T) {
	assert.True(t, sii.IsAfecto(sii.TipoFacturaElectronica))
	assert.True(t, sii.IsAfecto(sii.TipoBoletaElectronica))
	assert.False(t, sii.IsAfecto(sii.TipoFacturaExenta))
	assert.False(t, sii.IsAfecto(sii.TipoBoletaExenta))
	assert.False(t, sii.IsAfecto(sii.TipoGuiaDespacho))
	// código desconocido: no afecto
	assert.False(t, sii.IsAfecto(0))
}

// ── folios ────────────────────────────────────────────────────────────────────

func TestValidateFolio_Rangos(t *testing.T) {
	assert.NoError(t, sii.ValidateFolio(1))
	assert.NoError(t, sii.ValidateFolio(sii.MaxFolio))

	assert.Error(t, sii.ValidateFolio(0))
	assert.Error(t, sii.ValidateFolio(-5))
	assert.Error(t, sii.ValidateFolio(sii.MaxFolio+1))
}

func TestFormatFolio(t *testing.T) {
	assert.Equal(t, "0000123", sii.FormatFolio(123, 7))
	assert.Equal(t, "123", sii.FormatFolio(123, 2)) // nunca trunca
	assert.Equal(t, "", sii.FormatFolio(0, 7))
}

// ── impuestos adicionales ─────────────────────────────────────────────────────

func TestGetTaxCode(t *testing.T) {
	tc, ok := sii.GetTaxCode(15)
	require.True(t, ok)
	assert.Equal(t, "IVA Retenido Total", tc.Name)
	assert.Equal(t, sii.CategoriaIVARetenido, tc.Category)

	assert.False(t, sii.IsValidTaxCode(9999))
}

func TestTaxCodesByCategory(t *testing.T) {
	especificos := sii.TaxCodesByCategory(sii.CategoriaImpuestoEspecifico)
	require.NotEmpty(t, especificos)
	for _, tc := range especificos {
		assert.Equal(t, sii.CategoriaImpuestoEspecifico, tc.Category)
	}
}

// ── servidores ────────────────────────────────────────────────────────────────

func TestGetServerURL(t *testing.T) {
	assert.Equal(t,
		"https://maullin.sii.cl/DTEWS/CrSeed.jws?WSDL",
		sii.GetServerURL(sii.EnvCertificacion, "seed"))
	assert.Equal(t,
		"https://palena.sii.cl/cgi_dte/UPL/DTEUpload",
		sii.GetServerURL(sii.EnvProduccion, "upload"))
	assert.Equal(t, "", sii.GetServerURL(sii.EnvProduccion, "inexistente"))
	assert.Equal(t, "", sii.GetServerURL("otro", "seed"))
}
