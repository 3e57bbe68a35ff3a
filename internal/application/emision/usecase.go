// Package emision implementa el caso de uso de emisión de DTEs: mapea las
// solicitudes de la API sobre los builders del dominio, valida RUTs y folios
// y produce el reporte de validación estructural y la representación impresa.
package emision

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/dte-chile/internal/application/dto"
	"github.com/tu-usuario/dte-chile/internal/domain"
	"github.com/tu-usuario/dte-chile/internal/domain/dte"
	"github.com/tu-usuario/dte-chile/pkg/format"
	"github.com/tu-usuario/dte-chile/pkg/logger"
	"github.com/tu-usuario/dte-chile/pkg/rut"
	"github.com/tu-usuario/dte-chile/pkg/sii"
)

// UseCase orquesta la emisión de documentos tributarios.
type UseCase struct {
	tasaIVA decimal.Decimal // tasa por defecto cuando la solicitud no trae una
	pdfGen  DTEPDFGenerator
	log     *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(tasaIVA decimal.Decimal, pdfGen DTEPDFGenerator, log *logger.Logger) *UseCase {
	return &UseCase{tasaIVA: tasaIVA, pdfGen: pdfGen, log: log}
}

// EmitirFactura arma un DTE de precios netos (factura, nota, guía), calcula
// sus totales y lo valida estructuralmente.
func (uc *UseCase) EmitirFactura(ctx context.Context, in dto.EmitirDTERequest) (*dto.EmisionResponse, error) {
	doc, err := uc.buildDocumento(in)
	if err != nil {
		return nil, err
	}
	resp := uc.toResponse(doc)
	uc.log.Info().
		Str("track_id", resp.TrackID).
		Int("tipo_dte", resp.TipoDTE).
		Int64("folio", resp.Folio).
		Int64("mnt_total", resp.Totales.MntTotal).
		Msg("DTE emitido")
	return resp, nil
}

// EmitirBoleta arma una boleta con precios brutos (IVA incluido).
func (uc *UseCase) EmitirBoleta(ctx context.Context, in dto.EmitirBoletaRequest) (*dto.EmisionResponse, error) {
	doc, err := uc.buildBoleta(in)
	if err != nil {
		return nil, err
	}
	resp := uc.toResponse(doc)
	uc.log.Info().
		Str("track_id", resp.TrackID).
		Int64("folio", resp.Folio).
		Int64("mnt_total", resp.Totales.MntTotal).
		Msg("boleta emitida")
	return resp, nil
}

// ValidarDocumento arma el documento y devuelve solo el reporte de validación
// estructural, sin emitirlo.
func (uc *UseCase) ValidarDocumento(ctx context.Context, in dto.EmitirDTERequest) (*dto.ValidacionResponse, error) {
	doc, err := uc.buildDocumento(in)
	if err != nil {
		return nil, err
	}
	v := validar(doc)
	return &v, nil
}

// GenerarPDF arma el documento y genera su representación impresa.
// Devuelve los bytes del PDF y un nombre de archivo sugerido.
func (uc *UseCase) GenerarPDF(ctx context.Context, in dto.EmitirDTERequest) ([]byte, string, error) {
	doc, err := uc.buildDocumento(in)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.pdfGen.GenerateDTEPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("emision: generar PDF: %w", err)
	}
	filename := fmt.Sprintf("dte_%d_%d.pdf", doc.Encabezado.IdDoc.TipoDTE, doc.Encabezado.IdDoc.Folio)
	return pdfBytes, filename, nil
}

// ── armado de documentos ──────────────────────────────────────────────────────

func (uc *UseCase) buildDocumento(in dto.EmitirDTERequest) (*dte.Documento, error) {
	tipo := sii.TipoDTE(in.TipoDTE)
	if !sii.IsValidDocumentType(tipo) {
		return nil, fmt.Errorf("%w: tipo de DTE %d desconocido", domain.ErrInvalidInput, in.TipoDTE)
	}
	if err := sii.ValidateFolio(in.Folio); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	rutEmisor, rutReceptor, err := uc.validarRUTs(in.Emisor.RUT, in.Receptor.RUT)
	if err != nil {
		return nil, err
	}

	b := dte.NewDTEBuilder().
		SetTipo(tipo).
		SetFolio(in.Folio).
		SetFechaEmision(in.FechaEmision).
		SetEmisor(emisorData(in.Emisor, rutEmisor)).
		SetReceptor(receptorData(in.Receptor, rutReceptor))
	if in.FormaPago != 0 {
		b.SetFormaPago(sii.FormaPago(in.FormaPago))
	}

	for _, item := range in.Items {
		b.AddItem(itemData(item))
	}
	for _, d := range in.Descuentos {
		addDescuento(b, d)
	}
	for _, r := range in.Referencias {
		b.AddReferencia(dte.ReferenciaData{
			TipoDoc: r.TipoDoc,
			Folio:   r.Folio,
			Fecha:   r.Fecha,
			Codigo:  sii.CodigoReferencia(r.Codigo),
			Razon:   r.Razon,
		})
	}

	if err := b.CalculateTotals(uc.tasa(in.TasaIVA)); err != nil {
		return nil, err
	}
	return b.Build()
}

func (uc *UseCase) buildBoleta(in dto.EmitirBoletaRequest) (*dte.Documento, error) {
	if err := sii.ValidateFolio(in.Folio); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	rutEmisor, rutReceptor, err := uc.validarRUTs(in.Emisor.RUT, in.Receptor.RUT)
	if err != nil {
		return nil, err
	}

	b := dte.NewBoletaBuilder()
	if in.Exenta {
		b.Exenta()
	} else {
		b.Afecta()
	}
	b.SetFolio(in.Folio).
		SetFechaEmision(in.FechaEmision).
		SetEmisor(emisorData(in.Emisor, rutEmisor)).
		SetReceptor(receptorData(in.Receptor, rutReceptor))

	for _, item := range in.Items {
		data := itemData(item)
		if in.Exenta {
			data.Exento = true
		}
		b.AddItem(data)
	}
	for _, d := range in.Descuentos {
		addDescuento(b.DTEBuilder, d)
	}

	return b.Build()
}

// validarRUTs valida y normaliza los RUTs de emisor y receptor. Cualquier
// dígito verificador incorrecto aborta la emisión.
func (uc *UseCase) validarRUTs(emisor, receptor string) (string, string, error) {
	rutEmisor, err := rut.ValidateAndFormat(emisor)
	if err != nil {
		return "", "", fmt.Errorf("%w: emisor: %v", domain.ErrRUTInvalido, err)
	}
	rutReceptor, err := rut.ValidateAndFormat(receptor)
	if err != nil {
		return "", "", fmt.Errorf("%w: receptor: %v", domain.ErrRUTInvalido, err)
	}
	return rutEmisor, rutReceptor, nil
}

func (uc *UseCase) tasa(override *decimal.Decimal) decimal.Decimal {
	if override != nil {
		return *override
	}
	return uc.tasaIVA
}

// ── mapeo DTO → dominio ───────────────────────────────────────────────────────

func emisorData(in dto.EmisorRequest, rutNormalizado string) dte.EmisorData {
	return dte.EmisorData{
		RUT:         rutNormalizado,
		RazonSocial: in.RazonSocial,
		Giro:        in.Giro,
		Direccion:   in.Direccion,
		Comuna:      in.Comuna,
		Ciudad:      in.Ciudad,
		Correo:      in.Correo,
	}
}

func receptorData(in dto.ReceptorRequest, rutNormalizado string) dte.ReceptorData {
	return dte.ReceptorData{
		RUT:         rutNormalizado,
		RazonSocial: in.RazonSocial,
		Giro:        in.Giro,
		Direccion:   in.Direccion,
		Comuna:      in.Comuna,
		Ciudad:      in.Ciudad,
		Correo:      in.Correo,
	}
}

func itemData(in dto.ItemRequest) dte.ItemData {
	return dte.ItemData{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Cantidad:    in.Cantidad,
		Unidad:      in.Unidad,
		Precio:      in.Precio,
		Monto:       in.Monto,
		Impuestos:   in.Impuestos,
		Exento:      in.Exento,
	}
}

func addDescuento(b *dte.DTEBuilder, in dto.DescuentoRequest) {
	tipo := sii.MovimientoDescuento
	if in.Tipo == string(sii.MovimientoRecargo) {
		tipo = sii.MovimientoRecargo
	}
	if in.SobreExento {
		b.AddDescuentoGlobalExento(tipo, in.Valor, in.Porcentaje, in.Glosa)
	} else {
		b.AddDescuentoGlobal(tipo, in.Valor, in.Porcentaje, in.Glosa)
	}
}

// ── mapeo dominio → DTO ───────────────────────────────────────────────────────

func validar(doc *dte.Documento) dto.ValidacionResponse {
	var errores []string
	for _, r := range []dte.ValidationResult{
		dte.ValidateDTEStructure(doc),
		dte.ValidateAllDetalles(doc.Detalle),
		dte.ValidateTotales(doc.Encabezado.Totales),
	} {
		errores = append(errores, r.Errors...)
	}
	return dto.ValidacionResponse{Valida: len(errores) == 0, Errores: errores}
}

func (uc *UseCase) toResponse(doc *dte.Documento) *dto.EmisionResponse {
	id := doc.Encabezado.IdDoc
	tot := doc.Encabezado.Totales

	nombre := ""
	if dt, ok := sii.GetDocumentType(id.TipoDTE); ok {
		nombre = dt.Name
	}

	totales := dto.TotalesResponse{
		MntNeto:  tot.MntNeto,
		MntExe:   tot.MntExe,
		IVA:      tot.IVA,
		MntTotal: tot.MntTotal,
	}
	if tot.TasaIVA != nil {
		totales.TasaIVA = tot.TasaIVA.String()
	}

	return &dto.EmisionResponse{
		TrackID:         uuid.New().String(),
		TipoDTE:         int(id.TipoDTE),
		TipoNombre:      nombre,
		Folio:           id.Folio,
		FolioFormateado: sii.FormatFolio(id.Folio, 10),
		FechaEmision:    id.FchEmis,
		Totales:         totales,
		TotalFormateado: format.FormatCLP(tot.MntTotal),
		Validacion:      validar(doc),
	}
}
