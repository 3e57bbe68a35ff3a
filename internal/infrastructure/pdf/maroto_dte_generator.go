// Package pdf implementa la representación impresa de un DTE con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + RUT  │  Recuadro: tipo + folio       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: Dirección / Giro / Email                            │
//	│  RECEPTOR: Razón social + RUT + dirección                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Exe | Monto            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Neto / Exento / IVA / TOTAL                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con los datos del documento + leyenda SII        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/dte-chile/internal/domain/dte"
	"github.com/tu-usuario/dte-chile/pkg/format"
	"github.com/tu-usuario/dte-chile/pkg/sii"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 140, Green: 16, Blue: 16} // rojo recuadro SII
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoDTEGenerator implementa emision.DTEPDFGenerator usando Maroto v2.
type MarotoDTEGenerator struct{}

// NewMarotoDTEGenerator construye el generador.
func NewMarotoDTEGenerator() *MarotoDTEGenerator { return &MarotoDTEGenerator{} }

// GenerateDTEPDF genera el PDF y devuelve sus bytes.
func (g *MarotoDTEGenerator) GenerateDTEPDF(_ context.Context, doc *dte.Documento) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(tipoNombre(doc), true).
		WithAuthor(doc.Encabezado.Emisor.RznSoc, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(emisorRow(doc.Encabezado.Emisor))
	m.AddRows(receptorRow(doc.Encabezado.Receptor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(doc.Detalle) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalsRows(doc.Encabezado.Totales) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(doc) {
		m.AddRows(r)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func tipoNombre(doc *dte.Documento) string {
	if dt, ok := sii.GetDocumentType(doc.Encabezado.IdDoc.TipoDTE); ok {
		return dt.Name
	}
	return fmt.Sprintf("Documento Tributario %d", doc.Encabezado.IdDoc.TipoDTE)
}

// headerRow: razón social + RUT (izq) y el recuadro tipo/folio (der).
func headerRow(doc *dte.Documento) core.Row {
	emisor := doc.Encabezado.Emisor
	id := doc.Encabezado.IdDoc
	fecha := id.FchEmis

	return row.New(20).Add(
		col.New(7).Add(
			text.New(emisor.RznSoc, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(emisor.GiroEmis, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("R.U.T.: "+emisor.RUTEmisor, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center,
				Color: colorPrimary, Top: 1,
			}),
			text.New(strings.ToUpper(tipoNombre(doc)), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorPrimary, Top: 7,
			}),
			text.New("N° "+sii.FormatFolio(id.Folio, 8), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 11,
			}),
			text.New("Fecha emisión: "+fecha, props.Text{
				Size: 8, Align: align.Center, Top: 17, Color: colorGray,
			}),
		),
	)
}

func emisorRow(e dte.Emisor) core.Row {
	correo := "—"
	if e.CorreoEmisor != nil {
		correo = *e.CorreoEmisor
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL EMISOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s, %s   |   Email: %s",
				nonEmpty(e.DirOrigen, "—"),
				nonEmpty(e.CmnaOrigen, "—"),
				correo,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func receptorRow(r dte.Receptor) core.Row {
	giro := "—"
	if r.GiroRecep != nil {
		giro = *r.GiroRecep
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("SEÑOR(ES)", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(r.RznSocRecep, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("R.U.T.: %s   |   Giro: %s   |   Dirección: %s",
				r.RUTRecep, giro, nonEmpty(r.DirRecep, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Exe", 1, align.Center),
		h("Monto", 3, align.Right),
	)
}

func tableDetailRows(items []dte.Detalle) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, d := range items {
		cantidad := ""
		if d.QtyItem != nil {
			cantidad = d.QtyItem.String()
		}
		precio := ""
		if d.PrcItem != nil {
			precio = format.FormatCLP(d.PrcItem.Round(0).IntPart())
		}
		exe := ""
		if d.Exento() {
			exe = "E"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(cantidad, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(d.NmbItem, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(precio, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(exe, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(format.FormatCLP(d.MontoItem), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRows: bloque de totales alineado a la derecha. Solo se imprimen las
// filas presentes en el documento (una boleta exenta no lleva neto ni IVA).
func totalsRows(t dte.Totales) []core.Row {
	type linea struct {
		label string
		valor int64
		grand bool
	}
	var lineas []linea
	if t.MntNeto != nil {
		lineas = append(lineas, linea{"Monto neto:", *t.MntNeto, false})
	}
	if t.MntExe != nil {
		lineas = append(lineas, linea{"Monto exento:", *t.MntExe, false})
	}
	if t.IVA != nil {
		label := "IVA:"
		if t.TasaIVA != nil {
			label = fmt.Sprintf("IVA (%s%%):", t.TasaIVA.String())
		}
		lineas = append(lineas, linea{label, *t.IVA, false})
	}
	lineas = append(lineas, linea{"TOTAL:", t.MntTotal, true})

	rows := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		size := 9.0
		color := &props.Color{}
		style := fontstyle.Normal
		if l.grand {
			size = 11
			color = colorPrimary
			style = fontstyle.Bold
		}
		rows = append(rows, row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(l.label, props.Text{
				Style: fontstyle.Bold, Size: size, Align: align.Right, Right: 2, Color: color,
			})),
			col.New(3).Add(text.New(format.FormatCLP(l.valor), props.Text{
				Style: style, Size: size, Align: align.Right, Right: 1, Color: color,
			})),
		))
	}
	return rows
}

// footerRows: QR con los datos del documento + leyenda legal.
func footerRows(doc *dte.Documento) []core.Row {
	rows := []core.Row{
		row.New(40).Add(
			col.New(4).Add(code.NewQr(qrData(doc), props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Timbre Electrónico SII", props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 6, Left: 3, Color: colorPrimary,
				}),
				text.New("Verifique este documento en www.sii.cl", props.Text{
					Size: 8, Top: 13, Left: 3, Color: colorGray,
				}),
			),
		),
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento tributario electrónico emitido según la Resolución Ex. SII N° 45 de 2003. "+
				"Conserve este documento como respaldo tributario.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// qrData serializa los campos de identificación del documento para el QR:
// TipoDTE|Folio|FchEmis|RUTEmisor|RUTRecep|MntTotal.
func qrData(doc *dte.Documento) string {
	id := doc.Encabezado.IdDoc
	return fmt.Sprintf("%d|%d|%s|%s|%s|%d",
		id.TipoDTE, id.Folio, id.FchEmis,
		doc.Encabezado.Emisor.RUTEmisor,
		doc.Encabezado.Receptor.RUTRecep,
		doc.Encabezado.Totales.MntTotal,
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
