package emision

import (
	"context"

	"github.com/tu-usuario/dte-chile/internal/domain/dte"
)

// DTEPDFGenerator genera la representación impresa de un documento terminado.
type DTEPDFGenerator interface {
	GenerateDTEPDF(ctx context.Context, doc *dte.Documento) ([]byte, error)
}
