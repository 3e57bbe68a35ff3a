package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/dte-chile/internal/application/dto"
	"github.com/tu-usuario/dte-chile/internal/application/emision"
	"github.com/tu-usuario/dte-chile/internal/domain"
	"github.com/tu-usuario/dte-chile/internal/domain/dte"
)

// DTEHandler maneja la emisión y validación de documentos tributarios.
type DTEHandler struct {
	uc *emision.UseCase
}

// NewDTEHandler construye el handler de DTEs.
func NewDTEHandler(uc *emision.UseCase) *DTEHandler {
	return &DTEHandler{uc: uc}
}

// EmitirFactura maneja POST /api/dte/factura.
func (h *DTEHandler) EmitirFactura(c *fiber.Ctx) error {
	var in dto.EmitirDTERequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.EmitirFactura(c.Context(), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// EmitirBoleta maneja POST /api/dte/boleta.
func (h *DTEHandler) EmitirBoleta(c *fiber.Ctx) error {
	var in dto.EmitirBoletaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.EmitirBoleta(c.Context(), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Validar maneja POST /api/dte/validar: arma el documento y devuelve solo el
// reporte de validación estructural.
func (h *DTEHandler) Validar(c *fiber.Ctx) error {
	var in dto.EmitirDTERequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ValidarDocumento(c.Context(), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// PDF maneja POST /api/dte/pdf: arma el documento y responde su
// representación impresa como descarga.
func (h *DTEHandler) PDF(c *fiber.Ctx) error {
	var in dto.EmitirDTERequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pdfBytes, filename, err := h.uc.GenerarPDF(c.Context(), in)
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// mapError traduce los errores del caso de uso a códigos HTTP: estado
// incompleto del builder → 400, RUT con dígito verificador incorrecto → 422,
// el resto → 500.
func mapError(c *fiber.Ctx, err error) error {
	var verr *dte.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Mensaje})
	}
	if errors.Is(err, domain.ErrRUTInvalido) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "RUT_INVALIDO", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
