package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/dte-chile/internal/application/dto"
	"github.com/tu-usuario/dte-chile/pkg/rut"
)

// RUTHandler valida RUTs chilenos.
type RUTHandler struct{}

// NewRUTHandler construye el handler de RUT.
func NewRUTHandler() *RUTHandler { return &RUTHandler{} }

// Validar maneja GET /api/rut/validar?rut=12345678-5. Un RUT con dígito
// verificador incorrecto no es un error HTTP: la respuesta lo reporta como
// valido:false.
func (h *RUTHandler) Validar(c *fiber.Ctx) error {
	raw := c.Query("rut")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetro rut requerido"})
	}

	formateado, err := rut.ValidateAndFormat(raw)
	if err != nil {
		return c.JSON(dto.ValidarRUTResponse{RUT: raw, Valido: false})
	}
	return c.JSON(dto.ValidarRUTResponse{RUT: raw, Valido: true, Formateado: formateado})
}
