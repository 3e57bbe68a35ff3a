package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/dte-chile/internal/application/dto"
	"github.com/tu-usuario/dte-chile/pkg/config"
	"github.com/tu-usuario/dte-chile/pkg/jwt"
)

// AuthHandler intercambia la API key configurada por un token JWT.
type AuthHandler struct {
	cfg config.JWTConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(cfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Token maneja POST /api/auth/token: valida la API key y emite un Bearer
// Token para el client_id indicado.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in dto.TokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.APIKey == "" || in.ClientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "api_key y client_id son requeridos"})
	}
	if h.cfg.APIKey == "" || subtle.ConstantTimeCompare([]byte(in.APIKey), []byte(h.cfg.APIKey)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "API key inválida"})
	}

	token, err := jwt.Generate(h.cfg.Secret, in.ClientID, h.cfg.Issuer, h.cfg.Expiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: h.cfg.Expiration * 60,
	})
}
