package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/dte-chile/internal/application/emision"
	"github.com/tu-usuario/dte-chile/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmisionUC *emision.UseCase
	JWT       config.JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.JWT)
	api.Post("/auth/token", authHandler.Token)

	// Validación de RUT (público)
	rutHandler := NewRUTHandler()
	api.Get("/rut/validar", rutHandler.Validar)

	// Emisión de DTEs (requiere Bearer Token)
	dteGroup := api.Group("/dte", AuthMiddleware(deps.JWT.Secret))
	dteHandler := NewDTEHandler(deps.EmisionUC)
	dteGroup.Post("/factura", dteHandler.EmitirFactura)
	dteGroup.Post("/boleta", dteHandler.EmitirBoleta)
	dteGroup.Post("/validar", dteHandler.Validar)
	dteGroup.Post("/pdf", dteHandler.PDF)
}
