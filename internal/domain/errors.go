package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrRUTInvalido  = errors.New("RUT inválido")
	ErrUnauthorized = errors.New("no autorizado")
)
