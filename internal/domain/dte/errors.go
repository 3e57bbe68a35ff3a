package dte

import "fmt"

// ValidationError indica que falta un campo obligatorio o que el estado del
// builder no permite la operación. Se retorna sincrónicamente en el punto de
// llamada; el caller decide si corrige el estado y reintenta o abandona el
// builder.
type ValidationError struct {
	Campo   string
	Mensaje string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dte: %s", e.Mensaje)
}

func validationErr(campo, mensaje string) *ValidationError {
	return &ValidationError{Campo: campo, Mensaje: mensaje}
}
