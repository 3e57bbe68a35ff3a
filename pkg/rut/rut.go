// Package rut valida y formatea el RUT chileno (Rol Único Tributario).
// El dígito verificador se calcula con el algoritmo módulo 11: los dígitos
// del cuerpo se ponderan de derecha a izquierda con la serie cíclica
// 2,3,4,5,6,7; resto 11 → "0", resto 10 → "K".
package rut

import (
	"fmt"
	"strings"
)

// Clean deja solo dígitos y la letra K (mayúscula) del RUT.
func Clean(rut string) string {
	var b strings.Builder
	for _, r := range rut {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'k' || r == 'K':
			b.WriteByte('K')
		}
	}
	return b.String()
}

// ComputeDV calcula el dígito verificador para el cuerpo del RUT (solo dígitos).
func ComputeDV(cuerpo string) (byte, error) {
	if cuerpo == "" {
		return 0, fmt.Errorf("rut: cuerpo vacío")
	}
	var sum int
	mult := 2
	for i := len(cuerpo) - 1; i >= 0; i-- {
		c := cuerpo[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("rut: el cuerpo debe contener solo dígitos, se encontró %q", string(c))
		}
		sum += int(c-'0') * mult
		if mult == 7 {
			mult = 2
		} else {
			mult++
		}
	}
	switch dv := 11 - sum%11; dv {
	case 11:
		return '0', nil
	case 10:
		return 'K', nil
	default:
		return byte('0' + dv), nil
	}
}

// Validate indica si el RUT (con o sin puntos/guión) tiene dígito verificador correcto.
func Validate(rut string) bool {
	_, err := ValidateAndFormat(rut)
	return err == nil
}

// ValidateAndFormat valida el RUT y devuelve su forma canónica "12.345.678-9".
func ValidateAndFormat(rut string) (string, error) {
	cleaned := Clean(rut)
	if len(cleaned) < 2 {
		return "", fmt.Errorf("rut: demasiado corto: %q", rut)
	}
	cuerpo := cleaned[:len(cleaned)-1]
	dv := cleaned[len(cleaned)-1]
	expected, err := ComputeDV(cuerpo)
	if err != nil {
		return "", err
	}
	if dv != expected {
		return "", fmt.Errorf("rut: dígito verificador inválido: esperado %c, recibido %c", expected, dv)
	}
	return groupDots(cuerpo) + "-" + string(dv), nil
}

// Format devuelve el RUT con puntos y guión sin validar el dígito verificador.
// Entrada irrecuperable devuelve cadena vacía (helper de presentación).
func Format(rut string) string {
	cleaned := Clean(rut)
	if len(cleaned) < 2 {
		return ""
	}
	cuerpo := cleaned[:len(cleaned)-1]
	dv := cleaned[len(cleaned)-1]
	return groupDots(cuerpo) + "-" + string(dv)
}

// groupDots agrupa el cuerpo en miles con puntos: "12345678" → "12.345.678".
func groupDots(cuerpo string) string {
	n := len(cuerpo)
	if n <= 3 {
		return cuerpo
	}
	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(cuerpo[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(cuerpo[i : i+3])
	}
	return b.String()
}
