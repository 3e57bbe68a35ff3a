package format

import "strings"

// CleanPhone deja solo los dígitos del número, quitando el prefijo país 56
// cuando viene incluido.
func CleanPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if strings.HasPrefix(cleaned, "56") && len(cleaned) > 9 {
		cleaned = cleaned[2:]
	}
	return cleaned
}

// FormatPhone formatea un teléfono chileno como "+56 9 1234 5678" (móvil de
// 9 dígitos) o "+56 2 2123 4567" (fijo de 8 o 9 dígitos con código de área).
// Entrada irrecuperable devuelve cadena vacía.
func FormatPhone(phone string) string {
	cleaned := CleanPhone(phone)
	if len(cleaned) < 8 || len(cleaned) > 9 {
		return ""
	}
	return "+56 " + cleaned[:1] + " " + cleaned[1:5] + " " + cleaned[5:]
}
