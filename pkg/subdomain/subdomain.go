package subdomain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics descompone (NFD) y elimina las marcas combinantes, de modo
// que "Café Pérez" queda como "Cafe Perez".
var removeDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize convierte un nombre libre en un subdominio válido: minúsculas,
// sin tildes, solo [a-z0-9-], sin guiones al borde. Devuelve "" si no queda
// ningún carácter utilizable.
func Normalize(name string) string {
	flat, _, err := transform.String(removeDiacritics, name)
	if err != nil {
		flat = name
	}
	flat = strings.ToLower(flat)

	var b strings.Builder
	lastDash := true // evita guion inicial
	for _, r := range flat {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-' || r == '_' || r == '.':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Valid indica si s ya es un subdominio normalizado no vacío.
func Valid(s string) bool {
	return s != "" && s == Normalize(s)
}
