// Package normalize canonicaliza identificadores de usuario para que "Óscar"
// y "oscar" resuelvan al mismo username en registro y login.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Username devuelve el username canónico: minúsculas, sin tildes ni diacríticos,
// sin espacios en los extremos. No valida longitud ni caracteres permitidos.
func Username(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Email canonicaliza un email: minúsculas y sin espacios en los extremos.
// No se quitan diacríticos del dominio (IDN queda fuera de alcance).
func Email(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
