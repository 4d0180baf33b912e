// Package slug normaliza textos a slugs de URL (minúsculas, sin acentos, separados por guiones).
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize limpia un slug recibido en query string sin reinterpretarlo:
// recorta espacios, pasa a minúsculas y quita acentos. Los guiones existentes se conservan.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(stripMarks(s)))
	return strings.Join(strings.Fields(s), "-")
}

func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
