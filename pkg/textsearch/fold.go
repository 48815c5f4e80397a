// Package textsearch normaliza textos para a busca do PDV
// ("valvula" encontra "Válvula", "p-0001" encontra "P-0001").
package textsearch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold remove acentos e converte para minúsculas.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Contains busca sem distinção de acentos e maiúsculas. Termo vazio sempre casa.
func Contains(haystack, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(term))
}
