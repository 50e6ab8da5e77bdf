// Package slug deriva identificadores URL-safe a partir de nombres.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics descompone a NFD y elimina las marcas combinantes
// (á -> a, ñ -> n), de modo que nombres con tildes generen slugs ASCII.
var removeDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Make deriva el slug de un nombre: minúsculas, sin diacríticos, runas no
// alfanuméricas colapsadas a un solo guion, sin guiones al inicio ni al final.
// Es determinista: el mismo nombre produce siempre el mismo slug. Puede
// devolver cadena vacía si el nombre no contiene runas alfanuméricas; el
// llamador debe tratarlo como entrada inválida.
func Make(name string) string {
	s, _, err := transform.String(removeDiacritics, name)
	if err != nil {
		s = name // mejor un slug con runas raras que ninguno
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			// separadores y símbolos: colapsar a un guion como máximo
			pendingHyphen = true
		}
	}
	return b.String()
}
