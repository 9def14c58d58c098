package lc4

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var (
	// The primary alphabet has no 0 and 1; they take the two filler symbols.
	digitReplacer = strings.NewReplacer("0", "#", "1", "_")

	umlautReplacer = strings.NewReplacer(
		"Ü", "Ue",
		"ü", "ue",
		"Ä", "Ae",
		"ä", "ae",
		"Ö", "Oe",
		"ö", "oe",
		"ß", "ss",
	)
)

// EscapeString maps arbitrary text onto the alphabet of mode. The mapping is
// one-way and fixed, since ciphertexts depend on it:
//
//   - lc4 only: "0" becomes "#" and "1" becomes "_"
//   - Ä Ö Ü ä ö ü ß become Ae Oe Ue ae oe ue ss
//   - whitespace becomes "_"
//   - text is lowercased
//   - symbols still outside the alphabet are dropped
//
// For example "Hello World! This is the 10th test!" escapes to
// "hello_world_this_is_the__#th_test" in lc4 mode.
func EscapeString(text string, mode Mode) string {
	if mode == Primary {
		text = digitReplacer.Replace(text)
	}
	text = umlautReplacer.Replace(text)

	t := transform.Chain(
		runes.Map(func(r rune) rune {
			if isSpace(r) {
				return '_'
			}
			return r
		}),
		cases.Lower(language.Und),
		runes.Remove(runes.Predicate(func(r rune) bool {
			return r >= 0x80 || mode.Index(byte(r)) == notFound
		})),
	)
	out, _, err := transform.String(t, text)
	if err != nil {
		return ""
	}
	return out
}

// isSpace matches the whitespace class used by the escaping rules: Unicode
// White_Space without NEL, plus the byte order mark.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\ufeff' || unicode.IsSpace(r)
}
