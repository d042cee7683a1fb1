// Package fold implements deterministic Latin-1 accent stripping, the
// character-folding primitive every field transform in internal/transform
// builds on.
package fold

import (
	"strings"
	"unicode"
)

// accentBase maps each accented Latin-1 supplement rune this system cares
// about (lowercase form) to its ASCII base letter (à,á,â,ã,ä,å -> a;
// è,é,ê,ë -> e; ì,í,î,ï -> i; ò,ó,ô,õ,ö -> o; ù,ú,û,ü -> u; ç -> c; ñ -> n).
// Characters outside this table, notably ß, ø, Ø, and non-Latin scripts,
// are intentionally absent so Fold leaves them untouched.
var accentBase = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c',
	'ñ': 'n',
}

// Fold maps every accented Latin-1 supplement letter to its ASCII base
// letter, preserving case. Runes outside the table (including ß, ø, Ø, and
// non-Latin scripts) pass through unchanged. Fold is total and idempotent:
// Fold(Fold(s)) == Fold(s).
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		base, ok := accentBase[unicode.ToLower(r)]
		if !ok {
			b.WriteRune(r)
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteRune(unicode.ToUpper(base))
		} else {
			b.WriteRune(base)
		}
	}
	return b.String()
}
