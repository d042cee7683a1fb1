package transform

import (
	"regexp"
	"strings"

	"etlcore/internal/fold"
)

var (
	reNomBoundary   = regexp.MustCompile(`^[^a-zA-ZÀ-ÿ\s]+|[^a-zA-ZÀ-ÿ\s]+$`)
	reNomDelimiter  = regexp.MustCompile(`//|_|/|&`)
	reNomDisallowed = regexp.MustCompile(`[^a-zA-Z0-9À-ÿ\s\-'’]`)
	reNomDashes     = regexp.MustCompile(`-+`)
	reNomSpaces     = regexp.MustCompile(`\s+`)
)

// Nom canonicalizes a last name: trims, folds and uppercases, strips
// leading/trailing non-letters, rewrites the delimiter group //, /, _, &
// as a standalone "ET" token (every occurrence, not just the first), drops
// any remaining disallowed character, then collapses runs of '-' and
// whitespace to a single space.
func Nom(s *string) *string {
	if s == nil {
		return nil
	}
	text := strings.TrimSpace(*s)
	if text == "" {
		return nil
	}

	text = strings.ToUpper(fold.Fold(text))
	text = reNomBoundary.ReplaceAllString(text, "")
	text = replaceDelimitersAsWord(text, reNomDelimiter, "ET")
	text = reNomDisallowed.ReplaceAllString(text, "")
	text = reNomDashes.ReplaceAllString(text, " ")
	text = reNomSpaces.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	return ptr(text)
}

// replaceDelimitersAsWord replaces every match of re in text with
// replacement, ensuring the replacement lands as a standalone token: if
// the match is not already surrounded by whitespace, surrounding spaces
// are inserted so the token never glues onto adjacent letters.
func replaceDelimitersAsWord(text string, re *regexp.Regexp, replacement string) string {
	matches := re.FindAllStringIndex(text, -1)
	if matches == nil {
		return text
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		b.WriteString(text[last:start])

		beforeIsSpace := start > 0 && isSpaceAt(text, start-1)
		afterIsSpace := end < len(text) && isSpaceAt(text, end)

		if beforeIsSpace && afterIsSpace {
			b.WriteString(replacement)
		} else {
			b.WriteString(" ")
			b.WriteString(replacement)
			b.WriteString(" ")
		}
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

func isSpaceAt(s string, byteIdx int) bool {
	switch s[byteIdx] {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
