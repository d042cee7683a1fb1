package transform

import (
	"regexp"
	"strings"

	"etlcore/internal/fold"
)

var (
	reNonLetter        = regexp.MustCompile(`[^a-zA-ZÀ-ÿ]`)
	rePrenomDisallowed = regexp.MustCompile(`[^À-ÿa-zA-Z\s\-'’&]`)
	reAmpersands       = regexp.MustCompile(`&+`)
	rePrenomSpaces     = regexp.MustCompile(`\s+`)
)

// Prenom canonicalizes a first name. A length-1 input is returned
// unchanged if it is a letter, else rejected. Longer inputs are stripped
// to the allowed character set, '&' runs collapse to a space, and each
// '-'-separated part is title-cased sub-part by sub-part: the first
// character is an uppercase folded base letter, the remainder is
// lowercase with accents preserved. A '-'-separated part of length 1
// passes through unchanged; a length-1 sub-part inside a longer part is
// uppercased.
func Prenom(s *string) *string {
	if s == nil {
		return nil
	}
	text := *s

	if len([]rune(text)) == 1 {
		if reNonLetter.MatchString(text) {
			return nil
		}
		return ptr(text)
	}

	text = rePrenomDisallowed.ReplaceAllString(text, "")
	text = reAmpersands.ReplaceAllString(text, " ")
	text = strings.TrimSpace(rePrenomSpaces.ReplaceAllString(text, " "))

	parts := strings.Split(text, "-")
	formatted := make([]string, len(parts))
	for i, part := range parts {
		trimmed := strings.TrimSpace(part)
		if len([]rune(trimmed)) == 1 {
			formatted[i] = trimmed
			continue
		}
		formatted[i] = formatNamePart(part)
	}
	return ptr(strings.Join(formatted, "-"))
}

// formatNamePart title-cases a whitespace-separated run of sub-parts: the
// first character folds to an uppercase ASCII base letter, the remainder
// lowercases with accents preserved.
func formatNamePart(part string) string {
	subParts := strings.Fields(part)
	formatted := make([]string, 0, len(subParts))
	for _, sub := range subParts {
		runes := []rune(sub)
		if len(runes) == 0 {
			continue
		}
		first := strings.ToUpper(fold.Fold(string(runes[0])))
		rest := strings.ToLower(string(runes[1:]))
		formatted = append(formatted, first+rest)
	}
	return strings.Join(formatted, " ")
}
