package transform

import (
	"regexp"
	"strings"

	"etlcore/internal/fold"
)

var (
	reEmailShape    = regexp.MustCompile(`^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	reEmailStripped = strings.NewReplacer("'", "", "’", "", "&", "")
)

// Email canonicalizes a contact address: strips spaces, uppercases,
// folds accents, drops quote/ampersand characters, collapses "@." to
// "@", then validates the RFC-adjacent shape, single '@', a penultimate
// domain label of length >= 2, and a TLD label of length in [2,4].
// Hyphens are stripped from the domain side of a valid address.
func Email(s *string) *string {
	if s == nil {
		return nil
	}
	text := strings.ToUpper(strings.ReplaceAll(*s, " ", ""))
	text = fold.Fold(text)
	text = reEmailStripped.Replace(text)
	text = strings.ReplaceAll(text, "@.", "@")

	if !reEmailShape.MatchString(text) {
		return nil
	}

	parts := strings.Split(text, "@")
	if len(parts) != 2 {
		return nil
	}
	local, domain := parts[0], parts[1]

	domainParts := strings.Split(domain, ".")
	if len(domainParts) < 2 {
		return nil
	}
	penultimate := domainParts[len(domainParts)-2]
	if len([]rune(penultimate)) < 2 {
		return nil
	}
	tld := domainParts[len(domainParts)-1]
	tldLen := len([]rune(tld))
	if tldLen < 2 || tldLen > 4 {
		return nil
	}

	domain = strings.ReplaceAll(domain, "-", "")
	return ptr(local + "@" + domain)
}
