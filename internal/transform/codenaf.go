package transform

import (
	"regexp"
	"strings"
)

var (
	reNafPunctuation = regexp.MustCompile(`[.\-_,;]`)
	reNafShape       = regexp.MustCompile(`^(\d{4})([A-Za-z])$`)
)

// codeNafLike canonicalizes ape, code_naf and libele_naf alike: they
// share the same shape (4 digits plus a trailing activity-code letter),
// differing only in which physical column they bind to, so one
// implementation backs all three logical fields in Registry.
func codeNafLike(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := reNafPunctuation.ReplaceAllString(*s, "")
	m := reNafShape.FindStringSubmatch(cleaned)
	if m == nil {
		return nil
	}
	return ptr(m[1] + strings.ToUpper(m[2]))
}
