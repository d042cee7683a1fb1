package transform

import (
	"regexp"
	"strings"

	"etlcore/internal/fold"
)

// specialCivilities are titles with no mapping to MONSIEUR/MADAME; their
// folded, uppercased form rejects to nil rather than resolving. They are
// written without accents because the comparison below folds first.
var specialCivilities = map[string]bool{
	"DOCTEUR":           true,
	"GENERAL":           true,
	"COMPTE":            true,
	"INGENIEUR GENERAL": true,
	"PREFET":            true,
	"PROFESSEUR":        true,
	"MONSEIGNEUR":       true,
	"SOEUR":             true, // input must already be written "SOEUR"; fold.Fold does not decompose the Œ ligature
	"COMMISSAIRE":       true,
}

// civiliteMap maps every recognized title token to its canonical form.
var civiliteMap = map[string]string{
	"MONSIEUR":  "MONSIEUR",
	"M":         "MONSIEUR",
	"M.":        "MONSIEUR",
	"MR":        "MONSIEUR",
	"MM":        "MONSIEUR",
	"M(ESPACE)": "MONSIEUR",

	"MADAME":       "MADAME",
	"MME":          "MADAME",
	"MRS":          "MADAME",
	"MS":           "MADAME",
	"MLLE":         "MADAME",
	"MAD":          "MADAME",
	"MADEMOISELLE": "MADAME",
}

var reCiviliteSeparators = regexp.MustCompile(`[.,/&\\]`)

// Civilite canonicalizes a personal title. Special, unmappable titles
// reject to nil. Otherwise separators are replaced with spaces, each
// whitespace-separated token is resolved against civiliteMap, and the
// recognized titles are emitted in the fixed order MONSIEUR then MADAME,
// without duplicates. No recognized token rejects to nil.
func Civilite(s *string) *string {
	if s == nil {
		return nil
	}
	text := strings.ToUpper(fold.Fold(strings.TrimSpace(*s)))

	if specialCivilities[text] {
		return nil
	}

	text = reCiviliteSeparators.ReplaceAllString(text, " ")

	var hasMonsieur, hasMadame bool
	for _, token := range strings.Fields(text) {
		switch civiliteMap[token] {
		case "MONSIEUR":
			hasMonsieur = true
		case "MADAME":
			hasMadame = true
		}
	}

	var titles []string
	if hasMonsieur {
		titles = append(titles, "MONSIEUR")
	}
	if hasMadame {
		titles = append(titles, "MADAME")
	}
	if len(titles) == 0 {
		return nil
	}
	return ptr(strings.Join(titles, " "))
}
