// Package transform implements the per-field pure canonicalization rules:
// nom, prenom, civilite, email, raison_sociale, telephone, siret, siren,
// ape, code_naf, libele_naf, pce and siret_successeur. Every transform has
// the signature Func: it maps an optional input string to an optional
// canonical string, rejecting to nil rather than returning an error.
package transform

import (
	"regexp"
)

// Func is the shape every field transform implements: option<string> ->
// option<string>. A nil input always yields a nil output.
type Func func(s *string) *string

// Registry maps a logical field name to the transform that canonicalizes
// it, so callers can resolve "apply transform X to column Y" generically
// instead of hard-coding a switch per field.
var Registry = map[string]Func{
	"nom":              Nom,
	"prenom":           Prenom,
	"civilite":         Civilite,
	"email":            Email,
	"raison_sociale":   RaisonSociale,
	"telephone":        Telephone,
	"siret":            Siret,
	"siret_successeur": Siret,
	"siren":            Siren,
	"ape":              codeNafLike,
	"code_naf":         codeNafLike,
	"libele_naf":       codeNafLike,
	"pce":              PCE,
}

func ptr(s string) *string { return &s }

var (
	reDigitsOnly = regexp.MustCompile(`\D`)
	reDashSpace  = regexp.MustCompile(`-|\s`)
)

// stripNonDigits removes every rune that is not an ASCII digit.
func stripNonDigits(s string) string {
	return reDigitsOnly.ReplaceAllString(s, "")
}

