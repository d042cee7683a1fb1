// Package dedupe discovers transitive equivalence classes of records
// sharing normalized identifying attributes and merges them into the
// normalized frame.
package dedupe

import "etlcore/internal/frame"

// Matches reports whether a and b are a candidate duplicate pair.
// Callers are expected to only ever invoke this with a.ID < b.ID (the
// strict-less guard): it halves the pair space and breaks symmetry so
// each unordered pair is evaluated exactly once. Matches does not
// itself enforce the guard, and it is not symmetric: the SIRET clause
// reads only a, so swapping the arguments can change the result.
func Matches(a, b frame.Record) bool {
	if a.Siret != nil {
		return false
	}
	if !strEq(a.Nom, b.Nom) || a.Nom == nil {
		return false
	}
	if !(strEqOrEitherNil(a.Prenom, b.Prenom)) {
		return false
	}
	return nonNullEq(a.PCE, b.PCE) || nonNullEq(a.Email, b.Email) || nonNullEq(a.Telephone, b.Telephone)
}

func strEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func strEqOrEitherNil(a, b *string) bool {
	if a == nil || b == nil {
		return true
	}
	return *a == *b
}

// nonNullEq reports equality only when both sides are present; a nil on
// either side never counts as a match for the pce/email/telephone clause.
func nonNullEq(a, b *string) bool {
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
