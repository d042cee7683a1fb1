package transform

// Siret canonicalizes a SIRET (or siret_successeur) establishment
// identifier: strips every non-digit and accepts only when exactly 14
// digits remain.
func Siret(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := stripNonDigits(*s)
	if len(cleaned) != 14 {
		return nil
	}
	return ptr(cleaned)
}
