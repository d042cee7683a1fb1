package transform

// PCE canonicalizes a natural-gas delivery point code: keeps digits only,
// with no length constraint — historical-dataset-only field.
func PCE(s *string) *string {
	if s == nil {
		return nil
	}
	return ptr(stripNonDigits(*s))
}
